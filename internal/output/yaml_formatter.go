package output

import (
	"gopkg.in/yaml.v3"

	"github.com/napkincalc/napkin/internal/domain"
)

// YAMLFormatter serializes the report in the same dialect as scenario files.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string      { return "yaml" }
func (y YAMLFormatter) Extension() string { return "yaml" }

func (y YAMLFormatter) Format(report *domain.Report) ([]byte, error) {
	return yaml.Marshal(report)
}
