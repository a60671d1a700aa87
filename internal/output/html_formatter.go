package output

import (
	"bytes"
	_ "embed"
	"html/template"

	json "github.com/goccy/go-json"

	"github.com/napkincalc/napkin/internal/domain"
	"github.com/napkincalc/napkin/pkg/dateutil"
	pdec "github.com/napkincalc/napkin/pkg/decimal"
)

// HTMLFormatter produces a static HTML report with one table per scenario.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string      { return "html" }
func (h HTMLFormatter) Extension() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":      FormatCurrency,
	"pct":       FormatPercentage,
	"ratio":     FormatRatio,
	"goal":      func(sc domain.ScenarioSummary) string { return FormatGoal(sc.Goal, goalLabel(sc.Kind)) },
	"saved":     FormatPeriodsSaved,
	"toPercent": pdec.ToPercent,
	"month":     dateutil.MonthName,
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.Report
		Recommendation Recommendation
		Assumptions    []string
	}{report, AnalyzeScenarios(report), reportAssumptions(report.Assumptions)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
