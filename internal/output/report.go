package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/napkincalc/napkin/internal/domain"
)

// lookupFormatter resolves format or returns an error listing the choices.
func lookupFormatter(format string) (Formatter, error) {
	if f := GetFormatterByName(format); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// Render writes the report in the named format to w.
func Render(w io.Writer, report *domain.Report, format string) error {
	f, err := lookupFormatter(format)
	if err != nil {
		return err
	}
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// GenerateReport writes the report to timestamped files in dir and returns
// their paths. Format "all" writes the verbose console text and the
// detailed CSV.
func GenerateReport(report *domain.Report, format, dir string) ([]string, error) {
	var formatters []Formatter
	if NormalizeFormatName(format) == "all" {
		formatters = []Formatter{ConsoleVerboseFormatter{}, CSVDetailedExporter{}}
	} else {
		f, err := lookupFormatter(format)
		if err != nil {
			return nil, err
		}
		formatters = []Formatter{f}
	}

	files := make([]string, 0, len(formatters))
	for _, f := range formatters {
		name, err := WriteFormatted(f, report, dir)
		if err != nil {
			return files, err
		}
		files = append(files, name)
	}
	return files, nil
}
