package output

import (
	"bytes"
	"encoding/csv"

	"github.com/napkincalc/napkin/internal/domain"
)

// CSVDetailedExporter writes every projection point, one row per
// scenario/series/period. Business scenarios contribute one row per year of
// cumulative cash.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string      { return "detailed-csv" }
func (c CSVDetailedExporter) Extension() string { return "csv" }

func (c CSVDetailedExporter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Kind", "Series", "Period", "Balance"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	write := func(sc domain.ScenarioSummary, series string, points []domain.ProjectionPoint) error {
		for _, p := range points {
			if err := w.Write([]string{sc.Name, sc.Kind.String(), series, intToString(p.Period), p.Balance.StringFixed(2)}); err != nil {
				return err
			}
		}
		return nil
	}
	for _, sc := range sortedScenarios(report) {
		if err := write(sc, "base", sc.Series); err != nil {
			return nil, err
		}
		if err := write(sc, "enhanced", sc.EnhancedSeries); err != nil {
			return nil, err
		}
		if sc.Business != nil {
			for _, y := range sc.Business.Years {
				if err := w.Write([]string{sc.Name, sc.Kind.String(), "cumulative_cash", intToString(y.Year), y.CumulativeCash.StringFixed(2)}); err != nil {
					return nil, err
				}
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
