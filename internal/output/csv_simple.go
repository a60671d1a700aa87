package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/napkincalc/napkin/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string      { return "csv" }
func (c CSVSummarizer) Extension() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Kind", "RealRatePercent", "FIRENumber", "GoalReached", "GoalPeriod", "FinalBalance", "CoastNumber", "PeriodsSaved", "AnnualProfit", "NetProfitMargin", "BreakEvenMonths"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range sortedScenarios(report) {
		row := []string{
			sc.Name,
			sc.Kind.String(),
			"",
			"",
			boolToString(sc.Goal.Reached),
			optionalInt(sc.Goal.Period),
			sc.FinalBalance.StringFixed(2),
			optionalDecimal(sc.CoastNumber),
			"",
			"",
			"",
			"",
		}
		if sc.Kind.IsFIRE() {
			row[2] = sc.RealRate.Mul(hundred).StringFixed(4)
			row[3] = sc.FIRENumber.StringFixed(2)
		}
		if sc.Comparison != nil {
			row[8] = optionalInt(sc.Comparison.PeriodsSaved)
		}
		if b := sc.Business; b != nil {
			row[9] = b.AnnualProfit.StringFixed(2)
			if b.NetProfitMargin.Defined {
				row[10] = b.NetProfitMargin.Value.StringFixed(2)
			}
			if b.BreakEven != nil {
				row[11] = b.BreakEven.MonthsFromStart.StringFixed(2)
			}
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// sortedScenarios returns the report's scenarios ordered by name.
func sortedScenarios(report *domain.Report) []domain.ScenarioSummary {
	scenarios := append([]domain.ScenarioSummary(nil), report.Scenarios...)
	sort.SliceStable(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	return scenarios
}
