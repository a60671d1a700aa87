package output

import (
	"bytes"
	"fmt"

	"github.com/napkincalc/napkin/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console-lite" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "NAPKIN SCENARIO SUMMARY")
	fmt.Fprintln(&buf, "================================")
	for _, sc := range sortedScenarios(report) {
		if b := sc.Business; b != nil {
			breakEven := "never"
			if b.BreakEven != nil {
				breakEven = fmt.Sprintf("year %d month %d", b.BreakEven.Year, b.BreakEven.Month)
			}
			fmt.Fprintf(&buf, "%s [%s]: AnnualProfit=%s Margin=%s BreakEven=%s\n",
				sc.Name, sc.Kind, FormatCurrency(b.AnnualProfit), FormatRatio(b.NetProfitMargin, "%"), breakEven)
			continue
		}
		fmt.Fprintf(&buf, "%s [%s]: Target=%s Goal=%s Final=%s\n",
			sc.Name, sc.Kind, FormatCurrency(sc.FIRENumber), FormatGoal(sc.Goal, "age"), FormatCurrency(sc.FinalBalance))
		if sc.Comparison != nil {
			fmt.Fprintf(&buf, "  YearsSaved=%s\n", FormatPeriodsSaved(sc.Comparison))
		}
	}
	rec := AnalyzeScenarios(report)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s (goal at age %d, %d years ahead)\n", rec.ScenarioName, rec.GoalAge, rec.YearsAhead)
	}
	return buf.Bytes(), nil
}
