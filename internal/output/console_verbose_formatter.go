package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/napkincalc/napkin/internal/domain"
	"github.com/napkincalc/napkin/pkg/dateutil"
	pdec "github.com/napkincalc/napkin/pkg/decimal"
)

// seriesSampleEvery controls how many periods the console series table skips.
const seriesSampleEvery = 5

// ConsoleVerboseFormatter renders the detailed console report via the pluggable interface.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string      { return "console" }
func (c ConsoleVerboseFormatter) Extension() string { return "txt" }

func (c ConsoleVerboseFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 81))
	fmt.Fprintln(&buf, "NAPKIN FINANCIAL PROJECTION REPORT")
	fmt.Fprintln(&buf, strings.Repeat("=", 81))
	if !report.GeneratedAt.IsZero() {
		fmt.Fprintf(&buf, "Generated: %s\n", report.GeneratedAt.Format("2006-01-02 15:04 MST"))
	}
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range reportAssumptions(report.Assumptions) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	for i, sc := range report.Scenarios {
		title := fmt.Sprintf("SCENARIO %d: %s (%s)", i+1, sc.Name, sc.Kind.Title())
		fmt.Fprintln(&buf, title)
		fmt.Fprintln(&buf, strings.Repeat("=", len(title)))
		if sc.Business != nil {
			writeBusiness(&buf, sc.Business)
		} else {
			writeFIRE(&buf, sc)
		}
		fmt.Fprintln(&buf)
	}

	writeHighlights(&buf, report.Highlights)

	rec := AnalyzeScenarios(report)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf, "SUMMARY & RECOMMENDATIONS")
		fmt.Fprintln(&buf, "=========================")
		fmt.Fprintf(&buf, "Best scenario: %s\n", rec.ScenarioName)
		fmt.Fprintf(&buf, "Goal reached at age %d with %s by the end of the projection\n", rec.GoalAge, FormatCurrency(rec.FinalBalance))
		if rec.YearsAhead > 0 {
			fmt.Fprintf(&buf, "That is %d years ahead of the slowest scenario that gets there\n", rec.YearsAhead)
		}
	}

	return buf.Bytes(), nil
}

func writeFIRE(buf *bytes.Buffer, sc domain.ScenarioSummary) {
	fmt.Fprintf(buf, "  Real growth rate:        %s\n", FormatPercentage(pdec.ToPercent(sc.RealRate)))
	fmt.Fprintf(buf, "  FIRE number:             %s\n", FormatCurrency(sc.FIRENumber))
	fmt.Fprintf(buf, "  Goal:                    %s\n", FormatGoal(sc.Goal, "age"))
	fmt.Fprintf(buf, "  Final balance:           %s\n", FormatCurrency(sc.FinalBalance))
	if sc.CoastNumber != nil {
		fmt.Fprintf(buf, "  Coast number today:      %s\n", FormatCurrency(*sc.CoastNumber))
		fmt.Fprintf(buf, "  Already coasting:        %t\n", sc.AlreadyCoasting)
	}
	if sc.Comparison != nil {
		fmt.Fprintf(buf, "  With side income:        %s\n", FormatGoal(sc.Comparison.Enhanced, "age"))
		fmt.Fprintf(buf, "  Years saved:             %s\n", FormatPeriodsSaved(sc.Comparison))
	}
	if len(sc.Series) == 0 {
		return
	}

	fmt.Fprintln(buf)
	if len(sc.EnhancedSeries) == len(sc.Series) {
		fmt.Fprintf(buf, "  %-6s %18s %18s\n", "AGE", "BALANCE", "WITH SIDE INCOME")
	} else {
		fmt.Fprintf(buf, "  %-6s %18s\n", "AGE", "BALANCE")
	}
	fmt.Fprintln(buf, "  "+strings.Repeat("-", 44))
	last := len(sc.Series) - 1
	for i, p := range sc.Series {
		if i%seriesSampleEvery != 0 && i != last {
			continue
		}
		if len(sc.EnhancedSeries) == len(sc.Series) {
			fmt.Fprintf(buf, "  %-6d %18s %18s\n", p.Period, FormatCurrency(p.Balance), FormatCurrency(sc.EnhancedSeries[i].Balance))
		} else {
			fmt.Fprintf(buf, "  %-6d %18s\n", p.Period, FormatCurrency(p.Balance))
		}
	}
}

func writeBusiness(buf *bytes.Buffer, b *domain.BusinessProjection) {
	fmt.Fprintf(buf, "  Weekly revenue:          %s\n", FormatCurrency(b.WeeklyRevenue))
	fmt.Fprintf(buf, "  Weekly cost:             %s\n", FormatCurrency(b.WeeklyCost))
	fmt.Fprintf(buf, "  Weekly profit:           %s\n", FormatCurrency(b.WeeklyProfit))
	fmt.Fprintf(buf, "  Monthly profit (year 1): %s\n", FormatCurrency(pdec.NewMoneyFromDecimal(b.AnnualProfit).Monthly().Decimal))
	fmt.Fprintf(buf, "  Net profit margin:       %s\n", FormatRatio(b.NetProfitMargin, "%"))
	fmt.Fprintf(buf, "  Weeks to break even:     %s\n", FormatRatio(b.BreakEvenWeeks, " weeks"))
	if b.BreakEven != nil {
		fmt.Fprintf(buf, "  Cash break-even:         %s of year %d (%s months in)\n",
			dateutil.MonthName(b.BreakEven.Month), b.BreakEven.Year, b.BreakEven.MonthsFromStart.StringFixed(1))
	} else {
		fmt.Fprintln(buf, "  Cash break-even:         not within the projection")
	}
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "  %-6s %15s %15s %15s %15s\n", "YEAR", "REVENUE", "COST", "PROFIT", "CUMULATIVE")
	fmt.Fprintln(buf, "  "+strings.Repeat("-", 70))
	for _, y := range b.Years {
		fmt.Fprintf(buf, "  %-6d %15s %15s %15s %15s\n", y.Year, FormatCurrency(y.Revenue), FormatCurrency(y.Cost), FormatCurrency(y.Profit), FormatCurrency(y.CumulativeCash))
	}
}

func writeHighlights(buf *bytes.Buffer, h domain.Highlights) {
	if h.EarliestGoalScenario == "" && h.LargestFinalBalance == "" && h.FastestBreakEven == "" && len(h.Unreached) == 0 {
		return
	}
	fmt.Fprintln(buf, "HIGHLIGHTS")
	fmt.Fprintln(buf, "==========")
	if h.EarliestGoalScenario != "" {
		fmt.Fprintf(buf, "Earliest goal:        %s (age %d)\n", h.EarliestGoalScenario, *h.EarliestGoalPeriod)
	}
	if h.LargestFinalBalance != "" {
		fmt.Fprintf(buf, "Largest final balance: %s\n", h.LargestFinalBalance)
	}
	if h.FastestBreakEven != "" {
		fmt.Fprintf(buf, "Fastest break-even:   %s\n", h.FastestBreakEven)
	}
	if len(h.Unreached) > 0 {
		fmt.Fprintf(buf, "Goal not reached:     %s\n", strings.Join(h.Unreached, ", "))
	}
	fmt.Fprintln(buf)
}
