package output

import (
	"fmt"
	"strconv"

	"github.com/napkincalc/napkin/internal/domain"
	pdec "github.com/napkincalc/napkin/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as USD with thousands separators and 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string { return pdec.NewMoneyFromDecimal(amount).Format() }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatRatio renders a possibly undefined ratio followed by unit.
func FormatRatio(r domain.Ratio, unit string) string {
	if !r.Defined {
		return "n/a (" + r.Reason + ")"
	}
	return r.Value.StringFixed(2) + unit
}

// FormatGoal describes when a goal was reached, using label for the period ("age", "month").
func FormatGoal(g domain.GoalResult, label string) string {
	if !g.Reached {
		return "not reached"
	}
	return fmt.Sprintf("%s %d", label, *g.Period)
}

// FormatPeriodsSaved renders the outcome of a side-by-side comparison.
func FormatPeriodsSaved(c *domain.ComparisonResult) string {
	if c == nil {
		return ""
	}
	switch c.Outcome {
	case domain.OutcomeComparable:
		return fmt.Sprintf("%d years", *c.PeriodsSaved)
	case domain.OutcomeBaseOnly:
		return "only without side income"
	case domain.OutcomeEnhancedOnly:
		return "only with side income"
	default:
		return "goal not reached either way"
	}
}

func goalLabel(k domain.CalculatorKind) string {
	if k == domain.KindBusiness {
		return "month"
	}
	return "age"
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }

func optionalInt(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

func optionalDecimal(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.StringFixed(2)
}

var hundred = decimal.NewFromInt(100)
