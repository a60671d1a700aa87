package calculation

import (
	"github.com/napkincalc/napkin/internal/domain"
	pdec "github.com/napkincalc/napkin/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FIRENumber is the balance that sustains annualSpending at the given
// withdrawal rate (percent): spending / (rate/100).
func FIRENumber(annualSpending, withdrawalRate decimal.Decimal) (decimal.Decimal, error) {
	if !withdrawalRate.IsPositive() {
		return decimal.Zero, domain.NewInvalidInput("withdrawal_rate", "must be positive, got %s%%", withdrawalRate)
	}
	if annualSpending.IsNegative() {
		return decimal.Zero, domain.NewInvalidInput("annual_spending", "cannot be negative")
	}
	return annualSpending.Div(pdec.FromPercent(withdrawalRate)), nil
}

// BaristaFIRENumber is the balance needed once part-time income covers part
// of spending. It is zero when part-time income covers everything.
func BaristaFIRENumber(annualSpending, partTimeIncome, withdrawalRate decimal.Decimal) (decimal.Decimal, error) {
	if annualSpending.IsNegative() {
		return decimal.Zero, domain.NewInvalidInput("annual_spending", "cannot be negative")
	}
	gap := annualSpending.Sub(partTimeIncome)
	if gap.IsNegative() {
		gap = decimal.Zero
	}
	return FIRENumber(gap, withdrawalRate)
}

// CoastNumber is the balance needed today so that, with no further
// contributions, it grows to target after periods at realRate.
func CoastNumber(target, realRate decimal.Decimal, periods int) (decimal.Decimal, error) {
	if periods < 0 {
		return decimal.Zero, domain.NewInvalidInput("retirement_age", "must not be before the current age")
	}
	if realRate.LessThanOrEqual(minusOne) {
		return decimal.Zero, domain.NewInvalidInput("real_rate", "must be greater than -100%%")
	}
	return target.Div(pdec.GrowthFactor(realRate, periods)), nil
}
