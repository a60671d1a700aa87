package calculation

import (
	"github.com/napkincalc/napkin/internal/domain"
	pdec "github.com/napkincalc/napkin/pkg/decimal"
	"github.com/shopspring/decimal"
)

var (
	one        = decimal.NewFromInt(1)
	minusOne   = decimal.NewFromInt(-1)
	minPercent = decimal.NewFromInt(-100)
)

// RealRate converts a nominal growth rate and an inflation rate, both in
// percent, into the inflation-adjusted rate per period as a fraction:
// (1 + nominal/100) / (1 + inflation/100) - 1.
func RealRate(nominal, inflation decimal.Decimal) (decimal.Decimal, error) {
	if inflation.LessThanOrEqual(minPercent) {
		return decimal.Zero, &domain.InvalidInputError{
			Field:  "inflation_rate",
			Reason: "must be greater than -100%, got " + inflation.String() + "%",
			Err:    domain.ErrInvalidInflationRate,
		}
	}
	growth := one.Add(pdec.FromPercent(nominal))
	deflator := one.Add(pdec.FromPercent(inflation))
	return growth.Div(deflator).Sub(one), nil
}
