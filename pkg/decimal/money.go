package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Monthly converts an annual amount to monthly
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(decimal.NewFromInt(12))}
}

// String returns the string representation with two decimals
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount as US currency with thousands separators, e.g. -$1,234.50
func (m Money) Format() string {
	s := m.Decimal.Abs().StringFixed(2)
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}

	var b strings.Builder
	if m.Decimal.Round(2).IsNegative() {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteString(frac)
	return b.String()
}

// FromPercent converts a percentage (7 for 7%) into a rate (0.07).
func FromPercent(percent decimal.Decimal) decimal.Decimal {
	return percent.Div(hundred)
}

// ToPercent converts a rate (0.07) into a percentage (7).
func ToPercent(rate decimal.Decimal) decimal.Decimal {
	return rate.Mul(hundred)
}

// ApplyPercent returns base adjusted by percent, i.e. base * (1 + percent/100).
func ApplyPercent(base, percent decimal.Decimal) decimal.Decimal {
	return base.Mul(one.Add(FromPercent(percent)))
}

// GrowthFactor returns (1 + rate)^periods for a non-negative whole number of periods.
func GrowthFactor(rate decimal.Decimal, periods int) decimal.Decimal {
	factor := one
	base := one.Add(rate)
	for i := 0; i < periods; i++ {
		factor = factor.Mul(base)
	}
	return factor
}
