package calculation

import (
	"fmt"

	"github.com/napkincalc/napkin/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	eightHours    = decimal.NewFromInt(8)
	twelveHours   = decimal.NewFromInt(12)
	fortyHours    = decimal.NewFromInt(40)
	dayHours      = decimal.NewFromInt(24)
	overtimeRate  = decimal.NewFromFloat(1.5)
	doubleTimePay = decimal.NewFromInt(2)
)

// WeeklyPay splits one week of daily hours into regular, overtime and
// double-time hours under rule and prices them at hourlyRate.
//
// RuleCalifornia applies the daily 8/12 hour thresholds, treats the seventh
// consecutive worked day as overtime for the first 8 hours and double time
// beyond, then moves regular hours above 40 in the week to overtime.
func WeeklyPay(dailyHours []decimal.Decimal, hourlyRate decimal.Decimal, rule domain.OvertimeRule) (domain.PayBreakdown, error) {
	if len(dailyHours) > 7 {
		return domain.PayBreakdown{}, domain.NewInvalidInput("daily_hours", "a week has at most 7 days, got %d", len(dailyHours))
	}
	if hourlyRate.IsNegative() {
		return domain.PayBreakdown{}, domain.NewInvalidInput("hourly_rate", "cannot be negative, got %s", hourlyRate)
	}
	for i, h := range dailyHours {
		if h.IsNegative() || h.GreaterThan(dayHours) {
			return domain.PayBreakdown{}, domain.NewInvalidInput(fmt.Sprintf("daily_hours[%d]", i), "must be between 0 and 24, got %s", h)
		}
	}

	var regular, overtime, double decimal.Decimal
	switch rule {
	case domain.RuleNone:
		regular = sumHours(dailyHours)
	case domain.RuleWeekly40:
		regular, overtime = splitAt(sumHours(dailyHours), fortyHours)
	case domain.RuleDaily8:
		for _, h := range dailyHours {
			r, o := splitAt(h, eightHours)
			regular = regular.Add(r)
			overtime = overtime.Add(o)
		}
	case domain.RuleCalifornia:
		seventhDay := len(dailyHours) == 7 && allWorked(dailyHours)
		for i, h := range dailyHours {
			if seventhDay && i == 6 {
				o, d := splitAt(h, eightHours)
				overtime = overtime.Add(o)
				double = double.Add(d)
				continue
			}
			r, rest := splitAt(h, eightHours)
			o, d := splitAt(rest, twelveHours.Sub(eightHours))
			regular = regular.Add(r)
			overtime = overtime.Add(o)
			double = double.Add(d)
		}
		if regular.GreaterThan(fortyHours) {
			overtime = overtime.Add(regular.Sub(fortyHours))
			regular = fortyHours
		}
	default:
		return domain.PayBreakdown{}, domain.NewInvalidInput("rule", "unsupported overtime rule %s", rule)
	}

	p := domain.PayBreakdown{
		Rule:            rule,
		RegularHours:    regular,
		OvertimeHours:   overtime,
		DoubleTimeHours: double,
		RegularPay:      regular.Mul(hourlyRate).Round(2),
		OvertimePay:     overtime.Mul(hourlyRate).Mul(overtimeRate).Round(2),
		DoubleTimePay:   double.Mul(hourlyRate).Mul(doubleTimePay).Round(2),
	}
	p.GrossPay = p.RegularPay.Add(p.OvertimePay).Add(p.DoubleTimePay)
	return p, nil
}

func sumHours(hours []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, h := range hours {
		total = total.Add(h)
	}
	return total
}

// splitAt returns min(h, limit) and the remainder above limit.
func splitAt(h, limit decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	if h.LessThanOrEqual(limit) {
		return h, decimal.Zero
	}
	return limit, h.Sub(limit)
}

func allWorked(hours []decimal.Decimal) bool {
	for _, h := range hours {
		if !h.IsPositive() {
			return false
		}
	}
	return true
}
