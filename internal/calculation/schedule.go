package calculation

import (
	"github.com/napkincalc/napkin/internal/domain"
	"github.com/shopspring/decimal"
)

// ConstantSchedule contributes the same amount every period.
func ConstantSchedule(amount decimal.Decimal) domain.ContributionSchedule {
	return domain.ScheduleFunc(func(int) decimal.Decimal { return amount })
}

// TransitionSchedule contributes before until transitionPeriod, and after
// from transitionPeriod onward (the transition period itself uses after).
func TransitionSchedule(transitionPeriod int, before, after decimal.Decimal) domain.ContributionSchedule {
	return domain.ScheduleFunc(func(period int) decimal.Decimal {
		if period < transitionPeriod {
			return before
		}
		return after
	})
}

// TableSchedule looks each period up in table and falls back to fallback for
// periods the table does not list.
func TableSchedule(table map[int]decimal.Decimal, fallback decimal.Decimal) domain.ContributionSchedule {
	return OverrideSchedule(table, ConstantSchedule(fallback))
}

// OverrideSchedule replaces base for the periods listed in overrides.
// The map is copied; a nil base contributes nothing.
func OverrideSchedule(overrides map[int]decimal.Decimal, base domain.ContributionSchedule) domain.ContributionSchedule {
	t := make(map[int]decimal.Decimal, len(overrides))
	for k, v := range overrides {
		t[k] = v
	}
	return domain.ScheduleFunc(func(period int) decimal.Decimal {
		if v, ok := t[period]; ok {
			return v
		}
		if base == nil {
			return decimal.Zero
		}
		return base.ContributionFor(period)
	})
}

// CombinedSchedule sums several schedules period by period. Nil entries are skipped.
func CombinedSchedule(schedules ...domain.ContributionSchedule) domain.ContributionSchedule {
	return domain.ScheduleFunc(func(period int) decimal.Decimal {
		total := decimal.Zero
		for _, s := range schedules {
			if s == nil {
				continue
			}
			total = total.Add(s.ContributionFor(period))
		}
		return total
	})
}
