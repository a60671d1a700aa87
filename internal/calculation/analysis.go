package calculation

import (
	"github.com/napkincalc/napkin/internal/domain"
	"github.com/shopspring/decimal"
)

// generateHighlights picks the earliest goal, the largest ending balance and
// the fastest business break-even across scenarios.
func generateHighlights(scenarios []domain.ScenarioSummary) domain.Highlights {
	var h domain.Highlights
	var bestBalance decimal.Decimal
	var bestBalanceSet bool
	var fastestMonths decimal.Decimal

	for _, sc := range scenarios {
		if sc.Kind == domain.KindBusiness {
			if sc.Business != nil && sc.Business.BreakEven != nil {
				months := sc.Business.BreakEven.MonthsFromStart
				if h.FastestBreakEven == "" || months.LessThan(fastestMonths) {
					fastestMonths = months
					h.FastestBreakEven = sc.Name
				}
			} else {
				h.Unreached = append(h.Unreached, sc.Name)
			}
			continue
		}

		if !sc.Goal.Reached {
			h.Unreached = append(h.Unreached, sc.Name)
		} else if h.EarliestGoalPeriod == nil || *sc.Goal.Period < *h.EarliestGoalPeriod {
			p := *sc.Goal.Period
			h.EarliestGoalPeriod = &p
			h.EarliestGoalScenario = sc.Name
		}
		if !bestBalanceSet || sc.FinalBalance.GreaterThan(bestBalance) {
			bestBalance = sc.FinalBalance
			bestBalanceSet = true
			h.LargestFinalBalance = sc.Name
		}
	}
	return h
}
