package calculation

import (
	"github.com/napkincalc/napkin/internal/domain"
	"github.com/shopspring/decimal"
)

// FindGoal returns the first period whose balance is at least target.
// A balance equal to the target counts as reached.
func FindGoal(series []domain.ProjectionPoint, target decimal.Decimal) domain.GoalResult {
	for _, pt := range series {
		if pt.Balance.GreaterThanOrEqual(target) {
			period := pt.Period
			return domain.GoalResult{Reached: true, Period: &period}
		}
	}
	return domain.GoalResult{}
}
