package calculation

import (
	"fmt"

	"github.com/napkincalc/napkin/internal/domain"
	"github.com/shopspring/decimal"
)

// Compare projects base and enhanced, searches both for target, and reports
// how many periods sooner enhanced reaches it. PeriodsSaved is only set when
// both scenarios reach the goal; any other combination is reported through
// Outcome rather than by substituting the end period.
func Compare(base, enhanced domain.ProjectionInput, target decimal.Decimal) (domain.ComparisonResult, error) {
	res, _, _, err := compareSeries(base, enhanced, target)
	return res, err
}

func compareSeries(base, enhanced domain.ProjectionInput, target decimal.Decimal) (domain.ComparisonResult, []domain.ProjectionPoint, []domain.ProjectionPoint, error) {
	baseSeries, err := BuildSeries(base)
	if err != nil {
		return domain.ComparisonResult{}, nil, nil, fmt.Errorf("base scenario: %w", err)
	}
	enhancedSeries, err := BuildSeries(enhanced)
	if err != nil {
		return domain.ComparisonResult{}, nil, nil, fmt.Errorf("enhanced scenario: %w", err)
	}
	return CompareGoals(FindGoal(baseSeries, target), FindGoal(enhancedSeries, target)), baseSeries, enhancedSeries, nil
}

// CompareGoals classifies two goal results that were searched against the same target.
func CompareGoals(base, enhanced domain.GoalResult) domain.ComparisonResult {
	res := domain.ComparisonResult{Base: base, Enhanced: enhanced}
	switch {
	case base.Reached && enhanced.Reached:
		saved := *base.Period - *enhanced.Period
		res.Outcome = domain.OutcomeComparable
		res.PeriodsSaved = &saved
	case base.Reached:
		res.Outcome = domain.OutcomeBaseOnly
	case enhanced.Reached:
		res.Outcome = domain.OutcomeEnhancedOnly
	default:
		res.Outcome = domain.OutcomeNeitherReached
	}
	return res
}
