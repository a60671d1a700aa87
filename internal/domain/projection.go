package domain

import (
	"github.com/shopspring/decimal"
)

// ContributionSchedule maps a period to the net amount added to (positive) or
// withdrawn from (negative) the balance during that period.
type ContributionSchedule interface {
	ContributionFor(period int) decimal.Decimal
}

// ScheduleFunc adapts an ordinary function to a ContributionSchedule.
type ScheduleFunc func(period int) decimal.Decimal

func (f ScheduleFunc) ContributionFor(period int) decimal.Decimal { return f(period) }

// ProjectionInput is everything needed to build one projection series.
// Rates are percentages: 7 means 7%.
type ProjectionInput struct {
	CurrentPeriod     int                  `json:"current_period" yaml:"current_period"`
	EndPeriod         int                  `json:"end_period" yaml:"end_period"`
	StartingBalance   decimal.Decimal      `json:"starting_balance" yaml:"starting_balance"`
	NominalGrowthRate decimal.Decimal      `json:"nominal_growth_rate" yaml:"nominal_growth_rate"`
	InflationRate     decimal.Decimal      `json:"inflation_rate" yaml:"inflation_rate"`
	Schedule          ContributionSchedule `json:"-" yaml:"-"`
}

// ProjectionPoint is the balance at the end of a single period.
type ProjectionPoint struct {
	Period  int             `json:"period" yaml:"period"`
	Balance decimal.Decimal `json:"balance" yaml:"balance"`
}

// GoalResult reports the first period at which a series met its target.
// Period is nil when the goal was not reached.
type GoalResult struct {
	Reached bool `json:"reached" yaml:"reached"`
	Period  *int `json:"period,omitempty" yaml:"period,omitempty"`
}

// ComparisonOutcome classifies how two goal searches relate to each other.
type ComparisonOutcome string

const (
	// OutcomeComparable means both scenarios reached the goal.
	OutcomeComparable ComparisonOutcome = "comparable"
	// OutcomeBaseOnly means only the base scenario reached the goal.
	OutcomeBaseOnly ComparisonOutcome = "base_only"
	// OutcomeEnhancedOnly means only the enhanced scenario reached the goal.
	OutcomeEnhancedOnly ComparisonOutcome = "enhanced_only"
	// OutcomeNeitherReached means neither scenario reached the goal.
	OutcomeNeitherReached ComparisonOutcome = "neither_reached"
)

// ComparisonResult holds both goal searches and, when both reached the
// goal, how many periods earlier the enhanced scenario got there.
type ComparisonResult struct {
	Base         GoalResult        `json:"base" yaml:"base"`
	Enhanced     GoalResult        `json:"enhanced" yaml:"enhanced"`
	Outcome      ComparisonOutcome `json:"outcome" yaml:"outcome"`
	PeriodsSaved *int              `json:"periods_saved,omitempty" yaml:"periods_saved,omitempty"`
}

// Comparable reports whether PeriodsSaved carries a meaningful number.
func (c ComparisonResult) Comparable() bool {
	return c.Outcome == OutcomeComparable && c.PeriodsSaved != nil
}
