package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// GlobalAssumptions supplies rates for scenarios that do not set their own.
// All rates are percentages.
type GlobalAssumptions struct {
	NominalGrowthRate decimal.Decimal `yaml:"nominal_growth_rate" json:"nominal_growth_rate"`
	InflationRate     decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`
	WithdrawalRate    decimal.Decimal `yaml:"withdrawal_rate" json:"withdrawal_rate"`
}

// DefaultAssumptions are used when a configuration omits global_assumptions.
func DefaultAssumptions() GlobalAssumptions {
	return GlobalAssumptions{
		NominalGrowthRate: decimal.NewFromInt(7),
		InflationRate:     decimal.NewFromInt(3),
		WithdrawalRate:    decimal.NewFromInt(4),
	}
}

// Scenario is one calculator run described in a configuration file.
// Ages are whole years and double as projection periods.
type Scenario struct {
	Name string         `yaml:"name" json:"name"`
	Kind CalculatorKind `yaml:"kind" json:"kind"`

	CurrentAge    int        `yaml:"current_age,omitempty" json:"current_age,omitempty"`
	BirthDate     *time.Time `yaml:"birth_date,omitempty" json:"birth_date,omitempty"`
	EndAge        int        `yaml:"end_age,omitempty" json:"end_age,omitempty"`
	TransitionAge int        `yaml:"transition_age,omitempty" json:"transition_age,omitempty"`
	RetirementAge int        `yaml:"retirement_age,omitempty" json:"retirement_age,omitempty"`

	StartingBalance    decimal.Decimal `yaml:"starting_balance,omitempty" json:"starting_balance"`
	AnnualContribution decimal.Decimal `yaml:"annual_contribution,omitempty" json:"annual_contribution"`
	AnnualSpending     decimal.Decimal `yaml:"annual_spending,omitempty" json:"annual_spending"`
	PartTimeIncome     decimal.Decimal `yaml:"part_time_income,omitempty" json:"part_time_income"`
	SideIncome         decimal.Decimal `yaml:"side_income,omitempty" json:"side_income"`
	TargetBalance      decimal.Decimal `yaml:"target_balance,omitempty" json:"target_balance"`

	// Optional per-scenario overrides of the global assumptions.
	NominalGrowthRate *decimal.Decimal `yaml:"nominal_growth_rate,omitempty" json:"nominal_growth_rate,omitempty"`
	InflationRate     *decimal.Decimal `yaml:"inflation_rate,omitempty" json:"inflation_rate,omitempty"`
	WithdrawalRate    *decimal.Decimal `yaml:"withdrawal_rate,omitempty" json:"withdrawal_rate,omitempty"`

	Business *BusinessModel `yaml:"business,omitempty" json:"business,omitempty"`
}

// Rates resolves the scenario's effective rates against the global assumptions.
func (s *Scenario) Rates(ga GlobalAssumptions) (growth, inflation, withdrawal decimal.Decimal) {
	growth, inflation, withdrawal = ga.NominalGrowthRate, ga.InflationRate, ga.WithdrawalRate
	if s.NominalGrowthRate != nil {
		growth = *s.NominalGrowthRate
	}
	if s.InflationRate != nil {
		inflation = *s.InflationRate
	}
	if s.WithdrawalRate != nil {
		withdrawal = *s.WithdrawalRate
	}
	return growth, inflation, withdrawal
}

// Configuration is the top-level scenario file.
type Configuration struct {
	GlobalAssumptions GlobalAssumptions `yaml:"global_assumptions" json:"global_assumptions"`
	Scenarios         []Scenario        `yaml:"scenarios" json:"scenarios"`
}

// ScenarioSummary is the complete result of running one scenario.
type ScenarioSummary struct {
	Name         string            `json:"name" yaml:"name"`
	Kind         CalculatorKind    `json:"kind" yaml:"kind"`
	RealRate     decimal.Decimal   `json:"real_rate" yaml:"real_rate"`
	FIRENumber   decimal.Decimal   `json:"fire_number" yaml:"fire_number"`
	Series       []ProjectionPoint `json:"series,omitempty" yaml:"series,omitempty"`
	Goal         GoalResult        `json:"goal" yaml:"goal"`
	FinalBalance decimal.Decimal   `json:"final_balance" yaml:"final_balance"`

	// Coast FIRE only.
	CoastNumber     *decimal.Decimal `json:"coast_number,omitempty" yaml:"coast_number,omitempty"`
	AlreadyCoasting bool             `json:"already_coasting,omitempty" yaml:"already_coasting,omitempty"`

	// Side-hustle FIRE only.
	EnhancedSeries []ProjectionPoint `json:"enhanced_series,omitempty" yaml:"enhanced_series,omitempty"`
	Comparison     *ComparisonResult `json:"comparison,omitempty" yaml:"comparison,omitempty"`

	Business *BusinessProjection `json:"business,omitempty" yaml:"business,omitempty"`
}

// Highlights picks out notable scenarios across a report.
type Highlights struct {
	EarliestGoalScenario string   `json:"earliest_goal_scenario,omitempty" yaml:"earliest_goal_scenario,omitempty"`
	EarliestGoalPeriod   *int     `json:"earliest_goal_period,omitempty" yaml:"earliest_goal_period,omitempty"`
	LargestFinalBalance  string   `json:"largest_final_balance,omitempty" yaml:"largest_final_balance,omitempty"`
	FastestBreakEven     string   `json:"fastest_break_even,omitempty" yaml:"fastest_break_even,omitempty"`
	Unreached            []string `json:"unreached,omitempty" yaml:"unreached,omitempty"`
}

// Report is the result of running every scenario in a configuration.
type Report struct {
	GeneratedAt time.Time         `json:"generated_at" yaml:"generated_at"`
	Scenarios   []ScenarioSummary `json:"scenarios" yaml:"scenarios"`
	Highlights  Highlights        `json:"highlights" yaml:"highlights"`
	Assumptions []string          `json:"assumptions" yaml:"assumptions"`
}

// GenerateAssumptions renders the global assumptions for report headers.
func (ga *GlobalAssumptions) GenerateAssumptions() []string {
	return []string{
		fmt.Sprintf("Nominal investment growth: %s%% annually", ga.NominalGrowthRate.StringFixed(1)),
		fmt.Sprintf("Inflation: %s%% annually", ga.InflationRate.StringFixed(1)),
		fmt.Sprintf("Safe withdrawal rate: %s%%", ga.WithdrawalRate.StringFixed(1)),
		"Balances are in today's dollars (growth is converted to a real rate)",
		"Contributions and withdrawals land at the end of each year",
	}
}
