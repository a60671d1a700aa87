package server

import (
	"github.com/napkincalc/napkin/internal/domain"
	"github.com/shopspring/decimal"
)

// ContributionSpec describes a contribution schedule in request bodies.
// Amount applies every period; from TransitionPeriod onward AfterTransition
// applies instead. Overrides replace single periods.
type ContributionSpec struct {
	Amount           decimal.Decimal         `json:"amount"`
	TransitionPeriod *int                    `json:"transition_period,omitempty"`
	AfterTransition  decimal.Decimal         `json:"after_transition"`
	Overrides        map[int]decimal.Decimal `json:"overrides,omitempty"`
}

type ProjectionRequest struct {
	CurrentPeriod     int              `json:"current_period"`
	EndPeriod         int              `json:"end_period"`
	StartingBalance   decimal.Decimal  `json:"starting_balance"`
	NominalGrowthRate decimal.Decimal  `json:"nominal_growth_rate"`
	InflationRate     decimal.Decimal  `json:"inflation_rate"`
	Contributions     ContributionSpec `json:"contributions"`
	Target            *decimal.Decimal `json:"target,omitempty"`
}

type ProjectionResponse struct {
	RealRate     decimal.Decimal          `json:"real_rate"`
	Series       []domain.ProjectionPoint `json:"series"`
	FinalBalance decimal.Decimal          `json:"final_balance"`
	Goal         *domain.GoalResult       `json:"goal,omitempty"`
}

type CompareRequest struct {
	Base     ProjectionRequest `json:"base"`
	Enhanced ProjectionRequest `json:"enhanced"`
	Target   decimal.Decimal   `json:"target"`
}

type CompareResponse struct {
	domain.ComparisonResult
}

type ScenarioRequest struct {
	Assumptions *domain.GlobalAssumptions `json:"assumptions,omitempty"`
	Scenario    domain.Scenario           `json:"scenario"`
}

type PayrollRequest struct {
	DailyHours []decimal.Decimal   `json:"daily_hours"`
	HourlyRate decimal.Decimal     `json:"hourly_rate"`
	Rule       domain.OvertimeRule `json:"rule"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}
