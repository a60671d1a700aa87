package config

import (
	"fmt"
	"os"

	"github.com/napkincalc/napkin/internal/calculation"
	"github.com/napkincalc/napkin/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const maxAge = 120

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a configuration document. Global assumptions
// missing from the document keep their defaults.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	config := domain.Configuration{GlobalAssumptions: domain.DefaultAssumptions()}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// SaveToFile writes config as YAML.
func (ip *InputParser) SaveToFile(config *domain.Configuration, filename string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// ValidateConfiguration validates the loaded configuration. Errors carry the
// path of the offending field, e.g. scenarios[1].end_age.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.ValidateAssumptions(config.GlobalAssumptions); err != nil {
		return domain.PrefixField("global_assumptions", err)
	}

	if len(config.Scenarios) == 0 {
		return domain.NewInvalidInput("scenarios", "no scenarios provided")
	}

	seen := make(map[string]int, len(config.Scenarios))
	for i := range config.Scenarios {
		sc := &config.Scenarios[i]
		if err := ip.ValidateScenario(sc); err != nil {
			return domain.PrefixField(fmt.Sprintf("scenarios[%d]", i), err)
		}
		if j, dup := seen[sc.Name]; dup {
			return domain.NewInvalidInput(fmt.Sprintf("scenarios[%d].name", i), "duplicate of scenarios[%d] %q", j, sc.Name)
		}
		seen[sc.Name] = i
	}

	return nil
}

// ValidateAssumptions checks the global rates.
func (ip *InputParser) ValidateAssumptions(ga domain.GlobalAssumptions) error {
	return validateRates(ga.NominalGrowthRate, ga.InflationRate, ga.WithdrawalRate)
}

// ValidateScenario checks one scenario on its own. Field names in the
// returned error are relative to the scenario.
func (ip *InputParser) ValidateScenario(sc *domain.Scenario) error {
	if sc.Name == "" {
		return domain.NewInvalidInput("name", "scenario name is required")
	}

	switch sc.Kind {
	case domain.KindBusiness:
		if sc.Business == nil {
			return domain.NewInvalidInput("business", "business model is required for kind %s", sc.Kind)
		}
		if err := calculation.ValidateBusinessModel(*sc.Business); err != nil {
			return domain.PrefixField("business", err)
		}
		return nil
	case domain.KindTraditionalFIRE, domain.KindBaristaFIRE, domain.KindCoastFIRE, domain.KindSideHustleFIRE:
		return validateFIRE(sc)
	default:
		return domain.NewInvalidInput("kind", "must be one of traditional_fire, barista_fire, coast_fire, side_hustle_fire, business")
	}
}

func validateFIRE(sc *domain.Scenario) error {
	if sc.CurrentAge < 0 || sc.CurrentAge > maxAge {
		return domain.NewInvalidInput("current_age", "must be between 0 and %d, got %d", maxAge, sc.CurrentAge)
	}
	age, err := calculation.CurrentAge(sc)
	if err != nil {
		return err
	}
	if sc.EndAge <= 0 {
		return domain.NewInvalidInput("end_age", "is required")
	}
	if sc.EndAge < age {
		return domain.NewInvalidInput("end_age", "must not be before current age %d, got %d", age, sc.EndAge)
	}
	if sc.EndAge-age >= calculation.MaxProjectionPeriods {
		return domain.NewInvalidInput("end_age", "projection longer than %d years", calculation.MaxProjectionPeriods-1)
	}

	amounts := []struct {
		field string
		v     decimal.Decimal
	}{
		{"starting_balance", sc.StartingBalance},
		{"annual_contribution", sc.AnnualContribution},
		{"annual_spending", sc.AnnualSpending},
		{"part_time_income", sc.PartTimeIncome},
		{"side_income", sc.SideIncome},
		{"target_balance", sc.TargetBalance},
	}
	for _, a := range amounts {
		if a.v.IsNegative() {
			return domain.NewInvalidInput(a.field, "cannot be negative, got %s", a.v)
		}
	}

	switch sc.Kind {
	case domain.KindBaristaFIRE, domain.KindCoastFIRE:
		if sc.TransitionAge < age || sc.TransitionAge > sc.EndAge {
			return domain.NewInvalidInput("transition_age", "must be between %d and %d, got %d", age, sc.EndAge, sc.TransitionAge)
		}
	case domain.KindSideHustleFIRE:
		if !sc.SideIncome.IsPositive() {
			return domain.NewInvalidInput("side_income", "must be positive for kind %s", sc.Kind)
		}
	}
	if sc.Kind == domain.KindCoastFIRE && sc.RetirementAge != 0 && sc.RetirementAge < age {
		return domain.NewInvalidInput("retirement_age", "must not be before current age %d, got %d", age, sc.RetirementAge)
	}

	growth, inflation, withdrawal := sc.Rates(domain.GlobalAssumptions{
		NominalGrowthRate: decimal.Zero,
		InflationRate:     decimal.Zero,
		WithdrawalRate:    decimal.NewFromInt(1),
	})
	return validateRates(growth, inflation, withdrawal)
}

func validateRates(growth, inflation, withdrawal decimal.Decimal) error {
	floor := decimal.NewFromInt(-100)
	if growth.LessThanOrEqual(floor) {
		return domain.NewInvalidInput("nominal_growth_rate", "must be greater than -100, got %s", growth)
	}
	if inflation.LessThanOrEqual(floor) {
		return domain.NewInvalidInput("inflation_rate", "must be greater than -100, got %s", inflation)
	}
	if !withdrawal.IsPositive() || withdrawal.GreaterThan(decimal.NewFromInt(100)) {
		return domain.NewInvalidInput("withdrawal_rate", "must be greater than 0 and at most 100, got %s", withdrawal)
	}
	return nil
}

// CreateExampleConfiguration creates an example configuration with one
// scenario of every calculator kind.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	d := decimal.NewFromInt
	seasonal := []decimal.Decimal{
		decimal.NewFromFloat(0.6), decimal.NewFromFloat(0.6), decimal.NewFromFloat(0.8),
		decimal.NewFromFloat(1.0), decimal.NewFromFloat(1.2), decimal.NewFromFloat(1.4),
		decimal.NewFromFloat(1.5), decimal.NewFromFloat(1.4), decimal.NewFromFloat(1.1),
		decimal.NewFromFloat(0.9), decimal.NewFromFloat(0.7), decimal.NewFromFloat(0.8),
	}

	return &domain.Configuration{
		GlobalAssumptions: domain.DefaultAssumptions(),
		Scenarios: []domain.Scenario{
			{
				Name:               "Traditional FIRE",
				Kind:               domain.KindTraditionalFIRE,
				CurrentAge:         30,
				EndAge:             90,
				StartingBalance:    d(50000),
				AnnualContribution: d(30000),
				AnnualSpending:     d(40000),
			},
			{
				Name:               "Barista FIRE",
				Kind:               domain.KindBaristaFIRE,
				CurrentAge:         30,
				EndAge:             90,
				TransitionAge:      45,
				StartingBalance:    d(50000),
				AnnualContribution: d(30000),
				AnnualSpending:     d(40000),
				PartTimeIncome:     d(25000),
			},
			{
				Name:               "Coast FIRE",
				Kind:               domain.KindCoastFIRE,
				CurrentAge:         30,
				EndAge:             90,
				TransitionAge:      40,
				RetirementAge:      65,
				StartingBalance:    d(50000),
				AnnualContribution: d(20000),
				AnnualSpending:     d(40000),
			},
			{
				Name:               "Side Hustle FIRE",
				Kind:               domain.KindSideHustleFIRE,
				CurrentAge:         30,
				EndAge:             90,
				StartingBalance:    d(50000),
				AnnualContribution: d(30000),
				AnnualSpending:     d(40000),
				SideIncome:         d(12000),
			},
			{
				Name: "Coffee Cart",
				Kind: domain.KindBusiness,
				Business: &domain.BusinessModel{
					StartupCost:         d(25000),
					PricePerUnit:        decimal.NewFromFloat(4.5),
					UnitsPerDay:         d(120),
					DaysPerWeek:         d(6),
					WeeksPerYear:        d(50),
					VariableCostPercent: d(35),
					FixedCostPerWeek:    d(600),
					AnnualGrowthPercent: d(5),
					ProjectionYears:     5,
					SeasonalFactors:     seasonal,
				},
			},
		},
	}
}
