package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/napkincalc/napkin/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `global_assumptions:
  nominal_growth_rate: 8
  inflation_rate: 2.5
  withdrawal_rate: 3.5

scenarios:
  - name: "Lean FIRE"
    kind: traditional_fire
    current_age: 32
    end_age: 85
    starting_balance: 120000
    annual_contribution: 25000
    annual_spending: 30000
  - name: "Weekend Bakery"
    kind: side-hustle-fire
    birth_date: 1990-04-01T00:00:00Z
    end_age: 70
    annual_contribution: 20000
    annual_spending: 45000
    side_income: 9000
    inflation_rate: 3
  - name: "Food Truck"
    kind: business
    business:
      startup_cost: 60000
      price_per_unit: 12
      units_per_day: 80
      days_per_week: 5
      weeks_per_year: 48
      variable_cost_percent: 40
      fixed_cost_per_week: 900
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Success(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile(writeTemp(t, testConfig))
	require.NoError(t, err)

	assert.True(t, config.GlobalAssumptions.NominalGrowthRate.Equal(decimal.NewFromInt(8)))
	assert.True(t, config.GlobalAssumptions.InflationRate.Equal(decimal.NewFromFloat(2.5)))
	require.Len(t, config.Scenarios, 3)

	lean := config.Scenarios[0]
	assert.Equal(t, domain.KindTraditionalFIRE, lean.Kind)
	assert.Equal(t, 32, lean.CurrentAge)
	assert.True(t, lean.StartingBalance.Equal(decimal.NewFromInt(120000)))

	bakery := config.Scenarios[1]
	assert.Equal(t, domain.KindSideHustleFIRE, bakery.Kind)
	require.NotNil(t, bakery.BirthDate)
	assert.Equal(t, time.Date(1990, 4, 1, 0, 0, 0, 0, time.UTC), bakery.BirthDate.UTC())
	require.NotNil(t, bakery.InflationRate)
	assert.True(t, bakery.InflationRate.Equal(decimal.NewFromInt(3)))
	assert.Nil(t, bakery.NominalGrowthRate)

	truck := config.Scenarios[2]
	require.NotNil(t, truck.Business)
	assert.True(t, truck.Business.WeeksPerYear.Equal(decimal.NewFromInt(48)))
}

func TestLoadFromFile_DefaultAssumptions(t *testing.T) {
	content := `scenarios:
  - name: "Only"
    kind: traditional_fire
    current_age: 40
    end_age: 80
    annual_spending: 50000
`
	config, err := NewInputParser().LoadFromFile(writeTemp(t, content))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAssumptions(), config.GlobalAssumptions)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile("nonexistent_file.yaml")
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile(writeTemp(t, "scenarios: [\n  - name: broken"))
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromFile_UnknownKind(t *testing.T) {
	content := `scenarios:
  - name: "Mystery"
    kind: lottery_fire
    current_age: 40
    end_age: 80
`
	_, err := NewInputParser().LoadFromFile(writeTemp(t, content))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
	assert.Contains(t, err.Error(), "lottery_fire")
}

func TestLoadFromFile_ValidationFailure(t *testing.T) {
	content := `scenarios:
  - name: "Backwards"
    kind: traditional_fire
    current_age: 60
    end_age: 40
`
	_, err := NewInputParser().LoadFromFile(writeTemp(t, content))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")
	assert.Contains(t, err.Error(), "scenarios[0].end_age")
}

func validConfig() *domain.Configuration {
	return NewInputParser().CreateExampleConfiguration()
}

func TestValidateConfiguration(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Configuration)
		field  string
	}{
		{"No scenarios", func(c *domain.Configuration) { c.Scenarios = nil }, "scenarios"},
		{"Zero withdrawal rate", func(c *domain.Configuration) { c.GlobalAssumptions.WithdrawalRate = decimal.Zero }, "global_assumptions.withdrawal_rate"},
		{"Hyperdeflation", func(c *domain.Configuration) { c.GlobalAssumptions.InflationRate = decimal.NewFromInt(-100) }, "global_assumptions.inflation_rate"},
		{"Missing name", func(c *domain.Configuration) { c.Scenarios[0].Name = "" }, "scenarios[0].name"},
		{"Duplicate name", func(c *domain.Configuration) { c.Scenarios[2].Name = c.Scenarios[0].Name }, "scenarios[2].name"},
		{"Unknown kind", func(c *domain.Configuration) { c.Scenarios[1].Kind = domain.KindUnknown }, "scenarios[1].kind"},
		{"No age", func(c *domain.Configuration) { c.Scenarios[0].CurrentAge = 0 }, "scenarios[0].current_age"},
		{"Implausible age", func(c *domain.Configuration) { c.Scenarios[0].CurrentAge = 200 }, "scenarios[0].current_age"},
		{"Missing end age", func(c *domain.Configuration) { c.Scenarios[0].EndAge = 0 }, "scenarios[0].end_age"},
		{"Horizon too long", func(c *domain.Configuration) { c.Scenarios[0].CurrentAge = 1; c.Scenarios[0].EndAge = 151 }, "scenarios[0].end_age"},
		{"Negative spending", func(c *domain.Configuration) { c.Scenarios[0].AnnualSpending = decimal.NewFromInt(-1) }, "scenarios[0].annual_spending"},
		{"Transition after end", func(c *domain.Configuration) { c.Scenarios[1].TransitionAge = 95 }, "scenarios[1].transition_age"},
		{"Coast retirement in the past", func(c *domain.Configuration) { c.Scenarios[2].RetirementAge = 20 }, "scenarios[2].retirement_age"},
		{"Side hustle without income", func(c *domain.Configuration) { c.Scenarios[3].SideIncome = decimal.Zero }, "scenarios[3].side_income"},
		{"Bad override", func(c *domain.Configuration) {
			r := decimal.NewFromInt(-150)
			c.Scenarios[3].NominalGrowthRate = &r
		}, "scenarios[3].nominal_growth_rate"},
		{"Missing business", func(c *domain.Configuration) { c.Scenarios[4].Business = nil }, "scenarios[4].business"},
		{"Bad business", func(c *domain.Configuration) { c.Scenarios[4].Business.SeasonalFactors = nil; c.Scenarios[4].Business.DaysPerWeek = decimal.NewFromInt(8) }, "scenarios[4].business.days_per_week"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			tt.mutate(config)
			err := NewInputParser().ValidateConfiguration(config)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))
			var ie *domain.InvalidInputError
			require.True(t, errors.As(err, &ie))
			assert.Equal(t, tt.field, ie.Field)
		})
	}
}

func TestValidateScenario_BirthDate(t *testing.T) {
	birth := time.Now().AddDate(-35, 0, -1)
	sc := domain.Scenario{Name: "dob", Kind: domain.KindTraditionalFIRE, BirthDate: &birth, EndAge: 60}
	assert.NoError(t, NewInputParser().ValidateScenario(&sc))
}

func TestCreateExampleConfiguration(t *testing.T) {
	parser := NewInputParser()
	config := parser.CreateExampleConfiguration()

	require.NoError(t, parser.ValidateConfiguration(config))
	kinds := make(map[domain.CalculatorKind]bool)
	for _, sc := range config.Scenarios {
		kinds[sc.Kind] = true
	}
	for _, k := range domain.AllCalculatorKinds() {
		assert.True(t, kinds[k], "example configuration should include %s", k)
	}
}

func TestSaveToFile_RoundTrip(t *testing.T) {
	parser := NewInputParser()
	path := filepath.Join(t.TempDir(), "example.yaml")
	require.NoError(t, parser.SaveToFile(parser.CreateExampleConfiguration(), path))

	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	require.Len(t, loaded.Scenarios, len(domain.AllCalculatorKinds()))
	assert.Equal(t, "Coffee Cart", loaded.Scenarios[4].Name)
	assert.Len(t, loaded.Scenarios[4].Business.SeasonalFactors, 12)
	assert.True(t, loaded.Scenarios[1].PartTimeIncome.Equal(decimal.NewFromInt(25000)))
}
