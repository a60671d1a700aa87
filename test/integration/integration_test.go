package integration

import (
	"context"
	"testing"

	"github.com/napkincalc/napkin/internal/calculation"
	"github.com/napkincalc/napkin/internal/config"
	"github.com/napkincalc/napkin/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleConfig = "../testdata/example_config.yaml"

func runExample(t *testing.T) *domain.Report {
	t.Helper()
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(exampleConfig)
	require.NoError(t, err)

	engine := calculation.NewCalculationEngine()
	report, err := engine.RunScenarios(context.Background(), cfg)
	require.NoError(t, err)
	return report
}

func TestEndToEndCalculation(t *testing.T) {
	report := runExample(t)
	require.Len(t, report.Scenarios, 4)
	assert.NotEmpty(t, report.Assumptions)

	steady := report.Scenarios[0]
	assert.Equal(t, domain.KindTraditionalFIRE, steady.Kind)
	assert.True(t, steady.FIRENumber.Equal(decimal.NewFromInt(1000000)))
	require.True(t, steady.Goal.Reached)
	assert.Equal(t, 30, steady.Series[0].Period)
	assert.True(t, steady.Series[0].Balance.Equal(decimal.NewFromInt(100000)))
	assert.Len(t, steady.Series, 31)

	bakery := report.Scenarios[1]
	require.NotNil(t, bakery.Comparison)
	require.True(t, bakery.Comparison.Comparable())
	assert.Positive(t, *bakery.Comparison.PeriodsSaved)
	assert.Len(t, bakery.EnhancedSeries, len(bakery.Series))

	coast := report.Scenarios[2]
	require.NotNil(t, coast.CoastNumber)
	assert.True(t, coast.AlreadyCoasting)
	assert.True(t, coast.CoastNumber.LessThan(decimal.NewFromInt(400000)))

	cart := report.Scenarios[3]
	require.NotNil(t, cart.Business)
	assert.Equal(t, "130000.00", cart.Business.AnnualProfit.StringFixed(2))
	require.True(t, cart.Goal.Reached)
	assert.Equal(t, 5, *cart.Goal.Period)

	assert.Equal(t, "Steady Saver", report.Highlights.EarliestGoalScenario)
	assert.Equal(t, "Coffee Cart", report.Highlights.FastestBreakEven)
}

func TestDeterministicRuns(t *testing.T) {
	first := runExample(t)
	second := runExample(t)
	for i := range first.Scenarios {
		a, b := first.Scenarios[i], second.Scenarios[i]
		require.Len(t, b.Series, len(a.Series), a.Name)
		for j := range a.Series {
			assert.True(t, a.Series[j].Balance.Equal(b.Series[j].Balance), "%s period %d", a.Name, a.Series[j].Period)
		}
	}
}

func TestConfigurationValidation(t *testing.T) {
	parser := config.NewInputParser()

	cfg, err := parser.LoadFromFile(exampleConfig)
	require.NoError(t, err)
	assert.NoError(t, parser.ValidateConfiguration(cfg))

	cfg.Scenarios[0].EndAge = 20
	err = parser.ValidateConfiguration(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	var invalid *domain.InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "scenarios[0].end_age", invalid.Field)

	cfg, err = parser.LoadFromFile(exampleConfig)
	require.NoError(t, err)
	cfg.GlobalAssumptions.InflationRate = decimal.NewFromInt(-100)
	err = parser.ValidateConfiguration(cfg)
	require.Error(t, err)
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "global_assumptions.inflation_rate", invalid.Field)
}

func TestExampleConfigurationRuns(t *testing.T) {
	parser := config.NewInputParser()
	example := parser.CreateExampleConfiguration()
	require.NoError(t, parser.ValidateConfiguration(example))

	report, err := calculation.NewCalculationEngine().RunScenarios(context.Background(), example)
	require.NoError(t, err)
	kinds := map[domain.CalculatorKind]bool{}
	for _, sc := range report.Scenarios {
		kinds[sc.Kind] = true
	}
	for _, k := range domain.AllCalculatorKinds() {
		assert.True(t, kinds[k], "example missing %s", k)
	}
}
