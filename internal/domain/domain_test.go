package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCalculatorKind(t *testing.T) {
	tests := []struct {
		in   string
		want CalculatorKind
	}{
		{"traditional_fire", KindTraditionalFIRE},
		{"Barista-FIRE", KindBaristaFIRE},
		{" coast_fire ", KindCoastFIRE},
		{"side_hustle_fire", KindSideHustleFIRE},
		{"business", KindBusiness},
	}
	for _, tt := range tests {
		got, err := ParseCalculatorKind(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseCalculatorKind("unknown")
	assert.Error(t, err)
	_, err = ParseCalculatorKind("lottery")
	assert.EqualError(t, err, `unknown calculator kind "lottery"`)
}

func TestCalculatorKind_Text(t *testing.T) {
	for _, k := range AllCalculatorKinds() {
		text, err := k.MarshalText()
		require.NoError(t, err)

		var back CalculatorKind
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, k, back)
		assert.NotEqual(t, "Unknown", k.Title())
	}

	_, err := KindUnknown.MarshalText()
	assert.Error(t, err)
	_, err = CalculatorKind(42).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "unknown", CalculatorKind(42).String())
}

func TestCalculatorKind_IsFIRE(t *testing.T) {
	assert.True(t, KindCoastFIRE.IsFIRE())
	assert.False(t, KindBusiness.IsFIRE())
	assert.False(t, KindUnknown.IsFIRE())
}

func TestParseOvertimeRule(t *testing.T) {
	for _, name := range []string{"none", "weekly_40", "Daily-8", "CALIFORNIA"} {
		r, err := ParseOvertimeRule(name)
		require.NoError(t, err, name)

		var back OvertimeRule
		text, _ := r.MarshalText()
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, r, back)
	}
	_, err := ParseOvertimeRule("weekly_37")
	assert.Error(t, err)
	assert.Equal(t, "OvertimeRule(9)", OvertimeRule(9).String())
}

func TestInvalidInputError(t *testing.T) {
	err := NewInvalidInput("end_age", "must be after %d", 30)
	assert.EqualError(t, err, "invalid input end_age: must be after 30")
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.False(t, errors.Is(err, ErrInvalidInflationRate))

	wrapped := &InvalidInputError{Field: "inflation_rate", Reason: "too low", Err: ErrInvalidInflationRate}
	assert.True(t, errors.Is(wrapped, ErrInvalidInflationRate))
	assert.True(t, errors.Is(fmt.Errorf("outer: %w", wrapped), ErrInvalidInput))
}

func TestPrefixField(t *testing.T) {
	inner := fmt.Errorf("context: %w", NewInvalidInput("days_per_week", "too many"))
	err := PrefixField("scenarios[2]", PrefixField("business", inner))

	var ie *InvalidInputError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "scenarios[2].business.days_per_week", ie.Field)

	assert.Equal(t, "business", PrefixField("business", &InvalidInputError{Reason: "missing"}).(*InvalidInputError).Field)

	plain := errors.New("disk full")
	assert.Same(t, plain, PrefixField("x", plain))
}

func TestScenarioRates(t *testing.T) {
	ga := DefaultAssumptions()
	sc := Scenario{}
	g, i, w := sc.Rates(ga)
	assert.True(t, g.Equal(decimal.NewFromInt(7)))
	assert.True(t, i.Equal(decimal.NewFromInt(3)))
	assert.True(t, w.Equal(decimal.NewFromInt(4)))

	inflation := decimal.NewFromFloat(2.5)
	sc.InflationRate = &inflation
	_, i, _ = sc.Rates(ga)
	assert.True(t, i.Equal(inflation))
}

func TestComparisonResultComparable(t *testing.T) {
	saved := 3
	assert.True(t, ComparisonResult{Outcome: OutcomeComparable, PeriodsSaved: &saved}.Comparable())
	assert.False(t, ComparisonResult{Outcome: OutcomeComparable}.Comparable())
	assert.False(t, ComparisonResult{Outcome: OutcomeBaseOnly, PeriodsSaved: &saved}.Comparable())
	assert.False(t, ComparisonResult{Outcome: OutcomeNeitherReached}.Comparable())
}

func TestGenerateAssumptions(t *testing.T) {
	ga := DefaultAssumptions()
	lines := ga.GenerateAssumptions()
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], "7.0%")
}
