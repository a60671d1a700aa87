package calculation

import (
	"errors"
	"testing"

	"github.com/napkincalc/napkin/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func balances(series []domain.ProjectionPoint) []string {
	out := make([]string, len(series))
	for i, p := range series {
		out[i] = p.Balance.StringFixed(2)
	}
	return out
}

func periods(series []domain.ProjectionPoint) []int {
	out := make([]int, len(series))
	for i, p := range series {
		out[i] = p.Period
	}
	return out
}

func TestRealRate(t *testing.T) {
	tests := []struct {
		name      string
		nominal   float64
		inflation float64
		want      float64
	}{
		{"No inflation", 10, 0, 0.10},
		{"Equal rates", 3, 3, 0},
		{"Typical market", 7, 3, 0.0388349514563107},
		{"Deflation", 5, -2, 0.0714285714285714},
		{"Negative nominal", -10, 0, -0.10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RealRate(d(tt.nominal), d(tt.inflation))
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got.InexactFloat64(), 1e-12)
		})
	}
}

func TestRealRate_InvalidInflation(t *testing.T) {
	for _, inflation := range []float64{-100, -150} {
		_, err := RealRate(d(7), d(inflation))
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidInflationRate))
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))

		var ie *domain.InvalidInputError
		require.True(t, errors.As(err, &ie))
		assert.Equal(t, "inflation_rate", ie.Field)
		assert.Contains(t, err.Error(), "inflation_rate")
	}
}

func TestRealRate_DecreasesWithInflation(t *testing.T) {
	inflations := []float64{-99, -50, -10, 0, 1, 2.5, 5, 20, 100, 1000}
	for _, nominal := range []float64{-20, 0, 7, 15} {
		prev, err := RealRate(d(nominal), d(inflations[0]))
		require.NoError(t, err)
		for _, inf := range inflations[1:] {
			cur, err := RealRate(d(nominal), d(inf))
			require.NoError(t, err)
			assert.True(t, cur.LessThan(prev), "nominal %v: real rate at %v%% (%s) should be below previous (%s)", nominal, inf, cur, prev)
			prev = cur
		}
	}
}

func TestAdvance(t *testing.T) {
	got := Advance(d(1000), d(0.05), d(200))
	assert.True(t, got.Equal(d(1250)), "got %s", got)

	got = Advance(d(1000), d(0.05), d(-1050))
	assert.True(t, got.IsZero(), "got %s", got)
}

func TestAdvance_Composition(t *testing.T) {
	cases := []struct{ b, r, c float64 }{
		{1000, 0.07, 500},
		{0, 0.1, 100},
		{250000, -0.2, -30000},
		{12345.67, 0.0388349514563107, 0},
		{-500, 0.03, 1000},
	}
	for _, tc := range cases {
		b, r, c := d(tc.b), d(tc.r), d(tc.c)
		twice := Advance(Advance(b, r, c), r, c)
		direct := Advance(b, r, c).Mul(one.Add(r)).Add(c)
		assert.True(t, twice.Equal(direct), "b=%v r=%v c=%v: %s != %s", tc.b, tc.r, tc.c, twice, direct)
	}
}

func TestBuildSeries_CompoundsWithoutContributions(t *testing.T) {
	series, err := BuildSeries(domain.ProjectionInput{
		CurrentPeriod:     0,
		EndPeriod:         3,
		StartingBalance:   d(1000),
		NominalGrowthRate: d(10),
		InflationRate:     d(0),
		Schedule:          ConstantSchedule(decimal.Zero),
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, periods(series))
	assert.Equal(t, []string{"1000.00", "1100.00", "1210.00", "1331.00"}, balances(series))
}

func TestBuildSeries_SinglePoint(t *testing.T) {
	for _, end := range []int{35, 20} {
		series, err := BuildSeries(domain.ProjectionInput{
			CurrentPeriod:     35,
			EndPeriod:         end,
			StartingBalance:   d(4321.5),
			NominalGrowthRate: d(8),
			InflationRate:     d(2),
			Schedule:          ConstantSchedule(d(999)),
		})
		require.NoError(t, err)
		require.Len(t, series, 1)
		assert.Equal(t, 35, series[0].Period)
		assert.True(t, series[0].Balance.Equal(d(4321.5)))
	}
}

func TestBuildSeries_ContributionUsesEnteredPeriod(t *testing.T) {
	series, err := BuildSeries(domain.ProjectionInput{
		CurrentPeriod:   0,
		EndPeriod:       3,
		StartingBalance: decimal.Zero,
		Schedule:        TableSchedule(map[int]decimal.Decimal{0: d(1e6), 1: d(100), 2: d(50)}, d(-25)),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"0.00", "100.00", "150.00", "125.00"}, balances(series))
}

func TestBuildSeries_NilScheduleIsZero(t *testing.T) {
	series, err := BuildSeries(domain.ProjectionInput{EndPeriod: 2, StartingBalance: d(500)})
	require.NoError(t, err)
	assert.Equal(t, []string{"500.00", "500.00", "500.00"}, balances(series))
}

func TestBuildSeries_Restartable(t *testing.T) {
	in := domain.ProjectionInput{
		CurrentPeriod:     30,
		EndPeriod:         90,
		StartingBalance:   d(25000),
		NominalGrowthRate: d(7),
		InflationRate:     d(3),
		Schedule:          TransitionSchedule(45, d(20000), d(-40000)),
	}
	first, err := BuildSeries(in)
	require.NoError(t, err)
	second, err := BuildSeries(in)
	require.NoError(t, err)
	assert.Equal(t, balances(first), balances(second))
	assert.Len(t, first, 61)
}

func TestBuildSeries_InvalidInput(t *testing.T) {
	_, err := BuildSeries(domain.ProjectionInput{EndPeriod: 5, InflationRate: d(-100)})
	assert.True(t, errors.Is(err, domain.ErrInvalidInflationRate))

	var ie *domain.InvalidInputError
	_, err = BuildSeries(domain.ProjectionInput{CurrentPeriod: 0, EndPeriod: MaxProjectionPeriods})
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "end_period", ie.Field)

	_, err = BuildSeries(domain.ProjectionInput{CurrentPeriod: 0, EndPeriod: MaxProjectionPeriods - 1})
	assert.NoError(t, err)
}

func TestBuildSeries_TotalLossGrowth(t *testing.T) {
	// -100% nominal growth is a real rate of -1: each period keeps only its contribution.
	series, err := BuildSeries(domain.ProjectionInput{
		CurrentPeriod:     0,
		EndPeriod:         2,
		StartingBalance:   d(1000),
		NominalGrowthRate: d(-100),
		Schedule:          ConstantSchedule(d(50)),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"1000.00", "50.00", "50.00"}, balances(series))
}

func TestFinalBalance(t *testing.T) {
	assert.True(t, FinalBalance(nil).IsZero())
	series := []domain.ProjectionPoint{{Period: 0, Balance: d(1)}, {Period: 1, Balance: d(2)}}
	assert.True(t, FinalBalance(series).Equal(d(2)))
}
