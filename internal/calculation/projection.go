package calculation

import (
	"github.com/napkincalc/napkin/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	// MaxProjectionPeriods bounds a single series; longer spans are
	// rejected as invalid end_period input.
	MaxProjectionPeriods = 150

	// balancePlaces is the fractional precision carried between periods.
	// Without it the digit count grows with every multiplication.
	balancePlaces = 10
)

// Advance moves a balance forward one period: balance*(1+rate) + net.
func Advance(balance, rate, net decimal.Decimal) decimal.Decimal {
	return balance.Mul(one.Add(rate)).Add(net)
}

var zeroSchedule = domain.ScheduleFunc(func(int) decimal.Decimal { return decimal.Zero })

// BuildSeries projects in.StartingBalance from CurrentPeriod through
// EndPeriod inclusive. The first point is the unmodified starting balance;
// each later period p grows the previous balance by the real rate and adds
// Schedule.ContributionFor(p). An EndPeriod before CurrentPeriod yields just
// the starting point.
func BuildSeries(in domain.ProjectionInput) ([]domain.ProjectionPoint, error) {
	rate, err := RealRate(in.NominalGrowthRate, in.InflationRate)
	if err != nil {
		return nil, err
	}

	start := domain.ProjectionPoint{Period: in.CurrentPeriod, Balance: in.StartingBalance}
	if in.EndPeriod < in.CurrentPeriod {
		return []domain.ProjectionPoint{start}, nil
	}
	if in.EndPeriod-in.CurrentPeriod >= MaxProjectionPeriods {
		return nil, domain.NewInvalidInput("end_period", "projection spans %d periods, limit is %d", in.EndPeriod-in.CurrentPeriod+1, MaxProjectionPeriods)
	}

	schedule := in.Schedule
	if schedule == nil {
		schedule = zeroSchedule
	}

	series := make([]domain.ProjectionPoint, 0, in.EndPeriod-in.CurrentPeriod+1)
	series = append(series, start)
	balance := in.StartingBalance
	for p := in.CurrentPeriod + 1; p <= in.EndPeriod; p++ {
		balance = Advance(balance, rate, schedule.ContributionFor(p)).Round(balancePlaces)
		series = append(series, domain.ProjectionPoint{Period: p, Balance: balance})
	}
	return series, nil
}

// FinalBalance returns the balance of the last point, or zero for an empty series.
func FinalBalance(series []domain.ProjectionPoint) decimal.Decimal {
	if len(series) == 0 {
		return decimal.Zero
	}
	return series[len(series)-1].Balance
}
