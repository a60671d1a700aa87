package calculation

import (
	"fmt"

	"github.com/napkincalc/napkin/internal/domain"
	pdec "github.com/napkincalc/napkin/pkg/decimal"
	"github.com/shopspring/decimal"
)

const (
	// DefaultBusinessYears is the cash flow horizon when a model does not set one.
	DefaultBusinessYears = 3
	maxBusinessYears     = 30
)

var (
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// ValidateBusinessModel rejects inputs the business calculator cannot use.
func ValidateBusinessModel(m domain.BusinessModel) error {
	nonNegative := []struct {
		field string
		v     decimal.Decimal
	}{
		{"startup_cost", m.StartupCost},
		{"price_per_unit", m.PricePerUnit},
		{"units_per_day", m.UnitsPerDay},
		{"fixed_cost_per_week", m.FixedCostPerWeek},
	}
	for _, f := range nonNegative {
		if f.v.IsNegative() {
			return domain.NewInvalidInput(f.field, "cannot be negative, got %s", f.v)
		}
	}
	if m.DaysPerWeek.IsNegative() || m.DaysPerWeek.GreaterThan(decimal.NewFromInt(7)) {
		return domain.NewInvalidInput("days_per_week", "must be between 0 and 7, got %s", m.DaysPerWeek)
	}
	if m.WeeksPerYear.IsNegative() || m.WeeksPerYear.GreaterThan(decimal.NewFromInt(52)) {
		return domain.NewInvalidInput("weeks_per_year", "must be between 0 and 52, got %s", m.WeeksPerYear)
	}
	if m.VariableCostPercent.IsNegative() || m.VariableCostPercent.GreaterThan(hundred) {
		return domain.NewInvalidInput("variable_cost_percent", "must be between 0 and 100, got %s", m.VariableCostPercent)
	}
	if m.CostAdjustmentPercent.LessThanOrEqual(minPercent) {
		return domain.NewInvalidInput("cost_adjustment_percent", "must be greater than -100, got %s", m.CostAdjustmentPercent)
	}
	if m.AnnualGrowthPercent.LessThanOrEqual(minPercent) {
		return domain.NewInvalidInput("annual_growth_percent", "must be greater than -100, got %s", m.AnnualGrowthPercent)
	}
	if m.ProjectionYears < 0 || m.ProjectionYears > maxBusinessYears {
		return domain.NewInvalidInput("projection_years", "must be between 0 (default of %d) and %d, got %d", DefaultBusinessYears, maxBusinessYears, m.ProjectionYears)
	}
	if n := len(m.SeasonalFactors); n != 0 && n != 12 {
		return domain.NewInvalidInput("seasonal_factors", "need exactly 12 monthly factors, got %d", n)
	}
	for i, f := range m.SeasonalFactors {
		if f.IsNegative() {
			return domain.NewInvalidInput(fmt.Sprintf("seasonal_factors[%d]", i), "cannot be negative, got %s", f)
		}
	}
	return nil
}

// WeeklyRevenue is price x units x days for one ordinary week.
func WeeklyRevenue(m domain.BusinessModel) decimal.Decimal {
	return m.PricePerUnit.Mul(m.UnitsPerDay).Mul(m.DaysPerWeek)
}

// OperatingCost is variable cost on revenue plus fixed cost, scaled by the
// model's cost adjustment: (revenue*variable% + fixed) * (1 + adjustment%).
func OperatingCost(m domain.BusinessModel, revenue, fixed decimal.Decimal) decimal.Decimal {
	base := revenue.Mul(pdec.FromPercent(m.VariableCostPercent)).Add(fixed)
	return pdec.ApplyPercent(base, m.CostAdjustmentPercent)
}

// NetProfitMargin is profit/revenue in percent; undefined when revenue is zero.
func NetProfitMargin(profit, revenue decimal.Decimal) domain.Ratio {
	if revenue.IsZero() {
		return domain.UndefinedRatio("revenue is zero")
	}
	return domain.DefinedRatio(profit.Div(revenue).Mul(hundred).Round(2))
}

// BreakEvenWeeks is how many ordinary weeks of profit repay startupCost;
// undefined when the business does not make a weekly profit.
func BreakEvenWeeks(startupCost, weeklyProfit decimal.Decimal) domain.Ratio {
	if !weeklyProfit.IsPositive() {
		return domain.UndefinedRatio("weekly profit is not positive")
	}
	return domain.DefinedRatio(startupCost.Div(weeklyProfit).Round(2))
}

// ProjectBusiness runs the multi-year cash flow for m at monthly resolution.
// Revenue grows by AnnualGrowthPercent each year and is shaped within the
// year by SeasonalFactors; fixed costs do not grow.
func ProjectBusiness(m domain.BusinessModel) (*domain.BusinessProjection, error) {
	if err := ValidateBusinessModel(m); err != nil {
		return nil, err
	}
	years := m.ProjectionYears
	if years == 0 {
		years = DefaultBusinessYears
	}

	weeklyRevenue := WeeklyRevenue(m)
	weeklyCost := OperatingCost(m, weeklyRevenue, m.FixedCostPerWeek)
	weeklyProfit := weeklyRevenue.Sub(weeklyCost)

	factors := seasonalFactors(m)
	weeksPerMonth := m.WeeksPerYear.Div(twelve)
	growth := pdec.FromPercent(m.AnnualGrowthPercent)
	monthlyFixed := m.FixedCostPerWeek.Mul(weeksPerMonth)

	proj := &domain.BusinessProjection{
		WeeklyRevenue: weeklyRevenue,
		WeeklyCost:    weeklyCost,
		WeeklyProfit:  weeklyProfit,
		Years:         make([]domain.BusinessYear, 0, years),
	}
	if !m.StartupCost.IsPositive() {
		proj.BreakEven = &domain.BreakEvenPoint{Year: 1, Month: 1, Fraction: decimal.Zero, MonthsFromStart: decimal.Zero}
	}

	cash := m.StartupCost.Neg()
	for y := 1; y <= years; y++ {
		yearGrowth := pdec.GrowthFactor(growth, y-1)
		row := domain.BusinessYear{Year: y}
		for month := 1; month <= 12; month++ {
			revenue := weeklyRevenue.Mul(weeksPerMonth).Mul(factors[month-1]).Mul(yearGrowth)
			cost := OperatingCost(m, revenue, monthlyFixed)
			prev := cash
			cash = cash.Add(revenue).Sub(cost)

			row.Revenue = row.Revenue.Add(revenue)
			row.Cost = row.Cost.Add(cost)

			if proj.BreakEven == nil && prev.IsNegative() && !cash.IsNegative() {
				proj.BreakEven = interpolateBreakEven(y, month, prev, cash)
			}
		}
		row.Revenue = row.Revenue.Round(2)
		row.Cost = row.Cost.Round(2)
		row.Profit = row.Revenue.Sub(row.Cost)
		row.CumulativeCash = cash.Round(2)
		proj.Years = append(proj.Years, row)
	}

	first := proj.Years[0]
	proj.AnnualRevenue = first.Revenue
	proj.AnnualCost = first.Cost
	proj.AnnualProfit = first.Profit
	proj.NetProfitMargin = NetProfitMargin(first.Profit, first.Revenue)
	proj.BreakEvenWeeks = BreakEvenWeeks(m.StartupCost, weeklyProfit)
	return proj, nil
}

// interpolateBreakEven locates the zero crossing of cumulative cash inside a
// month, assuming cash accrues linearly: t = -prev / (curr - prev).
func interpolateBreakEven(year, month int, prev, curr decimal.Decimal) *domain.BreakEvenPoint {
	denom := curr.Sub(prev)
	t := decimal.NewFromInt(1)
	if !denom.IsZero() {
		t = prev.Neg().Div(denom)
	}
	if t.IsNegative() {
		t = decimal.Zero
	} else if t.GreaterThan(one) {
		t = one
	}
	t = t.Round(4)
	elapsed := decimal.NewFromInt(int64((year-1)*12 + month - 1)).Add(t)
	return &domain.BreakEvenPoint{Year: year, Month: month, Fraction: t, MonthsFromStart: elapsed}
}

func seasonalFactors(m domain.BusinessModel) []decimal.Decimal {
	if len(m.SeasonalFactors) == 12 {
		return m.SeasonalFactors
	}
	flat := make([]decimal.Decimal, 12)
	for i := range flat {
		flat[i] = one
	}
	return flat
}
