package domain

import "github.com/shopspring/decimal"

// BusinessModel describes a small venue or service business (food truck,
// lawn care, ice cream shop, ...) at napkin level. Percentages are 0-100.
type BusinessModel struct {
	StartupCost           decimal.Decimal   `yaml:"startup_cost" json:"startup_cost"`
	PricePerUnit          decimal.Decimal   `yaml:"price_per_unit" json:"price_per_unit"`
	UnitsPerDay           decimal.Decimal   `yaml:"units_per_day" json:"units_per_day"`
	DaysPerWeek           decimal.Decimal   `yaml:"days_per_week" json:"days_per_week"`
	WeeksPerYear          decimal.Decimal   `yaml:"weeks_per_year" json:"weeks_per_year"`
	VariableCostPercent   decimal.Decimal   `yaml:"variable_cost_percent" json:"variable_cost_percent"`
	FixedCostPerWeek      decimal.Decimal   `yaml:"fixed_cost_per_week" json:"fixed_cost_per_week"`
	CostAdjustmentPercent decimal.Decimal   `yaml:"cost_adjustment_percent,omitempty" json:"cost_adjustment_percent"`
	AnnualGrowthPercent   decimal.Decimal   `yaml:"annual_growth_percent,omitempty" json:"annual_growth_percent"`
	ProjectionYears       int               `yaml:"projection_years,omitempty" json:"projection_years,omitempty"`
	SeasonalFactors       []decimal.Decimal `yaml:"seasonal_factors,omitempty" json:"seasonal_factors,omitempty"`
}

// BusinessYear is one row of the multi-year cash flow table.
type BusinessYear struct {
	Year           int             `json:"year" yaml:"year"`
	Revenue        decimal.Decimal `json:"revenue" yaml:"revenue"`
	Cost           decimal.Decimal `json:"cost" yaml:"cost"`
	Profit         decimal.Decimal `json:"profit" yaml:"profit"`
	CumulativeCash decimal.Decimal `json:"cumulative_cash" yaml:"cumulative_cash"`
}

// BreakEvenPoint is where cumulative profit first covers the startup cost.
type BreakEvenPoint struct {
	Year  int `json:"year" yaml:"year"`
	Month int `json:"month" yaml:"month"`
	// Fraction of Month elapsed when cumulative cash crosses zero (0..1).
	Fraction decimal.Decimal `json:"fraction_of_month" yaml:"fraction_of_month"`
	// MonthsFromStart counts fractional months from opening day.
	MonthsFromStart decimal.Decimal `json:"months_from_start" yaml:"months_from_start"`
}

// BusinessProjection is the full output of the business calculator.
type BusinessProjection struct {
	WeeklyRevenue   decimal.Decimal `json:"weekly_revenue" yaml:"weekly_revenue"`
	WeeklyCost      decimal.Decimal `json:"weekly_cost" yaml:"weekly_cost"`
	WeeklyProfit    decimal.Decimal `json:"weekly_profit" yaml:"weekly_profit"`
	AnnualRevenue   decimal.Decimal `json:"annual_revenue" yaml:"annual_revenue"`
	AnnualCost      decimal.Decimal `json:"annual_cost" yaml:"annual_cost"`
	AnnualProfit    decimal.Decimal `json:"annual_profit" yaml:"annual_profit"`
	NetProfitMargin Ratio           `json:"net_profit_margin" yaml:"net_profit_margin"`
	BreakEvenWeeks  Ratio           `json:"break_even_weeks" yaml:"break_even_weeks"`
	Years           []BusinessYear  `json:"years" yaml:"years"`
	BreakEven       *BreakEvenPoint `json:"break_even,omitempty" yaml:"break_even,omitempty"`
}
