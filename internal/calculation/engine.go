package calculation

import (
	"context"
	"fmt"

	"github.com/napkincalc/napkin/internal/domain"
	"github.com/napkincalc/napkin/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// CalculationEngine runs configured scenarios through the shared projection
// core. It keeps no per-run state and is safe for concurrent use.
type CalculationEngine struct {
	Debug  bool // Enable debug output for detailed calculations
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// RunScenario calculates a single scenario using assumptions for any rate
// the scenario does not override.
func (ce *CalculationEngine) RunScenario(ctx context.Context, assumptions domain.GlobalAssumptions, scenario *domain.Scenario) (*domain.ScenarioSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		summary *domain.ScenarioSummary
		err     error
	)
	switch scenario.Kind {
	case domain.KindBusiness:
		summary, err = ce.runBusiness(scenario)
	case domain.KindTraditionalFIRE, domain.KindBaristaFIRE, domain.KindCoastFIRE, domain.KindSideHustleFIRE:
		summary, err = ce.runFIRE(assumptions, scenario)
	default:
		err = domain.NewInvalidInput("kind", "unsupported calculator kind %q", scenario.Kind.String())
	}
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
	}

	ce.Logger.Infof("scenario %q (%s) complete: goal reached=%t", scenario.Name, scenario.Kind, summary.Goal.Reached)
	return summary, nil
}

// RunScenarios runs all scenarios and returns a report
func (ce *CalculationEngine) RunScenarios(ctx context.Context, config *domain.Configuration) (*domain.Report, error) {
	summaries := make([]domain.ScenarioSummary, 0, len(config.Scenarios))
	for i := range config.Scenarios {
		summary, err := ce.RunScenario(ctx, config.GlobalAssumptions, &config.Scenarios[i])
		if err != nil {
			return nil, fmt.Errorf("RunScenario failed: %w", err)
		}
		summaries = append(summaries, *summary)
	}

	return &domain.Report{
		GeneratedAt: nowFunc().UTC(),
		Scenarios:   summaries,
		Highlights:  generateHighlights(summaries),
		Assumptions: config.GlobalAssumptions.GenerateAssumptions(),
	}, nil
}

// CurrentAge resolves the scenario's starting age, deriving it from the
// birth date when no explicit age is given.
func CurrentAge(scenario *domain.Scenario) (int, error) {
	if scenario.CurrentAge > 0 {
		return scenario.CurrentAge, nil
	}
	if scenario.BirthDate != nil {
		return dateutil.Age(*scenario.BirthDate, nowFunc()), nil
	}
	return 0, domain.NewInvalidInput("current_age", "either current_age or birth_date is required")
}

func (ce *CalculationEngine) runFIRE(assumptions domain.GlobalAssumptions, sc *domain.Scenario) (*domain.ScenarioSummary, error) {
	age, err := CurrentAge(sc)
	if err != nil {
		return nil, err
	}
	growth, inflation, withdrawal := sc.Rates(assumptions)
	realRate, err := RealRate(growth, inflation)
	if err != nil {
		return nil, err
	}

	var target decimal.Decimal
	if sc.Kind == domain.KindBaristaFIRE {
		target, err = BaristaFIRENumber(sc.AnnualSpending, sc.PartTimeIncome, withdrawal)
	} else {
		target, err = FIRENumber(sc.AnnualSpending, withdrawal)
	}
	if err != nil {
		return nil, err
	}
	if sc.TargetBalance.IsPositive() {
		target = sc.TargetBalance
	}

	input := domain.ProjectionInput{
		CurrentPeriod:     age,
		EndPeriod:         sc.EndAge,
		StartingBalance:   sc.StartingBalance,
		NominalGrowthRate: growth,
		InflationRate:     inflation,
	}

	summary := &domain.ScenarioSummary{
		Name:       sc.Name,
		Kind:       sc.Kind,
		RealRate:   realRate,
		FIRENumber: target,
	}

	if ce.Debug {
		ce.Logger.Debugf("scenario %q: age %d..%d, real rate %s, target %s", sc.Name, age, sc.EndAge, realRate.StringFixed(6), target.StringFixed(2))
	}

	switch sc.Kind {
	case domain.KindTraditionalFIRE:
		input.Schedule = ConstantSchedule(sc.AnnualContribution)
	case domain.KindBaristaFIRE:
		input.Schedule = TransitionSchedule(sc.TransitionAge, sc.AnnualContribution, sc.PartTimeIncome.Sub(sc.AnnualSpending))
	case domain.KindCoastFIRE:
		input.Schedule = TransitionSchedule(sc.TransitionAge, sc.AnnualContribution, decimal.Zero)
		retireAt := sc.RetirementAge
		if retireAt == 0 {
			retireAt = sc.EndAge
		}
		coast, err := CoastNumber(target, realRate, retireAt-age)
		if err != nil {
			return nil, err
		}
		coast = coast.Round(2)
		summary.CoastNumber = &coast
		summary.AlreadyCoasting = sc.StartingBalance.GreaterThanOrEqual(coast)
	case domain.KindSideHustleFIRE:
		input.Schedule = ConstantSchedule(sc.AnnualContribution)
		enhanced := input
		enhanced.Schedule = CombinedSchedule(ConstantSchedule(sc.AnnualContribution), ConstantSchedule(sc.SideIncome))

		cmp, baseSeries, enhancedSeries, err := compareSeries(input, enhanced, target)
		if err != nil {
			return nil, err
		}
		summary.Series = baseSeries
		summary.EnhancedSeries = enhancedSeries
		summary.Goal = cmp.Base
		summary.Comparison = &cmp
		summary.FinalBalance = FinalBalance(baseSeries)
		if !cmp.Comparable() {
			ce.Logger.Warnf("scenario %q: years saved not comparable (%s)", sc.Name, cmp.Outcome)
		}
		return summary, nil
	}

	series, err := BuildSeries(input)
	if err != nil {
		return nil, err
	}
	summary.Series = series
	summary.Goal = FindGoal(series, target)
	summary.FinalBalance = FinalBalance(series)
	return summary, nil
}

func (ce *CalculationEngine) runBusiness(sc *domain.Scenario) (*domain.ScenarioSummary, error) {
	if sc.Business == nil {
		return nil, domain.NewInvalidInput("business", "business model is required for kind %q", sc.Kind.String())
	}
	proj, err := ProjectBusiness(*sc.Business)
	if err != nil {
		return nil, domain.PrefixField("business", err)
	}
	if !proj.BreakEvenWeeks.Defined {
		ce.Logger.Warnf("scenario %q: break-even undefined: %s", sc.Name, proj.BreakEvenWeeks.Reason)
	}

	summary := &domain.ScenarioSummary{
		Name:     sc.Name,
		Kind:     sc.Kind,
		Business: proj,
	}
	// Goal period for a business is the 1-based month of operation that breaks even.
	if proj.BreakEven != nil {
		month := proj.BreakEven.Year*12 + proj.BreakEven.Month - 12
		summary.Goal = domain.GoalResult{Reached: true, Period: &month}
	}
	if n := len(proj.Years); n > 0 {
		summary.FinalBalance = proj.Years[n-1].CumulativeCash
	}
	return summary, nil
}
