package cmd

import (
	"fmt"
	"strings"

	"github.com/napkincalc/napkin/internal/calculation"
	"github.com/napkincalc/napkin/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// decimalValue lets cobra parse a flag straight into a decimal.Decimal.
type decimalValue struct{ d *decimal.Decimal }

func newDecimalValue(p *decimal.Decimal, def decimal.Decimal) *decimalValue {
	*p = def
	return &decimalValue{d: p}
}

func (v *decimalValue) String() string {
	if v.d == nil {
		return "0"
	}
	return v.d.String()
}

func (v *decimalValue) Set(s string) error {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("invalid number %q", s)
	}
	*v.d = d
	return nil
}

func (v *decimalValue) Type() string { return "decimal" }

// projectionFlags are the inputs to a single projection from the command line.
type projectionFlags struct {
	current      int
	end          int
	balance      decimal.Decimal
	growth       decimal.Decimal
	inflation    decimal.Decimal
	contribution decimal.Decimal
	transition   int
	after        decimal.Decimal
}

func (pf *projectionFlags) register(cmd *cobra.Command) {
	def := domain.DefaultAssumptions()
	f := cmd.Flags()
	f.IntVar(&pf.current, "current", 0, "Current period (usually your age)")
	f.IntVar(&pf.end, "end", 0, "Last period to project")
	f.Var(newDecimalValue(&pf.balance, decimal.Zero), "balance", "Starting balance")
	f.Var(newDecimalValue(&pf.growth, def.NominalGrowthRate), "growth", "Nominal growth rate in percent")
	f.Var(newDecimalValue(&pf.inflation, def.InflationRate), "inflation", "Inflation rate in percent")
	f.Var(newDecimalValue(&pf.contribution, decimal.Zero), "contribution", "Net contribution per period (negative withdraws)")
	f.IntVar(&pf.transition, "transition", 0, "Period from which --after replaces --contribution (0 disables)")
	f.Var(newDecimalValue(&pf.after, decimal.Zero), "after", "Net contribution per period from --transition onward")
	_ = cmd.MarkFlagRequired("end")
}

func (pf *projectionFlags) schedule() domain.ContributionSchedule {
	if pf.transition > 0 {
		return calculation.TransitionSchedule(pf.transition, pf.contribution, pf.after)
	}
	return calculation.ConstantSchedule(pf.contribution)
}

func (pf *projectionFlags) input() domain.ProjectionInput {
	return domain.ProjectionInput{
		CurrentPeriod:     pf.current,
		EndPeriod:         pf.end,
		StartingBalance:   pf.balance,
		NominalGrowthRate: pf.growth,
		InflationRate:     pf.inflation,
		Schedule:          pf.schedule(),
	}
}
