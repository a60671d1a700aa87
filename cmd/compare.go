package cmd

import (
	"fmt"

	"github.com/napkincalc/napkin/internal/calculation"
	"github.com/napkincalc/napkin/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newCompareCmd(a *app) *cobra.Command {
	var (
		pf     projectionFlags
		extra  decimal.Decimal
		target decimal.Decimal
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare reaching a goal with and without an extra contribution",
		Long: `compare projects the base inputs twice: once as given and once with --extra
added to every period's contribution, then reports how many periods sooner
the enhanced projection reaches --target.`,
		Example: "  napkin compare --current 30 --end 70 --balance 50000 --contribution 20000 --extra 12000 --target 1000000",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base := pf.input()
			enhanced := base
			enhanced.Schedule = calculation.CombinedSchedule(base.Schedule, calculation.ConstantSchedule(extra))

			res, err := calculation.Compare(base, enhanced, target)
			if err != nil {
				return err
			}
			if !res.Comparable() {
				a.logger.Sugar().Warnf("periods saved not comparable: %s", res.Outcome)
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Target:        %s\n", output.FormatCurrency(target))
			fmt.Fprintf(w, "Base:          %s\n", output.FormatGoal(res.Base, "period"))
			fmt.Fprintf(w, "Enhanced:      %s\n", output.FormatGoal(res.Enhanced, "period"))
			fmt.Fprintf(w, "Outcome:       %s\n", res.Outcome)
			if res.Comparable() {
				fmt.Fprintf(w, "Periods saved: %d\n", *res.PeriodsSaved)
			}
			return nil
		},
	}

	pf.register(cmd)
	cmd.Flags().Var(newDecimalValue(&extra, decimal.Zero), "extra", "Additional contribution per period in the enhanced projection")
	cmd.Flags().Var(newDecimalValue(&target, decimal.Zero), "target", "Goal balance both projections search for")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of text")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}
