package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	json "github.com/goccy/go-json"
	"github.com/napkincalc/napkin/internal/calculation"
	"github.com/napkincalc/napkin/internal/domain"
	"github.com/napkincalc/napkin/internal/output"
	pdec "github.com/napkincalc/napkin/pkg/decimal"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type projectResult struct {
	RealRate     decimal.Decimal          `json:"real_rate"`
	Series       []domain.ProjectionPoint `json:"series"`
	FinalBalance decimal.Decimal          `json:"final_balance"`
	Goal         *domain.GoalResult       `json:"goal,omitempty"`
}

func newProjectCmd(a *app) *cobra.Command {
	var (
		pf     projectionFlags
		target decimal.Decimal
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project a balance period by period in today's dollars",
		Example: `  napkin project --current 30 --end 65 --balance 50000 --contribution 20000 --target 1000000
  napkin project --current 30 --end 90 --balance 400000 --contribution 15000 --transition 45 --after -25000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := pf.input()
			realRate, err := calculation.RealRate(in.NominalGrowthRate, in.InflationRate)
			if err != nil {
				return err
			}
			series, err := calculation.BuildSeries(in)
			if err != nil {
				return err
			}

			res := projectResult{
				RealRate:     realRate,
				Series:       series,
				FinalBalance: calculation.FinalBalance(series),
			}
			if cmd.Flags().Changed("target") {
				goal := calculation.FindGoal(series, target)
				res.Goal = &goal
			}
			a.logger.Sugar().Debugf("projected %d periods at real rate %s", len(series), realRate.StringFixed(6))

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			return writeProjection(cmd.OutOrStdout(), res)
		},
	}

	pf.register(cmd)
	cmd.Flags().Var(newDecimalValue(&target, decimal.Zero), "target", "Goal balance to search for")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	return cmd
}

func writeProjection(w io.Writer, res projectResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Period\tBalance\t\n")
	for _, p := range res.Series {
		fmt.Fprintf(tw, "%d\t%s\t\n", p.Period, output.FormatCurrency(p.Balance))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nReal rate:     %s\n", output.FormatPercentage(pdec.ToPercent(res.RealRate)))
	fmt.Fprintf(w, "Final balance: %s\n", output.FormatCurrency(res.FinalBalance))
	if res.Goal != nil {
		fmt.Fprintf(w, "Goal:          %s\n", output.FormatGoal(*res.Goal, "period"))
	}
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
