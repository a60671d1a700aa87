package cmd

import (
	"fmt"
	"strings"

	"github.com/napkincalc/napkin/internal/calculation"
	"github.com/napkincalc/napkin/internal/domain"
	"github.com/napkincalc/napkin/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newPayrollCmd(a *app) *cobra.Command {
	var (
		hours  string
		rate   decimal.Decimal
		rule   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:     "payroll",
		Short:   "Weekly gross pay with overtime",
		Example: "  napkin payroll --hours 8,8,10,8,12 --rate 20 --rule california",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			daily, err := parseHours(hours)
			if err != nil {
				return err
			}
			r, err := domain.ParseOvertimeRule(rule)
			if err != nil {
				return err
			}

			pay, err := calculation.WeeklyPay(daily, rate, r)
			if err != nil {
				return err
			}
			a.logger.Sugar().Debugf("payroll: %s hours under %s", pay.TotalHours(), pay.Rule)

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), pay)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Rule:        %s\n", pay.Rule)
			fmt.Fprintf(w, "Regular:     %s h  %s\n", pay.RegularHours.StringFixed(2), output.FormatCurrency(pay.RegularPay))
			fmt.Fprintf(w, "Overtime:    %s h  %s\n", pay.OvertimeHours.StringFixed(2), output.FormatCurrency(pay.OvertimePay))
			fmt.Fprintf(w, "Double time: %s h  %s\n", pay.DoubleTimeHours.StringFixed(2), output.FormatCurrency(pay.DoubleTimePay))
			fmt.Fprintf(w, "Gross pay:   %s\n", output.FormatCurrency(pay.GrossPay))
			return nil
		},
	}

	cmd.Flags().StringVar(&hours, "hours", "", "Comma-separated hours worked per day, up to 7 days")
	cmd.Flags().Var(newDecimalValue(&rate, decimal.Zero), "rate", "Hourly rate")
	cmd.Flags().StringVar(&rule, "rule", "none", "Overtime rule: none, weekly_40, daily_8, california")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of text")
	_ = cmd.MarkFlagRequired("hours")
	_ = cmd.MarkFlagRequired("rate")
	return cmd
}

func parseHours(s string) ([]decimal.Decimal, error) {
	parts := strings.Split(s, ",")
	hours := make([]decimal.Decimal, 0, len(parts))
	for i, p := range parts {
		h, err := decimal.NewFromString(strings.TrimSpace(p))
		if err != nil {
			return nil, domain.NewInvalidInput(fmt.Sprintf("hours[%d]", i), "not a number: %q", p)
		}
		hours = append(hours, h)
	}
	return hours, nil
}
