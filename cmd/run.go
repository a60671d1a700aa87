package cmd

import (
	"fmt"
	"strings"

	"github.com/napkincalc/napkin/internal/config"
	"github.com/napkincalc/napkin/internal/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <scenario-file>",
		Short: "Run every scenario in a YAML file and print a report",
		Example: `  napkin run scenarios.yaml
  napkin run scenarios.yaml --format csv --output-dir reports
  napkin run scenarios.yaml --format all --output-dir reports`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			cfg, err := parser.LoadFromFile(args[0])
			if err != nil {
				return err
			}
			a.logger.Info("configuration loaded", zap.String("file", args[0]), zap.Int("scenarios", len(cfg.Scenarios)))

			report, err := a.engine().RunScenarios(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			format := a.v.GetString("output.format")
			dir := a.v.GetString("output.dir")
			if dir == "" {
				if format == "all" {
					return fmt.Errorf("format %q requires --output-dir", format)
				}
				return output.Render(cmd.OutOrStdout(), report, format)
			}

			files, err := output.GenerateReport(report, format, dir)
			if err != nil {
				return err
			}
			for _, f := range files {
				a.logger.Info("report written", zap.String("file", f))
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return nil
		},
	}

	cmd.Flags().StringP("format", "f", "console", "Report format ("+formatHelp()+", or all)")
	cmd.Flags().StringP("output-dir", "o", "", "Write report files here instead of printing to stdout")
	_ = a.v.BindPFlag("output.format", cmd.Flags().Lookup("format"))
	_ = a.v.BindPFlag("output.dir", cmd.Flags().Lookup("output-dir"))
	return cmd
}

func formatHelp() string {
	return strings.Join(output.AvailableFormatterNames(), ", ")
}
