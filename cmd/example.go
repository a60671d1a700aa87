package cmd

import (
	"fmt"

	"github.com/napkincalc/napkin/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newExampleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "example [file]",
		Short: "Write an example scenario file covering every calculator",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			example := parser.CreateExampleConfiguration()

			if len(args) == 1 {
				if err := parser.SaveToFile(example, args[0]); err != nil {
					return err
				}
				a.logger.Sugar().Infof("example configuration written to %s", args[0])
				return nil
			}

			data, err := yaml.Marshal(example)
			if err != nil {
				return fmt.Errorf("failed to marshal example configuration: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
