package cmd

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/napkincalc/napkin/internal/calculation"
	"github.com/napkincalc/napkin/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Version is set at build time with -ldflags "-X github.com/napkincalc/napkin/cmd.Version=...".
var Version = "dev"

// app carries the state shared by every subcommand of one root command.
type app struct {
	v        *viper.Viper
	cfgFile  string
	settings *config.Settings
	logger   *zap.Logger
}

// NewRootCmd builds the napkin command tree with its own settings instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: config.NewViper(), logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "napkin",
		Short: "Back-of-the-napkin FIRE and small business projections",
		Long: `napkin projects savings balances in today's dollars, finds the year a
financial independence goal is reached, and runs quick business cash-flow
and payroll numbers. Scenarios are described in YAML files; see "napkin example".`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initialize()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "settings file (default is $HOME/.napkin.yaml)")
	flags.StringP("log-level", "l", "info", "Set log level. Available: debug, info, warn, error")
	flags.String("log-format", "console", "Log format: console or json")
	flags.String("log-file", "", "Write logs to this file instead of stderr")
	_ = a.v.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("logging.format", flags.Lookup("log-format"))
	_ = a.v.BindPFlag("logging.output_file", flags.Lookup("log-file"))

	rootCmd.AddCommand(
		newProjectCmd(a),
		newCompareCmd(a),
		newRunCmd(a),
		newExampleCmd(a),
		newServeCmd(a),
		newPayrollCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initialize reads the settings file and NAPKIN_* environment and builds the logger.
func (a *app) initialize() error {
	if a.cfgFile == "" {
		home, err := homedir.Dir()
		if err == nil {
			a.v.AddConfigPath(home)
		}
		a.v.SetConfigName(".napkin")
		a.v.SetConfigType("yaml")
	}

	settings, err := config.LoadSettings(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.settings = settings

	logger, err := initializeLogger(settings.Logging)
	if err != nil {
		return err
	}
	a.logger = logger
	if used := a.v.ConfigFileUsed(); used != "" {
		logger.Debug("settings loaded", zap.String("file", used))
	}
	return nil
}

// engine returns a calculation engine that logs through the app logger.
func (a *app) engine() *calculation.CalculationEngine {
	e := calculation.NewCalculationEngine()
	e.SetLogger(calculation.NewZapLogger(a.logger))
	e.Debug = a.settings != nil && a.settings.Logging.Level == "debug"
	return e
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the napkin version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "napkin %s\n", Version)
			return err
		},
	}
}
