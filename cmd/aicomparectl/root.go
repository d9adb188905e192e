package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"aicompare/internal/app"
	"aicompare/internal/domain"
	"aicompare/internal/infra/telemetry"
)

type cliOptions struct {
	configPath string
	seedPath   string
	logLevel   string
	jsonOutput bool
	logger     *zap.Logger
	app        *app.Application
}

func newRootCommand() *cobra.Command {
	opts := cliOptions{
		logger: zap.NewNop(),
	}

	root := &cobra.Command{
		Use:           "aicomparectl",
		Short:         "Compare AI chat tools from an in-memory catalog",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			applyRootFlagBindings(cmd, &opts)
			return startApplication(cmd, &opts)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if opts.app != nil {
				opts.app.Close()
			}
			_ = opts.logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config file (optional)")
	root.PersistentFlags().StringVar(&opts.seedPath, "seed", "", "seed file to load instead of the built-in catalog")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "output JSON")

	root.AddCommand(
		newToolsCmd(&opts),
		newUseCasesCmd(&opts),
		newRecommendCmd(&opts),
		newLeadersCmd(&opts),
		newCompareCmd(&opts),
		newTableCmd(&opts),
		newMatrixCmd(&opts),
		newTeamMetricsCmd(&opts),
		newSummaryCmd(&opts),
		newDiffCmd(&opts),
		newExportCmd(&opts),
		newSchemaCmd(&opts),
		newValidateCmd(&opts),
		newMetricsCmd(&opts),
	)

	return root
}

func applyRootFlagBindings(cmd *cobra.Command, opts *cliOptions) {
	flags := cmd.Flags()
	flags.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "config":
			opts.configPath, _ = flags.GetString("config")
		case "seed":
			opts.seedPath, _ = flags.GetString("seed")
		case "log-level":
			opts.logLevel, _ = flags.GetString("log-level")
		case "json":
			opts.jsonOutput, _ = flags.GetBool("json")
		}
	})
}

// startApplication loads config, applies flag overrides and opens the
// catalog session the subcommand runs against.
func startApplication(cmd *cobra.Command, opts *cliOptions) error {
	bootLevel := opts.logLevel
	if bootLevel == "" {
		bootLevel = domain.DefaultLogLevel
	}
	bootLogger, err := telemetry.NewLogger(telemetry.LoggerConfig{Level: bootLevel, Format: domain.DefaultLogFormat})
	if err != nil {
		return err
	}

	cfg, err := app.LoadConfig(opts.configPath, bootLogger)
	if err != nil {
		return err
	}
	if opts.seedPath != "" {
		cfg.SeedPath = opts.seedPath
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}

	logger, err := telemetry.NewLogger(telemetry.LoggerConfig{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return err
	}
	opts.logger = logger.With(zap.String("command", cmd.CommandPath()))

	application, err := app.InitializeApplication(cmd.Context(), cfg, app.LoggingConfig{Logger: opts.logger})
	if err != nil {
		return err
	}
	opts.app = application
	return nil
}
