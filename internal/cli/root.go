// Package cli implements the carbontrack command line interface. It is a
// thin collaborator over the core packages: it collects inputs, calls the
// emission model and the history store, and renders their outputs.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/carbontrack/internal/config"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the carbontrack CLI.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "carbontrack",
		Short:   "Personal carbon footprint tracker",
		Long:    "CarbonTrack: estimate, track, and reduce your annual carbon footprint",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupLogging(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			config.CloseLogFile()
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("history-file", "", "path of the history document (overrides config)")
	cmd.PersistentFlags().String("factors-file", "", "path of the emission factors file (overrides config)")

	cmd.AddCommand(
		newCalculateCmd(),
		newHistoryCmd(),
		newStatsCmd(),
		newGoalCmd(),
		newBadgesCmd(),
		newSettingsCmd(),
		newExportCmd(),
		newSimulateCmd(),
		newConfigCmd(),
	)

	return cmd
}

// setupLogging configures the global logger from config and the --debug
// flag.
func setupLogging(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level := cfg.Logging.Level
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = "debug"
	}

	if err := config.InitLogger(level, cfg.Logging.File); err != nil {
		return err
	}

	logger = config.GetLogger().With().Str("component", "cli").Logger()
	logger.Debug().Str("command", cmd.Name()).Msg("command started")
	return nil
}

const rootCmdExample = `  # Calculate and save a footprint
  carbontrack calculate --country India --transport "Car (Petrol)" \
    --distance 10 --electricity 100 --diet "Medium Meat Eater" \
    --waste 5 --recycling 50

  # Show calculation history and statistics
  carbontrack history --limit 10
  carbontrack stats

  # Track a reduction goal
  carbontrack goal set --target 3.5 --date 2027-01-01
  carbontrack goal show

  # See earned badges
  carbontrack badges

  # What-if simulation on the latest calculation
  carbontrack simulate --action solar --action go-vegetarian

  # Export history
  carbontrack export --format csv --out history.csv

  # Scaffold config and factor files
  carbontrack config init`
