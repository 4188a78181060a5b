package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rshade/carbontrack/internal/config"
)

// newConfigCmd creates the "config" command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage carbontrack configuration",
	}

	cmd.AddCommand(newConfigInitCmd(), newConfigValidateCmd())

	return cmd
}

// newConfigInitCmd creates "config init": scaffolds the config file and a
// starter emission factors dataset under the app directory.
func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration and a starter factors file",
		Long: `Creates the carbontrack configuration file and a starter emission
factors dataset under the app directory. The factors file is the single
source of emission factors: if it is missing at calculation time that is
an error, never a silent fallback.`,
		Example: `  carbontrack config init
  carbontrack config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.New()

			factorsPath, err := cfg.FactorsFilePath()
			if err != nil {
				return err
			}

			if !force {
				if _, statErr := os.Stat(factorsPath); statErr == nil {
					return errors.New("factors file already exists, use --force to overwrite")
				} else if !os.IsNotExist(statErr) {
					return fmt.Errorf("cannot access factors path %s: %w", factorsPath, statErr)
				}
			}

			appDir, err := config.AppDir()
			if err != nil {
				return err
			}
			configPath := filepath.Join(appDir, config.DefaultConfigFileName)

			// An existing config file is left untouched unless --force: the
			// user may have edited it, and a missing factors file alone is no
			// reason to reset it.
			writeConfig := force
			if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
				writeConfig = true
			} else if statErr != nil {
				return fmt.Errorf("cannot access config path %s: %w", configPath, statErr)
			}

			if writeConfig {
				if err := cfg.Write(); err != nil {
					return fmt.Errorf("failed to save configuration: %w", err)
				}
			}

			if err := config.WriteFactorTable(factorsPath, config.DefaultFactorTable()); err != nil {
				return fmt.Errorf("failed to write starter factors: %w", err)
			}

			cmd.Printf("Configuration initialized; factors written to %s\n", factorsPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing files")

	return cmd
}

// newConfigValidateCmd creates "config validate": checks the factors file
// and the history document health.
func newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the factors file and history document",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := loadFactors(cmd); err != nil {
				return err
			}
			cmd.Println("Factors file OK.")

			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			if err := st.CheckHealth(); err != nil {
				return err
			}
			cmd.Println("History document OK.")
			return nil
		},
	}
}
