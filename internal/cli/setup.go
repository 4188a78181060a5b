package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/carbontrack/internal/config"
	"github.com/rshade/carbontrack/internal/store"
)

// openStore resolves the history file path from the --history-file flag or
// config and opens the store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	if path, _ := cmd.Flags().GetString("history-file"); path != "" {
		return store.New(path)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	path, err := cfg.HistoryFilePath()
	if err != nil {
		return nil, err
	}
	return store.New(path)
}

// loadFactors resolves the factors file path from the --factors-file flag
// or config and loads the table. A missing or invalid dataset is a fatal
// configuration error for calculation commands.
func loadFactors(cmd *cobra.Command) (config.FactorTable, error) {
	if path, _ := cmd.Flags().GetString("factors-file"); path != "" {
		return config.LoadFactorTable(path)
	}

	cfg, err := config.Load()
	if err != nil {
		return config.FactorTable{}, err
	}
	path, err := cfg.FactorsFilePath()
	if err != nil {
		return config.FactorTable{}, err
	}
	return config.LoadFactorTable(path)
}
