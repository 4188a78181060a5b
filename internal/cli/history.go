package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/carbontrack/internal/export"
)

// newHistoryCmd creates the "history" subcommand: list saved calculations
// most recent first, with an optional clear.
func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show calculation history, most recent first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := openStore(cmd)
			if err != nil {
				return err
			}

			calcs := st.Calculations(limit)
			if len(calcs) == 0 {
				cmd.Println("No calculation history yet. Run 'carbontrack calculate' first.")
				return nil
			}

			renderTable(cmd.OutOrStdout(), export.Header, export.Rows(calcs))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of recent calculations to show (0 = all)")

	cmd.AddCommand(newHistoryClearCmd())

	return cmd
}

// newHistoryClearCmd creates "history clear": destroys all records, the
// active goal, and settings together.
func newHistoryClearCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear all history, the active goal, and settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return fmt.Errorf("clearing removes all calculations, the goal, and settings; re-run with --yes to confirm")
			}

			st, err := openStore(cmd)
			if err != nil {
				return err
			}

			if !st.ClearHistory() {
				return fmt.Errorf("could not clear history at %s", st.FilePath())
			}

			cmd.Println("History cleared.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm destructive clear")

	return cmd
}
