package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/carbontrack/internal/stats"
)

// newStatsCmd creates the "stats" subcommand: aggregate metrics over the
// calculation history.
func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show statistics over your calculation history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := openStore(cmd)
			if err != nil {
				return err
			}

			snapshot := stats.Compute(st.Calculations(0))
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Calculations:      %d\n", snapshot.TotalCalculations)
			fmt.Fprintf(out, "Average footprint: %.2f tonnes CO2e/yr\n", snapshot.AverageFootprint)
			fmt.Fprintf(out, "Lowest footprint:  %.2f tonnes CO2e/yr\n", snapshot.LowestFootprint)
			fmt.Fprintf(out, "Highest footprint: %.2f tonnes CO2e/yr\n", snapshot.HighestFootprint)
			fmt.Fprintf(out, "Trend:             %s\n", snapshot.Trend)

			if snapshot.FirstCalculationDate != "" {
				fmt.Fprintf(out, "First calculation: %s\n", snapshot.FirstCalculationDate)
				fmt.Fprintf(out, "Latest calculation: %s\n", snapshot.LatestCalculationDate)
			}

			return nil
		},
	}
}
