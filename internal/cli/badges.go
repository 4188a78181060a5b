package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/carbontrack/internal/badges"
	"github.com/rshade/carbontrack/internal/stats"
	"github.com/rshade/carbontrack/internal/store"
)

// newBadgesCmd creates the "badges" subcommand: earned and locked
// achievements with progress hints.
func newBadgesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "badges",
		Short: "Show earned and locked achievement badges",
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := openStore(cmd)
			if err != nil {
				return err
			}

			snapshot := stats.Compute(st.Calculations(0))

			var latest *store.Calculation
			if c, ok := st.LatestCalculation(); ok {
				latest = &c
			}

			if latest == nil {
				cmd.Println("Complete your first calculation to start earning badges.")
				return nil
			}

			earned := badges.Evaluate(latest, snapshot)
			earnedSet := make(map[badges.ID]bool, len(earned))
			for _, id := range earned {
				earnedSet[id] = true
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "You've earned %d of %d badges\n\n", len(earned), len(badges.All()))

			for _, id := range badges.All() {
				meta, _ := badges.Lookup(id)
				state := "locked"
				if earnedSet[id] {
					state = "earned"
				}
				fmt.Fprintf(out, "%s %-16s %-8s %s\n", meta.Icon, meta.Title, state, meta.Description)
			}

			hints := badges.NextBadgeProgress(latest, snapshot, earned)
			if len(hints) > 0 {
				fmt.Fprintln(out, "\nProgress to next badges:")
				for _, hint := range hints {
					meta, _ := badges.Lookup(hint.Badge)
					fmt.Fprintf(out, "  %s: %s\n", meta.Title, hint.Message)
				}
			}

			return nil
		},
	}
}
