package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/carbontrack/internal/stats"
	"github.com/rshade/carbontrack/internal/store"
)

// newGoalCmd creates the "goal" command group for the single active
// reduction goal.
func newGoalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage your emission reduction goal",
	}

	cmd.AddCommand(newGoalSetCmd(), newGoalShowCmd(), newGoalClearCmd())

	return cmd
}

// newGoalSetCmd creates "goal set": replaces the active goal.
func newGoalSetCmd() *cobra.Command {
	var (
		target float64
		date   string
	)

	cmd := &cobra.Command{
		Use:     "set",
		Short:   "Set or replace the active reduction goal",
		Example: `  carbontrack goal set --target 3.5 --date 2027-01-01`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if target < 0 {
				return fmt.Errorf("target emissions cannot be negative, got %v", target)
			}
			if _, err := time.Parse("2006-01-02", date); err != nil {
				return fmt.Errorf("target date must be YYYY-MM-DD: %w", err)
			}

			st, err := openStore(cmd)
			if err != nil {
				return err
			}

			goal := store.Goal{TargetEmissions: target, TargetDate: date}
			if !st.SaveGoal(goal) {
				return fmt.Errorf("could not save goal to %s", st.FilePath())
			}

			cmd.Printf("Goal set: %.2f tonnes by %s\n", target, date)
			return nil
		},
	}

	cmd.Flags().Float64Var(&target, "target", 0, "target annual emissions in tonnes CO2e (required)")
	cmd.Flags().StringVar(&date, "date", "", "target date, YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("target")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

// newGoalShowCmd creates "goal show": the active goal and progress against
// the latest calculation.
func newGoalShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the active goal and progress toward it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := openStore(cmd)
			if err != nil {
				return err
			}

			goal, ok := st.ActiveGoal()
			if !ok {
				cmd.Println("No active goal. Set one with 'carbontrack goal set'.")
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Active goal: %.2f tonnes by %s\n", goal.TargetEmissions, goal.TargetDate)

			latest, ok := st.LatestCalculation()
			if !ok {
				fmt.Fprintln(out, "No calculations yet to measure progress against.")
				return nil
			}

			progress := stats.ComputeGoalProgress(latest.Total, goal)
			renderGoalProgress(out, goal.TargetEmissions, progress)
			return nil
		},
	}
}

// newGoalClearCmd creates "goal clear": clears the active goal without
// touching history.
func newGoalClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear the active goal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := openStore(cmd)
			if err != nil {
				return err
			}

			if !st.ResetGoal() {
				return fmt.Errorf("could not clear goal at %s", st.FilePath())
			}

			cmd.Println("Goal cleared.")
			return nil
		},
	}
}
