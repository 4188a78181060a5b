package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/carbontrack/internal/footprint"
)

// newSimulateCmd creates the "simulate" subcommand: applies what-if
// reduction actions to the latest saved calculation, and compares the
// preset high/low carbon scenarios.
func newSimulateCmd() *cobra.Command {
	var (
		actionNames []string
		scenarios   bool
	)

	actionList := make([]string, 0, len(footprint.AllActions()))
	for _, a := range footprint.AllActions() {
		actionList = append(actionList, string(a))
	}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate the impact of reduction actions on your latest calculation",
		Long: "Applies what-if reduction actions to your most recent saved calculation.\n\n" +
			"Available actions: " + strings.Join(actionList, ", "),
		Example: `  carbontrack simulate --action solar --action go-vegetarian
  carbontrack simulate --scenarios --country India`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if scenarios {
				return executeScenarios(cmd)
			}
			return executeSimulate(cmd, actionNames)
		},
	}

	cmd.Flags().StringArrayVar(&actionNames, "action", nil, "reduction action to apply (repeatable)")
	cmd.Flags().BoolVar(&scenarios, "scenarios", false, "compare the preset high/low carbon scenarios instead")
	cmd.Flags().String("country", "", "country for --scenarios (defaults to latest calculation's)")

	return cmd
}

func executeSimulate(cmd *cobra.Command, actionNames []string) error {
	if len(actionNames) == 0 {
		return fmt.Errorf("at least one --action is required (or use --scenarios)")
	}

	actions := make([]footprint.Action, 0, len(actionNames))
	for _, name := range actionNames {
		action, err := footprint.ParseAction(name)
		if err != nil {
			return err
		}
		actions = append(actions, action)
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}

	latest, ok := st.LatestCalculation()
	if !ok {
		return fmt.Errorf("no calculations in history; run 'carbontrack calculate' first")
	}

	factors, err := loadFactors(cmd)
	if err != nil {
		return err
	}

	breakdown := footprint.Breakdown{
		Transportation: latest.Transportation,
		Electricity:    latest.Electricity,
		Diet:           latest.Diet,
		Waste:          latest.Waste,
		Total:          latest.Total,
	}
	input := footprint.Input{
		Country:               latest.Country,
		TransportMode:         latest.TransportMode,
		DailyDistanceKm:       latest.DailyDistanceKm,
		MonthlyElectricityKwh: latest.MonthlyElectricity,
		DietType:              latest.DietType,
		WeeklyWasteKg:         latest.WeeklyWasteKg,
		RecyclingPercent:      latest.RecyclingPercent,
	}

	result, err := footprint.Simulate(breakdown, input, factors, actions)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Current footprint:   %s\n", footprint.FormatTonnes(breakdown.Total))
	fmt.Fprintf(out, "Simulated footprint: %s\n", footprint.FormatTonnes(result.Simulated.Total))
	fmt.Fprintf(out, "Potential savings:   %.2f tonnes (%.1f%%)\n",
		result.SavingsTonnes, result.SavingsPercent)

	return nil
}

func executeScenarios(cmd *cobra.Command) error {
	country, _ := cmd.Flags().GetString("country")
	if country == "" {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		latest, ok := st.LatestCalculation()
		if !ok {
			return fmt.Errorf("no calculations in history; pass --country explicitly")
		}
		country = latest.Country
	}

	factors, err := loadFactors(cmd)
	if err != nil {
		return err
	}

	comparison, err := footprint.CompareScenarios(factors, country)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %s\n", comparison.High.Scenario.Name,
		footprint.FormatTonnes(comparison.High.Breakdown.Total))
	fmt.Fprintf(out, "%s:  %s\n", comparison.Low.Scenario.Name,
		footprint.FormatTonnes(comparison.Low.Breakdown.Total))
	fmt.Fprintf(out, "Potential savings: %.2f tonnes (%.1f%% reduction)\n",
		comparison.SavingsTonnes, comparison.SavingsPercent)

	return nil
}
