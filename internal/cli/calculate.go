package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/carbontrack/internal/badges"
	"github.com/rshade/carbontrack/internal/footprint"
	"github.com/rshade/carbontrack/internal/stats"
	"github.com/rshade/carbontrack/internal/store"
)

// CalculateParams holds the parameters for the calculate command.
// Exported for testing.
type CalculateParams struct {
	Country     string
	Transport   string
	DistanceKm  float64
	Electricity float64
	Diet        string
	WasteKg     float64
	Recycling   int
	NoSave      bool
}

// newCalculateCmd creates the "calculate" subcommand: compute a footprint,
// save it to history, and render the breakdown with benchmark deltas, goal
// progress, and earned badges.
func newCalculateCmd() *cobra.Command {
	var params CalculateParams

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate and save your annual carbon footprint",
		Example: `  carbontrack calculate --country India --transport "Car (Petrol)" \
    --distance 10 --electricity 100 --diet "Medium Meat Eater" \
    --waste 5 --recycling 50`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeCalculate(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.Country, "country", "", "country keyed in the factor table (required)")
	cmd.Flags().StringVar(&params.Transport, "transport", "", "commute transport mode (required)")
	cmd.Flags().Float64Var(&params.DistanceKm, "distance", 0, "one-way commute distance in km/day")
	cmd.Flags().Float64Var(&params.Electricity, "electricity", 0, "household electricity in kWh/month")
	cmd.Flags().StringVar(&params.Diet, "diet", "", "diet type (required)")
	cmd.Flags().Float64Var(&params.WasteKg, "waste", 0, "waste generated in kg/week")
	cmd.Flags().IntVar(&params.Recycling, "recycling", 0, "share of waste recycled, 0-100")
	cmd.Flags().BoolVar(&params.NoSave, "no-save", false, "compute without saving to history")

	_ = cmd.MarkFlagRequired("country")
	_ = cmd.MarkFlagRequired("transport")
	_ = cmd.MarkFlagRequired("diet")

	return cmd
}

func executeCalculate(cmd *cobra.Command, params CalculateParams) error {
	factors, err := loadFactors(cmd)
	if err != nil {
		return err
	}

	input := footprint.Input{
		Country:               params.Country,
		TransportMode:         params.Transport,
		DailyDistanceKm:       params.DistanceKm,
		MonthlyElectricityKwh: params.Electricity,
		DietType:              params.Diet,
		WeeklyWasteKg:         params.WasteKg,
		RecyclingPercent:      params.Recycling,
	}

	breakdown, err := footprint.Compute(input, factors)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := renderBreakdown(out, breakdown); err != nil {
		return err
	}

	if params.NoSave {
		return nil
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}

	record := store.Calculation{
		Country:            input.Country,
		Total:              breakdown.Total,
		Transportation:     breakdown.Transportation,
		Electricity:        breakdown.Electricity,
		Diet:               breakdown.Diet,
		Waste:              breakdown.Waste,
		TransportMode:      input.TransportMode,
		DailyDistanceKm:    input.DailyDistanceKm,
		MonthlyElectricity: input.MonthlyElectricityKwh,
		DietType:           input.DietType,
		WeeklyWasteKg:      input.WeeklyWasteKg,
		RecyclingPercent:   input.RecyclingPercent,
	}

	if !st.SaveCalculation(record) {
		cmd.PrintErrln("Warning: calculation could not be saved to history")
	}

	// Benchmark comparison
	bench := footprint.CompareToBenchmarks(breakdown.Total, input.Country)
	fmt.Fprintf(out, "\n%s average: %.1f tonnes (%s vs you)\n",
		input.Country, bench.CountryAverage, footprint.FormatDelta(bench.DeltaCountry))
	fmt.Fprintf(out, "Global average: %.1f tonnes (%s vs you)\n",
		bench.GlobalAverage, footprint.FormatDelta(bench.DeltaGlobal))
	fmt.Fprintf(out, "2050 target: %.1f tonnes (%s to target)\n",
		bench.Target2050, footprint.FormatDelta(bench.DeltaTarget2050))

	// Reduction hint for the dominant category
	fmt.Fprintf(out, "\nLargest contributor: %s\n", footprint.HighestCategory(breakdown))

	// Goal progress
	if goal, ok := st.ActiveGoal(); ok {
		fmt.Fprintln(out)
		progress := stats.ComputeGoalProgress(breakdown.Total, goal)
		renderGoalProgress(out, goal.TargetEmissions, progress)
	}

	// Earned badges
	calcs := st.Calculations(0)
	snapshot := stats.Compute(calcs)
	if latest, ok := st.LatestCalculation(); ok {
		earned := badges.Evaluate(&latest, snapshot)
		if len(earned) > 0 {
			titles := make([]string, 0, len(earned))
			for _, id := range earned {
				if meta, found := badges.Lookup(id); found {
					titles = append(titles, meta.Title)
				}
			}
			fmt.Fprintf(out, "\nBadges earned: %s\n", strings.Join(titles, ", "))
		}
	}

	return nil
}
