package footprint

import (
	"fmt"
	"math"

	"github.com/rshade/carbontrack/internal/config"
)

// Scenario is a named preset of lifestyle inputs used for side-by-side
// comparison. Country is filled in at comparison time.
type Scenario struct {
	Name  string `json:"name"`
	Input Input  `json:"input"`
}

// Preset scenario parameters mirror the published comparison lifestyles:
// a car-commuting, high-consumption household against a transit-riding,
// low-consumption one.
//
//nolint:gochecknoglobals // Constant presets.
var (
	highCarbonScenario = Scenario{
		Name: "High Carbon",
		Input: Input{
			TransportMode:         "Car (Petrol)",
			DailyDistanceKm:       50,
			MonthlyElectricityKwh: 300,
			DietType:              "High Meat Eater",
			WeeklyWasteKg:         10,
			RecyclingPercent:      20,
		},
	}

	lowCarbonScenario = Scenario{
		Name: "Low Carbon",
		Input: Input{
			TransportMode:         "Metro/Train",
			DailyDistanceKm:       10,
			MonthlyElectricityKwh: 80,
			DietType:              "Vegetarian",
			WeeklyWasteKg:         3,
			RecyclingPercent:      80,
		},
	}
)

// ScenarioResult pairs a scenario with its computed breakdown.
type ScenarioResult struct {
	Scenario  Scenario  `json:"scenario"`
	Breakdown Breakdown `json:"breakdown"`
}

// ScenarioComparison reports the high- and low-carbon preset results for a
// country together with the potential savings of switching.
type ScenarioComparison struct {
	High           ScenarioResult `json:"high"`
	Low            ScenarioResult `json:"low"`
	SavingsTonnes  float64        `json:"savings_tonnes"`
	SavingsPercent float64        `json:"savings_percent"`
}

// CompareScenarios computes the preset high- and low-carbon scenarios for
// the given country. Both presets must resolve against the country's factor
// table, so an incomplete region surfaces as a lookup error.
func CompareScenarios(factors config.FactorTable, country string) (ScenarioComparison, error) {
	high := highCarbonScenario
	high.Input.Country = country
	highBreakdown, err := Compute(high.Input, factors)
	if err != nil {
		return ScenarioComparison{}, fmt.Errorf("high carbon scenario: %w", err)
	}

	low := lowCarbonScenario
	low.Input.Country = country
	lowBreakdown, err := Compute(low.Input, factors)
	if err != nil {
		return ScenarioComparison{}, fmt.Errorf("low carbon scenario: %w", err)
	}

	savings := Round2(highBreakdown.Total - lowBreakdown.Total)
	percent := 0.0
	if highBreakdown.Total > 0 {
		percent = Round1(savings / highBreakdown.Total * 100)
	}

	return ScenarioComparison{
		High:           ScenarioResult{Scenario: high, Breakdown: highBreakdown},
		Low:            ScenarioResult{Scenario: low, Breakdown: lowBreakdown},
		SavingsTonnes:  savings,
		SavingsPercent: percent,
	}, nil
}

// Round1 rounds v to 1 decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
