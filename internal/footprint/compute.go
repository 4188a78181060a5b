// Package footprint computes estimated annual personal carbon footprints
// from lifestyle inputs and a region's emission factor table.
//
// All functions are pure: they take inputs and factors and return a
// breakdown without side effects, so they are safe to call from any number
// of goroutines.
package footprint

import (
	"fmt"
	"math"

	"github.com/rshade/carbontrack/internal/config"
)

// Input is the set of lifestyle quantities a footprint is computed from.
type Input struct {
	// Country must key into the configured factor table.
	Country string `json:"country"`

	// TransportMode must key into the country's transport factors.
	TransportMode string `json:"transport_mode"`

	// DailyDistanceKm is the one-way commute distance in km.
	DailyDistanceKm float64 `json:"daily_distance"`

	// MonthlyElectricityKwh is household electricity use per month.
	MonthlyElectricityKwh float64 `json:"monthly_electricity"`

	// DietType must key into the country's diet factors.
	DietType string `json:"diet_type"`

	// WeeklyWasteKg is waste generated per week in kg.
	WeeklyWasteKg float64 `json:"weekly_waste"`

	// RecyclingPercent is the share of waste recycled, 0-100.
	RecyclingPercent int `json:"recycling_pct"`
}

// Validate checks range constraints on the numeric inputs. Lookup
// constraints (country, transport mode, diet type) are checked by Compute
// against the factor table.
func (in Input) Validate() error {
	if in.DailyDistanceKm < 0 {
		return fmt.Errorf("%w: daily distance %v km", ErrNegativeInput, in.DailyDistanceKm)
	}
	if in.MonthlyElectricityKwh < 0 {
		return fmt.Errorf("%w: monthly electricity %v kWh", ErrNegativeInput, in.MonthlyElectricityKwh)
	}
	if in.WeeklyWasteKg < 0 {
		return fmt.Errorf("%w: weekly waste %v kg", ErrNegativeInput, in.WeeklyWasteKg)
	}
	if in.RecyclingPercent < MinRecyclingPercent || in.RecyclingPercent > MaxRecyclingPercent {
		return fmt.Errorf("%w: got %d", ErrRecyclingOutOfRange, in.RecyclingPercent)
	}
	return nil
}

// Breakdown is an annual footprint split by category, in tonnes CO2e.
//
// The category fields are each rounded to 2 decimal places for display.
// Total is computed from the unrounded components and rounded once, so it
// may differ from the sum of the rounded categories by up to 0.02.
type Breakdown struct {
	Transportation float64 `json:"transportation"`
	Electricity    float64 `json:"electricity"`
	Diet           float64 `json:"diet"`
	Waste          float64 `json:"waste"`
	Total          float64 `json:"total_emissions"`
}

// Category names used in breakdowns and recommendations.
const (
	CategoryTransportation = "Transportation"
	CategoryElectricity    = "Electricity"
	CategoryDiet           = "Diet"
	CategoryWaste          = "Waste"
)

// Compute calculates the annual emission breakdown for the given input
// against the factor table.
//
// Unknown country, transport mode, or diet type surface as lookup errors;
// negative or out-of-range inputs surface as validation errors. Errors are
// never silently defaulted: they indicate an upstream configuration or
// programming mistake.
func Compute(in Input, factors config.FactorTable) (Breakdown, error) {
	if err := in.Validate(); err != nil {
		return Breakdown{}, err
	}

	region, ok := factors.Region(in.Country)
	if !ok {
		return Breakdown{}, fmt.Errorf("%w: %q", ErrUnknownCountry, in.Country)
	}

	transportFactor, ok := region.Transport[in.TransportMode]
	if !ok {
		return Breakdown{}, fmt.Errorf("%w: %q", ErrUnknownTransportMode, in.TransportMode)
	}

	dietFactor, ok := region.Diet[in.DietType]
	if !ok {
		return Breakdown{}, fmt.Errorf("%w: %q", ErrUnknownDietType, in.DietType)
	}

	yearlyDistance := in.DailyDistanceKm * RoundTripFactor * WorkingDaysPerYear
	transportation := transportFactor * yearlyDistance / KgPerTonne

	yearlyElectricity := in.MonthlyElectricityKwh * MonthsPerYear
	electricity := region.Electricity * yearlyElectricity / KgPerTonne

	diet := dietFactor / KgPerTonne

	yearlyWaste := in.WeeklyWasteKg * WeeksPerYear
	unrecycled := yearlyWaste * (1 - float64(in.RecyclingPercent)/100)
	waste := region.Waste * unrecycled / KgPerTonne

	// Total is rounded once from the unrounded components; the per-category
	// values are rounded independently afterwards.
	total := Round2(transportation + electricity + diet + waste)

	return Breakdown{
		Transportation: Round2(transportation),
		Electricity:    Round2(electricity),
		Diet:           Round2(diet),
		Waste:          Round2(waste),
		Total:          total,
	}, nil
}

// Round2 rounds v to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// HighestCategory returns the name of the dominant emission category in the
// breakdown, used to target reduction advice.
func HighestCategory(b Breakdown) string {
	highest := CategoryTransportation
	value := b.Transportation

	if b.Electricity > value {
		highest, value = CategoryElectricity, b.Electricity
	}
	if b.Diet > value {
		highest, value = CategoryDiet, b.Diet
	}
	if b.Waste > value {
		highest = CategoryWaste
	}
	return highest
}
