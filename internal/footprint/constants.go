package footprint

// Annualization constants for the fixed calculation formulas.
//
// The commute model assumes a round trip on every working day; diet factors
// are already annual; electricity and waste inputs are monthly and weekly
// quantities respectively.
const (
	// WorkingDaysPerYear is the assumed number of commuting days.
	WorkingDaysPerYear = 260

	// RoundTripFactor doubles the one-way commute distance.
	RoundTripFactor = 2

	// MonthsPerYear annualizes monthly electricity consumption.
	MonthsPerYear = 12

	// WeeksPerYear annualizes weekly waste generation.
	WeeksPerYear = 52

	// KgPerTonne converts kg CO2e to tonnes CO2e.
	KgPerTonne = 1000.0
)

// Recycling percentage bounds.
const (
	MinRecyclingPercent = 0
	MaxRecyclingPercent = 100
)

// Reference footprints for benchmark comparison, in tonnes CO2e per year.
// Sources: IPCC and national environmental agency estimates.
const (
	// GlobalAverageTonnes is the global average per-capita footprint.
	GlobalAverageTonnes = 4.7

	// Target2050Tonnes is the per-capita footprint consistent with 2050
	// climate targets.
	Target2050Tonnes = 2.0
)
