package footprint

// countryAverages holds per-capita annual footprints in tonnes CO2e for
// countries with published national estimates. Countries not listed fall
// back to the global average.
//
//nolint:gochecknoglobals // Constant lookup table.
var countryAverages = map[string]float64{
	"India":     1.9,
	"USA":       15.5,
	"UK":        5.5,
	"China":     8.0,
	"Australia": 15.4,
}

// BenchmarkComparison reports how a footprint compares against reference
// values. Deltas are footprint minus reference: positive means the user
// emits more than the reference.
type BenchmarkComparison struct {
	CountryAverage  float64 `json:"country_average"`
	GlobalAverage   float64 `json:"global_average"`
	Target2050      float64 `json:"target_2050"`
	DeltaCountry    float64 `json:"delta_country"`
	DeltaGlobal     float64 `json:"delta_global"`
	DeltaTarget2050 float64 `json:"delta_target_2050"`
	CountryListed   bool    `json:"country_listed"`
}

// CompareToBenchmarks compares an annual total (tonnes CO2e) against the
// country average, the global average, and the 2050 target.
func CompareToBenchmarks(total float64, country string) BenchmarkComparison {
	avg, listed := countryAverages[country]
	if !listed {
		avg = GlobalAverageTonnes
	}

	return BenchmarkComparison{
		CountryAverage:  avg,
		GlobalAverage:   GlobalAverageTonnes,
		Target2050:      Target2050Tonnes,
		DeltaCountry:    Round2(total - avg),
		DeltaGlobal:     Round2(total - GlobalAverageTonnes),
		DeltaTarget2050: Round2(total - Target2050Tonnes),
		CountryListed:   listed,
	}
}
