// Package stats derives aggregate metrics from the calculation history.
// Everything is computed fresh on demand; histories are small enough that
// no incremental aggregates are kept.
package stats

import (
	"math"

	"github.com/rshade/carbontrack/internal/store"
)

// Trend classifies the most recent footprint against the historical
// average.
type Trend string

const (
	// TrendImproving means the latest footprint is more than 5% below the
	// average of all prior calculations.
	TrendImproving Trend = "improving"
	// TrendWorsening means the latest footprint is more than 5% above the
	// average of all prior calculations.
	TrendWorsening Trend = "worsening"
	// TrendNeutral means the latest footprint is within the 5% band, or
	// there are fewer than two calculations.
	TrendNeutral Trend = "neutral"
)

// Trend comparison band: latest below 95% of the prior average is
// improving, above 105% is worsening.
const (
	improvingFactor = 0.95
	worseningFactor = 1.05
)

// Statistics is a snapshot of aggregate metrics over the calculation log.
type Statistics struct {
	TotalCalculations int     `json:"total_calculations"`
	AverageFootprint  float64 `json:"average_footprint"`
	LowestFootprint   float64 `json:"lowest_footprint"`
	HighestFootprint  float64 `json:"highest_footprint"`
	Trend             Trend   `json:"trend"`

	FirstCalculationDate  string `json:"first_calculation_date,omitempty"`
	LatestCalculationDate string `json:"latest_calculation_date,omitempty"`
}

// Compute derives statistics from a calculation log ordered
// most-recent-first, the order the store returns. An empty log yields
// zeroes and a neutral trend.
func Compute(calcs []store.Calculation) Statistics {
	if len(calcs) == 0 {
		return Statistics{Trend: TrendNeutral}
	}

	totals := make([]float64, len(calcs))
	for i, c := range calcs {
		totals[i] = c.Total
	}

	sum := 0.0
	lowest := totals[0]
	highest := totals[0]
	for _, t := range totals {
		sum += t
		if t < lowest {
			lowest = t
		}
		if t > highest {
			highest = t
		}
	}

	trend := TrendNeutral
	if len(totals) > 1 {
		latest := totals[0]
		previousSum := sum - latest
		previousAvg := previousSum / float64(len(totals)-1)
		switch {
		case latest < previousAvg*improvingFactor:
			trend = TrendImproving
		case latest > previousAvg*worseningFactor:
			trend = TrendWorsening
		}
	}

	return Statistics{
		TotalCalculations:     len(calcs),
		AverageFootprint:      round2(sum / float64(len(totals))),
		LowestFootprint:       round2(lowest),
		HighestFootprint:      round2(highest),
		Trend:                 trend,
		FirstCalculationDate:  calcs[len(calcs)-1].Timestamp,
		LatestCalculationDate: calcs[0].Timestamp,
	}
}

// round2 rounds v to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
