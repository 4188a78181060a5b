// Package badges maps the latest calculation and a statistics snapshot to
// a set of earned achievement badges. Evaluation is a pure function run
// fresh on every call: no badge state is persisted.
package badges

import (
	"github.com/rshade/carbontrack/internal/stats"
	"github.com/rshade/carbontrack/internal/store"
)

// ID identifies an achievement badge.
type ID string

// Badge identifiers. The order of this list is the display order.
const (
	FirstCalculation   ID = "first_calculation"
	Under3Tonnes       ID = "under_3_tonnes"
	Under2Tonnes       ID = "under_2_tonnes"
	TenCalculations    ID = "10_calculations"
	ImprovingTrend     ID = "improving_trend"
	TransportOptimizer ID = "transport_optimizer"
	Vegetarian         ID = "vegetarian"
	Recycler           ID = "recycler"
)

// Badge thresholds.
const (
	under3Threshold     = 3.0
	under2Threshold     = 2.0
	trackerCalculations = 10
	recyclerMinPercent  = 70
)

// Metadata describes a badge for display.
type Metadata struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// registry holds the display metadata for every badge, keyed by ID.
//
//nolint:gochecknoglobals // Constant lookup table.
var registry = map[ID]Metadata{
	FirstCalculation:   {Icon: "🎯", Title: "First Step", Description: "Completed first calculation"},
	Under3Tonnes:       {Icon: "🌟", Title: "Low Carbon Hero", Description: "Under 3 tonnes CO2e"},
	Under2Tonnes:       {Icon: "💚", Title: "Climate Champion", Description: "Under 2 tonnes CO2e"},
	TenCalculations:    {Icon: "📊", Title: "Tracker", Description: "10 calculations completed"},
	ImprovingTrend:     {Icon: "📉", Title: "Improving", Description: "Downward emissions trend"},
	TransportOptimizer: {Icon: "🚲", Title: "Green Commuter", Description: "Using eco-friendly transport"},
	Vegetarian:         {Icon: "🥗", Title: "Plant Powered", Description: "Vegetarian or Vegan diet"},
	Recycler:           {Icon: "♻️", Title: "Recycling Pro", Description: "70%+ recycling rate"},
}

// greenTransportModes are the transport modes that earn TransportOptimizer.
//
//nolint:gochecknoglobals // Constant lookup table.
var greenTransportModes = map[string]bool{
	"Bicycle/Walk":     true,
	"Metro/Train":      true,
	"Electric Vehicle": true,
}

// plantDiets are the diet types that earn Vegetarian.
//
//nolint:gochecknoglobals // Constant lookup table.
var plantDiets = map[string]bool{
	"Vegetarian": true,
	"Vegan":      true,
}

// All returns every badge ID in display order.
func All() []ID {
	return []ID{
		FirstCalculation, Under3Tonnes, Under2Tonnes, TenCalculations,
		ImprovingTrend, TransportOptimizer, Vegetarian, Recycler,
	}
}

// Lookup returns the display metadata for a badge.
func Lookup(id ID) (Metadata, bool) {
	m, ok := registry[id]
	return m, ok
}

// Evaluate returns the badges earned for the latest calculation and the
// statistics snapshot, in display order. Each rule is checked
// independently; any subset may fire. A nil latest skips the rules that
// depend on the latest calculation (they fail, never default to earned).
func Evaluate(latest *store.Calculation, s stats.Statistics) []ID {
	var earned []ID

	if s.TotalCalculations >= 1 {
		earned = append(earned, FirstCalculation)
	}

	if latest != nil && latest.Total < under3Threshold {
		earned = append(earned, Under3Tonnes)
	}

	if latest != nil && latest.Total < under2Threshold {
		earned = append(earned, Under2Tonnes)
	}

	if s.TotalCalculations >= trackerCalculations {
		earned = append(earned, TenCalculations)
	}

	if s.Trend == stats.TrendImproving {
		earned = append(earned, ImprovingTrend)
	}

	if latest != nil && greenTransportModes[latest.TransportMode] {
		earned = append(earned, TransportOptimizer)
	}

	if latest != nil && plantDiets[latest.DietType] {
		earned = append(earned, Vegetarian)
	}

	if latest != nil && latest.RecyclingPercent >= recyclerMinPercent {
		earned = append(earned, Recycler)
	}

	return earned
}

// Progress describes how close the user is to an unearned badge.
type Progress struct {
	Badge   ID     `json:"badge"`
	Message string `json:"message"`
	// Percent is completion toward the badge where a meaningful ratio
	// exists, otherwise 0.
	Percent float64 `json:"percent"`
}

// NextBadgeProgress reports progress hints for the tracker and
// climate-champion badges when they are not yet earned, mirroring the
// achievements display of the app.
func NextBadgeProgress(latest *store.Calculation, s stats.Statistics, earned []ID) []Progress {
	earnedSet := make(map[ID]bool, len(earned))
	for _, id := range earned {
		earnedSet[id] = true
	}

	var hints []Progress

	if !earnedSet[TenCalculations] {
		percent := float64(s.TotalCalculations) / float64(trackerCalculations) * 100
		if percent > 100 {
			percent = 100
		}
		hints = append(hints, Progress{
			Badge:   TenCalculations,
			Message: progressMessage(s.TotalCalculations),
			Percent: percent,
		})
	}

	if !earnedSet[Under2Tonnes] && latest != nil && latest.Total > under2Threshold {
		reduction := latest.Total - under2Threshold
		hints = append(hints, Progress{
			Badge:   Under2Tonnes,
			Message: reductionMessage(reduction),
		})
	}

	return hints
}
