package badges

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbontrack/internal/stats"
	"github.com/rshade/carbontrack/internal/store"
)

func TestEvaluate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		latest *store.Calculation
		stats  stats.Statistics
		want   []ID
	}{
		{
			name:   "no history earns nothing",
			latest: nil,
			stats:  stats.Statistics{Trend: stats.TrendNeutral},
			want:   nil,
		},
		{
			name:   "first calculation",
			latest: &store.Calculation{Total: 4.56, TransportMode: "Car (Petrol)", DietType: "Medium Meat Eater"},
			stats:  stats.Statistics{TotalCalculations: 1, Trend: stats.TrendNeutral},
			want:   []ID{FirstCalculation},
		},
		{
			name:   "under 3 tonnes",
			latest: &store.Calculation{Total: 2.9, TransportMode: "Bus", DietType: "Medium Meat Eater"},
			stats:  stats.Statistics{TotalCalculations: 1, Trend: stats.TrendNeutral},
			want:   []ID{FirstCalculation, Under3Tonnes},
		},
		{
			name:   "under 2 tonnes implies under 3",
			latest: &store.Calculation{Total: 1.8, TransportMode: "Bus", DietType: "Medium Meat Eater"},
			stats:  stats.Statistics{TotalCalculations: 1, Trend: stats.TrendNeutral},
			want:   []ID{FirstCalculation, Under3Tonnes, Under2Tonnes},
		},
		{
			name:   "exactly 3 tonnes does not earn",
			latest: &store.Calculation{Total: 3.0, TransportMode: "Bus", DietType: "Medium Meat Eater"},
			stats:  stats.Statistics{TotalCalculations: 1, Trend: stats.TrendNeutral},
			want:   []ID{FirstCalculation},
		},
		{
			name:   "ten calculations",
			latest: &store.Calculation{Total: 4.56, TransportMode: "Bus", DietType: "Medium Meat Eater"},
			stats:  stats.Statistics{TotalCalculations: 10, Trend: stats.TrendNeutral},
			want:   []ID{FirstCalculation, TenCalculations},
		},
		{
			name:   "improving trend",
			latest: &store.Calculation{Total: 4.56, TransportMode: "Bus", DietType: "Medium Meat Eater"},
			stats:  stats.Statistics{TotalCalculations: 3, Trend: stats.TrendImproving},
			want:   []ID{FirstCalculation, ImprovingTrend},
		},
		{
			name:   "green transport",
			latest: &store.Calculation{Total: 4.56, TransportMode: "Metro/Train", DietType: "Medium Meat Eater"},
			stats:  stats.Statistics{TotalCalculations: 1, Trend: stats.TrendNeutral},
			want:   []ID{FirstCalculation, TransportOptimizer},
		},
		{
			name:   "plant based diet",
			latest: &store.Calculation{Total: 4.56, TransportMode: "Bus", DietType: "Vegan"},
			stats:  stats.Statistics{TotalCalculations: 1, Trend: stats.TrendNeutral},
			want:   []ID{FirstCalculation, Vegetarian},
		},
		{
			name:   "recycler at threshold",
			latest: &store.Calculation{Total: 4.56, TransportMode: "Bus", DietType: "Medium Meat Eater", RecyclingPercent: 70},
			stats:  stats.Statistics{TotalCalculations: 1, Trend: stats.TrendNeutral},
			want:   []ID{FirstCalculation, Recycler},
		},
		{
			name:   "recycler below threshold does not earn",
			latest: &store.Calculation{Total: 4.56, TransportMode: "Bus", DietType: "Medium Meat Eater", RecyclingPercent: 69},
			stats:  stats.Statistics{TotalCalculations: 1, Trend: stats.TrendNeutral},
			want:   []ID{FirstCalculation},
		},
		{
			name: "everything at once",
			latest: &store.Calculation{
				Total:            1.5,
				TransportMode:    "Bicycle/Walk",
				DietType:         "Vegetarian",
				RecyclingPercent: 90,
			},
			stats: stats.Statistics{TotalCalculations: 12, Trend: stats.TrendImproving},
			want: []ID{
				FirstCalculation, Under3Tonnes, Under2Tonnes, TenCalculations,
				ImprovingTrend, TransportOptimizer, Vegetarian, Recycler,
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Evaluate(tt.latest, tt.stats))
		})
	}
}

func TestEvaluateNilLatestSkipsLatestRules(t *testing.T) {
	t.Parallel()

	// Count-based badges still fire without a latest calculation.
	got := Evaluate(nil, stats.Statistics{TotalCalculations: 10, Trend: stats.TrendImproving})
	assert.Equal(t, []ID{FirstCalculation, TenCalculations, ImprovingTrend}, got)
}

func TestAllHaveMetadata(t *testing.T) {
	t.Parallel()

	for _, id := range All() {
		m, ok := Lookup(id)
		require.True(t, ok, "badge %s missing metadata", id)
		assert.NotEmpty(t, m.Icon)
		assert.NotEmpty(t, m.Title)
		assert.NotEmpty(t, m.Description)
	}

	_, ok := Lookup(ID("nonexistent"))
	assert.False(t, ok)
}

func TestNextBadgeProgress(t *testing.T) {
	t.Parallel()

	t.Run("tracker progress", func(t *testing.T) {
		t.Parallel()

		latest := &store.Calculation{Total: 1.5}
		s := stats.Statistics{TotalCalculations: 4}
		earned := []ID{FirstCalculation, Under3Tonnes, Under2Tonnes}

		hints := NextBadgeProgress(latest, s, earned)
		require.Len(t, hints, 1)
		assert.Equal(t, TenCalculations, hints[0].Badge)
		assert.InDelta(t, 40, hints[0].Percent, 0.001)
		assert.NotEmpty(t, hints[0].Message)
	})

	t.Run("reduction hint when above two tonnes", func(t *testing.T) {
		t.Parallel()

		latest := &store.Calculation{Total: 4.5}
		s := stats.Statistics{TotalCalculations: 10}
		earned := []ID{FirstCalculation, TenCalculations}

		hints := NextBadgeProgress(latest, s, earned)
		require.Len(t, hints, 1)
		assert.Equal(t, Under2Tonnes, hints[0].Badge)
		assert.NotEmpty(t, hints[0].Message)
	})

	t.Run("no hints when both earned", func(t *testing.T) {
		t.Parallel()

		latest := &store.Calculation{Total: 1.5}
		s := stats.Statistics{TotalCalculations: 10}
		earned := []ID{FirstCalculation, Under2Tonnes, TenCalculations}

		assert.Empty(t, NextBadgeProgress(latest, s, earned))
	})
}
