package footprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbontrack/internal/config"
)

// testFactors returns the starter India dataset used across the package
// tests.
func testFactors() config.FactorTable {
	return config.DefaultFactorTable()
}

func TestCompute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name               string
		input              Input
		wantTransportation float64
		wantElectricity    float64
		wantDiet           float64
		wantWaste          float64
		wantTotal          float64
		wantErr            bool
		errType            error
	}{
		{
			// 0.192*5200/1000=0.9984, 0.82*1200/1000=0.984, 2500/1000=2.5,
			// 0.57*130/1000=0.0741; total rounds once from 4.5565.
			name: "reference values",
			input: Input{
				Country:               "India",
				TransportMode:         "Car (Petrol)",
				DailyDistanceKm:       10,
				MonthlyElectricityKwh: 100,
				DietType:              "Medium Meat Eater",
				WeeklyWasteKg:         5,
				RecyclingPercent:      50,
			},
			wantTransportation: 1.0,
			wantElectricity:    0.98,
			wantDiet:           2.5,
			wantWaste:          0.07,
			wantTotal:          4.56,
		},
		{
			name: "zero inputs yield diet only",
			input: Input{
				Country:       "India",
				TransportMode: "Bicycle/Walk",
				DietType:      "Vegan",
			},
			wantTransportation: 0,
			wantElectricity:    0,
			wantDiet:           1.5,
			wantWaste:          0,
			wantTotal:          1.5,
		},
		{
			name: "full recycling removes waste emissions",
			input: Input{
				Country:          "India",
				TransportMode:    "Bus",
				DietType:         "Vegetarian",
				WeeklyWasteKg:    10,
				RecyclingPercent: 100,
			},
			wantTransportation: 0,
			wantElectricity:    0,
			wantDiet:           1.7,
			wantWaste:          0,
			wantTotal:          1.7,
		},
		{
			name: "unknown country",
			input: Input{
				Country:       "Atlantis",
				TransportMode: "Bus",
				DietType:      "Vegan",
			},
			wantErr: true,
			errType: ErrUnknownCountry,
		},
		{
			name: "unknown transport mode",
			input: Input{
				Country:       "India",
				TransportMode: "Teleporter",
				DietType:      "Vegan",
			},
			wantErr: true,
			errType: ErrUnknownTransportMode,
		},
		{
			name: "unknown diet type",
			input: Input{
				Country:       "India",
				TransportMode: "Bus",
				DietType:      "Fruitarian",
			},
			wantErr: true,
			errType: ErrUnknownDietType,
		},
		{
			name: "negative distance",
			input: Input{
				Country:         "India",
				TransportMode:   "Bus",
				DietType:        "Vegan",
				DailyDistanceKm: -1,
			},
			wantErr: true,
			errType: ErrNegativeInput,
		},
		{
			name: "negative electricity",
			input: Input{
				Country:               "India",
				TransportMode:         "Bus",
				DietType:              "Vegan",
				MonthlyElectricityKwh: -0.5,
			},
			wantErr: true,
			errType: ErrNegativeInput,
		},
		{
			name: "negative waste",
			input: Input{
				Country:       "India",
				TransportMode: "Bus",
				DietType:      "Vegan",
				WeeklyWasteKg: -2,
			},
			wantErr: true,
			errType: ErrNegativeInput,
		},
		{
			name: "recycling above 100",
			input: Input{
				Country:          "India",
				TransportMode:    "Bus",
				DietType:         "Vegan",
				RecyclingPercent: 101,
			},
			wantErr: true,
			errType: ErrRecyclingOutOfRange,
		},
		{
			name: "recycling below 0",
			input: Input{
				Country:          "India",
				TransportMode:    "Bus",
				DietType:         "Vegan",
				RecyclingPercent: -1,
			},
			wantErr: true,
			errType: ErrRecyclingOutOfRange,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Compute(tt.input, testFactors())

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.errType)
				return
			}

			require.NoError(t, err)
			assert.InDelta(t, tt.wantTransportation, got.Transportation, 0.001)
			assert.InDelta(t, tt.wantElectricity, got.Electricity, 0.001)
			assert.InDelta(t, tt.wantDiet, got.Diet, 0.001)
			assert.InDelta(t, tt.wantWaste, got.Waste, 0.001)
			assert.InDelta(t, tt.wantTotal, got.Total, 0.001)
		})
	}
}

// The total is rounded once from unrounded components, so it can differ
// from the sum of the independently rounded category values by up to 0.02.
func TestComputeTotalRoundsOnce(t *testing.T) {
	t.Parallel()

	input := Input{
		Country:               "India",
		TransportMode:         "Car (Petrol)",
		DailyDistanceKm:       10,
		MonthlyElectricityKwh: 100,
		DietType:              "Medium Meat Eater",
		WeeklyWasteKg:         5,
		RecyclingPercent:      50,
	}

	got, err := Compute(input, testFactors())
	require.NoError(t, err)

	// Unrounded components: 0.9984 + 0.984 + 2.5 + 0.0741 = 4.5565 -> 4.56.
	// Rounded components: 1.0 + 0.98 + 2.5 + 0.07 = 4.55.
	assert.InDelta(t, 4.56, got.Total, 0.0001)
	roundedSum := got.Transportation + got.Electricity + got.Diet + got.Waste
	assert.InDelta(t, 4.55, roundedSum, 0.0001)
}

func TestHighestCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		breakdown Breakdown
		want      string
	}{
		{"transport dominates", Breakdown{Transportation: 3, Electricity: 1, Diet: 2, Waste: 0.5}, CategoryTransportation},
		{"electricity dominates", Breakdown{Transportation: 1, Electricity: 4, Diet: 2, Waste: 0.5}, CategoryElectricity},
		{"diet dominates", Breakdown{Transportation: 1, Electricity: 1, Diet: 2.5, Waste: 0.5}, CategoryDiet},
		{"waste dominates", Breakdown{Transportation: 1, Electricity: 1, Diet: 2, Waste: 5}, CategoryWaste},
		{"all zero picks transportation", Breakdown{}, CategoryTransportation},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, HighestCategory(tt.breakdown))
		})
	}
}

func TestRound2(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1.0, Round2(0.9984), 0.0001)
	assert.InDelta(t, 0.98, Round2(0.984), 0.0001)
	assert.InDelta(t, 0.07, Round2(0.0741), 0.0001)
	assert.InDelta(t, 4.56, Round2(4.5565), 0.0001)
}
