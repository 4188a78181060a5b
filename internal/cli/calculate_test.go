package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbontrack/internal/config"
)

var calculateArgs = []string{
	"calculate",
	"--country", "India",
	"--transport", "Car (Petrol)",
	"--distance", "10",
	"--electricity", "100",
	"--diet", "Medium Meat Eater",
	"--waste", "5",
	"--recycling", "50",
}

func TestCalculate_SavesAndRendersBreakdown(t *testing.T) {
	home := setupCLITest(t)

	out := mustExecute(t, calculateArgs...)

	assert.Contains(t, out, "4.56")
	assert.Contains(t, out, "Transportation")
	assert.Contains(t, out, "(4,560 kg CO2e per year)")
	assert.Contains(t, out, "Largest contributor: Diet")
	assert.Contains(t, out, "India average: 1.9 tonnes")
	assert.Contains(t, out, "Badges earned: First Step")

	// The calculation landed in the history document.
	historyPath := filepath.Join(home, config.DefaultHistoryFileName)
	data, err := os.ReadFile(historyPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"total_emissions": 4.56`)
}

func TestCalculate_NoSaveSkipsHistory(t *testing.T) {
	home := setupCLITest(t)

	args := append(append([]string{}, calculateArgs...), "--no-save")
	out := mustExecute(t, args...)

	assert.Contains(t, out, "4.56")
	assert.NotContains(t, out, "Badges earned")

	_, err := os.Stat(filepath.Join(home, config.DefaultHistoryFileName))
	assert.True(t, os.IsNotExist(err), "history file should not be created with --no-save")
}

func TestCalculate_UnknownCountryFails(t *testing.T) {
	setupCLITest(t)

	args := []string{
		"calculate",
		"--country", "Atlantis",
		"--transport", "Bus",
		"--diet", "Vegan",
	}
	out, err := executeCommand(t, args...)
	require.Error(t, err)
	assert.Contains(t, out, "unknown country")
}

func TestCalculate_InvalidRecyclingFails(t *testing.T) {
	setupCLITest(t)

	args := []string{
		"calculate",
		"--country", "India",
		"--transport", "Bus",
		"--diet", "Vegan",
		"--recycling", "150",
	}
	_, err := executeCommand(t, args...)
	assert.Error(t, err)
}

func TestCalculate_MissingFactorsFileFails(t *testing.T) {
	home := setupCLITest(t)
	require.NoError(t, os.Remove(filepath.Join(home, config.DefaultFactorsFileName)))

	out, err := executeCommand(t, calculateArgs...)
	require.Error(t, err)
	assert.Contains(t, out, "factors file not found")
}

func TestCalculate_FactorsFileFlagOverride(t *testing.T) {
	setupCLITest(t)

	// A dedicated factors file via flag, independent of the app dir.
	altPath := filepath.Join(t.TempDir(), "alt-factors.yaml")
	require.NoError(t, config.WriteFactorTable(altPath, config.DefaultFactorTable()))

	args := append(append([]string{}, calculateArgs...), "--factors-file", altPath)
	out := mustExecute(t, args...)
	assert.Contains(t, out, "4.56")
}
