package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings_ShowEmpty(t *testing.T) {
	setupCLITest(t)

	out := mustExecute(t, "settings", "show")
	assert.Contains(t, out, "No settings stored.")
}

func TestSettings_SetAndShow(t *testing.T) {
	setupCLITest(t)

	out := mustExecute(t, "settings", "set", "units=metric", "default_country=India")
	assert.Contains(t, out, "Updated 2 setting(s).")

	out = mustExecute(t, "settings", "show")
	assert.Contains(t, out, "default_country = India")
	assert.Contains(t, out, "units = metric")
}

func TestSettings_SetMergesWithExisting(t *testing.T) {
	setupCLITest(t)

	mustExecute(t, "settings", "set", "units=metric")
	mustExecute(t, "settings", "set", "units=imperial", "theme=dark")

	out := mustExecute(t, "settings", "show")
	assert.Contains(t, out, "units = imperial")
	assert.Contains(t, out, "theme = dark")
}

func TestSettings_SetRejectsMalformedPair(t *testing.T) {
	setupCLITest(t)

	_, err := executeCommand(t, "settings", "set", "no-equals-sign")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected key=value")
}
