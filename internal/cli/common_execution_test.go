package cli_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rshade/carbontrack/internal/cli"
	"github.com/rshade/carbontrack/internal/config"
)

// setupCLITest isolates the app directory in a temp dir and writes the
// starter factors dataset there so calculation commands can resolve
// factors without flags.
func setupCLITest(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("CARBONTRACK_HOME", home)

	factorsPath := filepath.Join(home, config.DefaultFactorsFileName)
	require.NoError(t, config.WriteFactorTable(factorsPath, config.DefaultFactorTable()))

	return home
}

// executeCommand runs the root command with args and returns combined
// output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

// mustExecute runs the root command and fails the test on error.
func mustExecute(t *testing.T, args ...string) string {
	t.Helper()

	out, err := executeCommand(t, args...)
	require.NoError(t, err, "command %v failed: %s", args, out)
	return out
}
