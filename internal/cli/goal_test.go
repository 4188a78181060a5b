package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoal_SetShowClear(t *testing.T) {
	setupCLITest(t)

	out := mustExecute(t, "goal", "set", "--target", "3.5", "--date", "2027-01-01")
	assert.Contains(t, out, "Goal set: 3.50 tonnes by 2027-01-01")

	out = mustExecute(t, "goal", "show")
	assert.Contains(t, out, "Active goal: 3.50 tonnes by 2027-01-01")
	assert.Contains(t, out, "No calculations yet")

	out = mustExecute(t, "goal", "clear")
	assert.Contains(t, out, "Goal cleared.")

	out = mustExecute(t, "goal", "show")
	assert.Contains(t, out, "No active goal")
}

func TestGoalSet_ReplacesPriorGoal(t *testing.T) {
	setupCLITest(t)

	mustExecute(t, "goal", "set", "--target", "3.5", "--date", "2027-01-01")
	mustExecute(t, "goal", "set", "--target", "2.0", "--date", "2028-06-30")

	out := mustExecute(t, "goal", "show")
	assert.Contains(t, out, "2.00 tonnes by 2028-06-30")
	assert.NotContains(t, out, "3.50")
}

func TestGoalSet_RejectsBadDate(t *testing.T) {
	setupCLITest(t)

	_, err := executeCommand(t, "goal", "set", "--target", "3.5", "--date", "next year")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
}

func TestGoalSet_RejectsNegativeTarget(t *testing.T) {
	setupCLITest(t)

	_, err := executeCommand(t, "goal", "set", "--target", "-1", "--date", "2027-01-01")
	assert.Error(t, err)
}

func TestGoalShow_ProgressAgainstLatestCalculation(t *testing.T) {
	setupCLITest(t)

	mustExecute(t, calculateArgs...) // total 4.56
	mustExecute(t, "goal", "set", "--target", "3.0", "--date", "2027-01-01")

	out := mustExecute(t, "goal", "show")
	assert.Contains(t, out, "Goal progress:")
	assert.Contains(t, out, "1.56 tonnes to go")
}

func TestGoalShow_AchievedGoal(t *testing.T) {
	setupCLITest(t)

	mustExecute(t, calculateArgs...) // total 4.56
	mustExecute(t, "goal", "set", "--target", "5.0", "--date", "2027-01-01")

	out := mustExecute(t, "goal", "show")
	assert.Contains(t, out, "Goal achieved!")
}
