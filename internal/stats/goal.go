package stats

import "github.com/rshade/carbontrack/internal/store"

// GoalProgress reports how the latest footprint tracks against the active
// reduction goal.
type GoalProgress struct {
	// Achieved is true when the latest total is at or below the target.
	Achieved bool `json:"achieved"`
	// Percent is progress toward the target, clamped to 0-100.
	Percent float64 `json:"percent"`
	// RemainingTonnes is how far above the target the latest total is,
	// 0 when achieved.
	RemainingTonnes float64 `json:"remaining_tonnes"`
}

// ComputeGoalProgress evaluates the latest annual total against a goal.
// With a zero or negative latest total, progress is reported as zero
// unless the goal is already met.
func ComputeGoalProgress(latestTotal float64, g store.Goal) GoalProgress {
	if latestTotal <= g.TargetEmissions {
		return GoalProgress{Achieved: true, Percent: 100}
	}

	percent := 0.0
	if latestTotal > 0 {
		percent = (1 - (latestTotal-g.TargetEmissions)/latestTotal) * 100
		if percent < 0 {
			percent = 0
		}
		if percent > 100 {
			percent = 100
		}
	}

	return GoalProgress{
		Percent:         round2(percent),
		RemainingTonnes: round2(latestTotal - g.TargetEmissions),
	}
}
