package badges

import (
	"fmt"
	"math"
)

// progressMessage renders the tracker badge hint.
func progressMessage(count int) string {
	return fmt.Sprintf("%d/%d calculations completed", count, trackerCalculations)
}

// reductionMessage renders the climate-champion badge hint.
func reductionMessage(tonnes float64) string {
	return fmt.Sprintf("Reduce by %.2f tonnes to reach under %g tonnes",
		math.Round(tonnes*100)/100, under2Threshold)
}
