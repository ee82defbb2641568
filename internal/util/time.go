package util

import (
	"fmt"
	"time"
)

// SplitRemaining converts a remaining duration into whole minutes and the
// leftover seconds. Sub-second remainders are dropped.
func SplitRemaining(remaining time.Duration) (minutes, seconds int64) {
	if remaining < 0 {
		remaining = 0
	}
	total := remaining.Milliseconds() / 1000
	return total / 60, total % 60
}

// RemainingLabels returns the minutes and seconds labels for a remaining
// duration, e.g. "04'" and "07".
func RemainingLabels(remaining time.Duration) (string, string) {
	minutes, seconds := SplitRemaining(remaining)
	return fmt.Sprintf("%02d'", minutes), fmt.Sprintf("%02d", seconds)
}

// WholeMinutes returns the slider position for a remaining duration.
func WholeMinutes(remaining time.Duration) int {
	if remaining < 0 {
		return 0
	}
	return int(remaining.Milliseconds() / 1000 / 60)
}

// MinutesToDuration converts a slider selection to a countdown duration.
func MinutesToDuration(minutes int) time.Duration {
	return time.Duration(minutes) * 60 * 1000 * time.Millisecond
}
