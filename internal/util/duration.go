package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseMinutes parses a slider selection given either as a plain number of
// minutes ("25") or as a Go duration ("1h30m"). Durations are truncated to
// whole minutes.
func ParseMinutes(input string) (int, error) {
	input = strings.TrimSpace(input)

	if minutes, err := strconv.Atoi(input); err == nil {
		if minutes < 0 {
			return 0, invalidMinutes(input)
		}
		return minutes, nil
	}

	d, err := time.ParseDuration(input)
	if err != nil || d < 0 {
		return 0, invalidMinutes(input)
	}
	return int(d / time.Minute), nil
}

func invalidMinutes(input string) error {
	return fmt.Errorf("invalid duration format: %s\n\nValid formats:\n"+
		"• Minutes: a whole number (e.g., '25')\n"+
		"• Duration: Go duration string (e.g., '1h30m', '45m')", input)
}
