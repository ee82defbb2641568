package util

import (
	"strings"
	"testing"
)

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  int
		wantError bool
	}{
		// Integer minutes
		{
			name:     "integer minutes - 25",
			input:    "25",
			expected: 25,
		},
		{
			name:     "integer minutes - 0",
			input:    "0",
			expected: 0,
		},
		{
			name:     "integer minutes - surrounding spaces",
			input:    " 15 ",
			expected: 15,
		},

		// Duration strings
		{
			name:     "duration string - hours only",
			input:    "1h",
			expected: 60,
		},
		{
			name:     "duration string - minutes only",
			input:    "45m",
			expected: 45,
		},
		{
			name:     "duration string - hours and minutes",
			input:    "1h30m",
			expected: 90,
		},
		{
			name:     "duration string - seconds are truncated",
			input:    "10m59s",
			expected: 10,
		},

		// Error cases
		{
			name:      "negative minutes",
			input:     "-5",
			wantError: true,
		},
		{
			name:      "negative duration",
			input:     "-5m",
			wantError: true,
		},
		{
			name:      "invalid format - letters",
			input:     "abc",
			wantError: true,
		},
		{
			name:      "empty string",
			input:     "",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMinutes(tt.input)

			if tt.wantError {
				if err == nil {
					t.Errorf("ParseMinutes(%q) expected error but got none", tt.input)
				}
				if err != nil && !strings.Contains(err.Error(), "Valid formats") {
					t.Errorf("ParseMinutes(%q) error should contain format help, got: %v", tt.input, err)
				}
				return
			}

			if err != nil {
				t.Errorf("ParseMinutes(%q) unexpected error: %v", tt.input, err)
				return
			}

			if got != tt.expected {
				t.Errorf("ParseMinutes(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}
