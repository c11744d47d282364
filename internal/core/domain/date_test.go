package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
		ok    bool
	}{
		{"dotted", "24.01.2025", time.Date(2025, 1, 24, 0, 0, 0, 0, time.UTC), true},
		{"single digits", "1.2.2024", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), true},
		{"dashes", "01-02-2024", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), true},
		{"slashes", "31/12/2023", time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), true},
		{"surrounding space", "  15.01.2024 ", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), true},
		{"leap day", "29.02.2024", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), true},
		{"empty", "", time.Time{}, false},
		{"blank", "   ", time.Time{}, false},
		{"month out of range", "01.13.2024", time.Time{}, false},
		{"month zero", "01.00.2024", time.Time{}, false},
		{"day beyond month", "31.02.2024", time.Time{}, false},
		{"not a leap year", "29.02.2023", time.Time{}, false},
		{"day zero", "00.01.2024", time.Time{}, false},
		{"iso order", "2024-01-15", time.Time{}, false},
		{"two digit year", "15.01.24", time.Time{}, false},
		{"letters", "ab.cd.efgh", time.Time{}, false},
		{"missing part", "15.01", time.Time{}, false},
		{"extra part", "15.01.2024.1", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.True(t, tt.want.Equal(got), "got %v, want %v", got, tt.want)
		})
	}
}

func TestParseISODate(t *testing.T) {
	got, ok := ParseISODate("2024-03-05")
	assert.True(t, ok)
	assert.Equal(t, "2024-03-05", FormatISODate(got))

	_, ok = ParseISODate("05.03.2024")
	assert.False(t, ok)

	_, ok = ParseISODate("")
	assert.False(t, ok)
}

func TestFormatISODate_Zero(t *testing.T) {
	assert.Equal(t, "", FormatISODate(time.Time{}))
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
		ok    bool
	}{
		{"2025-01-24 06:00:12", time.Date(2025, 1, 24, 6, 0, 12, 0, time.UTC), true},
		{"2025-01-24T06:00:12Z", time.Date(2025, 1, 24, 6, 0, 12, 0, time.UTC), true},
		{"2025-01-24T06:00:12", time.Date(2025, 1, 24, 6, 0, 12, 0, time.UTC), true},
		{"2025-01-24", time.Date(2025, 1, 24, 0, 0, 0, 0, time.UTC), true},
		{"yesterday", time.Time{}, false},
		{"", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseTimestamp(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.True(t, tt.want.Equal(got))
		})
	}
}
