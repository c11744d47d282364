package domain

import (
	"strconv"
	"strings"
	"time"
)

// ISODateLayout is the layout of dates in share links and statistics.
const ISODateLayout = "2006-01-02"

// timestampLayouts are the accepted change-log timestamp formats, most
// common first.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	ISODateLayout,
}

// ParseDate parses a record date in day-month-year order ("24.01.2025").
// Dots, dashes and slashes are accepted as separators.
// It returns false for empty, malformed or impossible dates; callers
// treat such records as having no date.
func ParseDate(text string) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}

	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '-' || r == '/'
	})
	if len(parts) != 3 || len(parts[0]) > 2 || len(parts[1]) > 2 || len(parts[2]) != 4 {
		return time.Time{}, false
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, false
	}

	return calendarDate(year, month, day)
}

// ParseISODate parses a "YYYY-MM-DD" date as used in share links.
func ParseISODate(text string) (time.Time, bool) {
	t, err := time.Parse(ISODateLayout, strings.TrimSpace(text))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatISODate formats t as "YYYY-MM-DD". The zero time formats as "".
func FormatISODate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(ISODateLayout)
}

// ParseTimestamp parses a change-log timestamp.
func ParseTimestamp(text string) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// calendarDate builds a UTC midnight date, rejecting values that
// time.Date would silently normalise (31.02 -> 03.03).
func calendarDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 || year < 1 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, false
	}
	return t, true
}
