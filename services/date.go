package services

import (
	"escritorio_app_go/models"
	"fmt"
	"strings"
	"time"
)

// fallbackDateLayouts are accepted when reading dates written by other tools
// (spreadsheet editors tend to append a time component).
var fallbackDateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"02/01/2006",
}

// ParseDate parses a date string in the ledger format (YYYY-MM-DD)
func ParseDate(dateStr string) (time.Time, error) {
	parsedTime, err := time.Parse(models.DateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: expected YYYY-MM-DD")
	}

	return parsedTime, nil
}

// ParseStoredDate parses a date read from the backing file. Besides the
// ledger format it accepts a few layouts spreadsheet editors produce; the
// result is truncated to the calendar day in UTC.
func ParseStoredDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if t, err := ParseDate(dateStr); err == nil {
		return t, nil
	}
	for _, layout := range fallbackDateLayouts {
		if t, err := time.Parse(layout, dateStr); err == nil {
			return DateOnly(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", dateStr)
}

// DateOnly drops the clock part of t, keeping its calendar day
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders t in the ledger format
func FormatDate(t time.Time) string {
	return t.Format(models.DateLayout)
}
