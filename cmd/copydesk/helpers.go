package main

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"copydesk/internal/store"
	"copydesk/internal/workflow"
)

const displayTimeLayout = "2006-01-02 15:04"

// parseStartDate accepts a date ("2006-01-02") or a full RFC 3339 timestamp.
// Bare dates are anchored at 09:00 local time.
func parseStartDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: start date is required", workflow.ErrInvalidStartDate)
	}
	if when, err := time.Parse(time.RFC3339, value); err == nil {
		return when, nil
	}
	if day, err := time.ParseInLocation("2006-01-02", value, time.Local); err == nil {
		return day.Add(9 * time.Hour), nil
	}
	return time.Time{}, fmt.Errorf("%w: cannot parse %q (want YYYY-MM-DD or RFC 3339)", workflow.ErrInvalidStartDate, value)
}

func formatTime(when *time.Time) string {
	if when == nil {
		return "-"
	}
	return when.Local().Format(displayTimeLayout)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// truncate shortens value to max runes, never cutting inside a multi-byte
// character.
func truncate(value string, max int) string {
	if max <= 1 || utf8.RuneCountInString(value) <= max {
		return value
	}
	runes := []rune(value)
	return string(runes[:max-1]) + "…"
}

func itemRow(item *store.Item, author string) []string {
	return []string{
		shortID(item.ID),
		string(item.Kind),
		truncate(item.Title, 48),
		string(item.Status),
		author,
		formatTime(item.ScheduledFor),
	}
}
