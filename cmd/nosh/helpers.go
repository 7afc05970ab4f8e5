// ABOUTME: Shared CLI helpers for timestamp parsing and output formatting.
// ABOUTME: Used across the log, list, today, and range commands.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/nosh/internal/models"
)

// parseTime parses user-supplied timestamps in several common layouts.
func parseTime(s string) (time.Time, error) {
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04",
		"2006-01-02 15:04",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format: %s", s)
}

// parseDate validates a YYYY-MM-DD date string.
func parseDate(s string) (string, error) {
	if _, err := time.Parse(models.DateLayout, s); err != nil {
		return "", fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return s, nil
}

// today returns the current date as a partition key.
func today() string {
	return time.Now().UTC().Format(models.DateLayout)
}

// shortID abbreviates an entry ID for display.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
