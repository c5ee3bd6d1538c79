// Package params extracts typed parameters from utterances: relative dates,
// assignees, titles, and enum values keyed off classified concepts.
package params

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

var weekdayRe = regexp.MustCompile(`\b(sunday|monday|tuesday|wednesday|thursday|friday|saturday)\b`)

// ParseDate resolves a natural date expression against the supplied clock.
// Recognized forms, in order:
//
//   - "today", "tomorrow"
//   - "next week" (+7 days), "next month" (+1 month)
//   - a weekday name: the next future occurrence, never today
//   - anything a general calendar parse accepts ("2026-09-04", "Sep 4")
//
// The result is truncated to midnight in now's location. Unparseable input
// returns ok=false; it is never an error.
func ParseDate(s string, now time.Time) (time.Time, bool) {
	lower := strings.ToLower(strings.TrimSpace(s))
	if lower == "" {
		return time.Time{}, false
	}

	today := midnight(now)

	switch {
	case lower == "today":
		return today, true
	case lower == "tomorrow":
		return today.AddDate(0, 0, 1), true
	case strings.Contains(lower, "next week"):
		return today.AddDate(0, 0, 7), true
	case strings.Contains(lower, "next month"):
		return today.AddDate(0, 1, 0), true
	}

	if m := weekdayRe.FindString(lower); m != "" {
		target := weekdays[m]
		until := int(target - now.Weekday())
		if until <= 0 {
			until += 7
		}
		return today.AddDate(0, 0, until), true
	}

	parsed, err := dateparse.ParseIn(s, now.Location())
	if err != nil {
		return time.Time{}, false
	}
	return midnight(parsed), true
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
