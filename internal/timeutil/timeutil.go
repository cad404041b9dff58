// Package timeutil converts clock strings and timezone-bearing instants
// into a single minute-based coordinate space. Booking times always render
// as the restaurant's local clock, so instants are read in their own
// embedded offset and never converted to the host zone.
package timeutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// minutesPerDay is the size of the circular day coordinate space.
const minutesPerDay = 24 * 60

// ErrFormat reports malformed clock or date text.
var ErrFormat = errors.New("invalid time format")

// ClockToMinutes parses "HH:mm" into minutes since midnight.
func ClockToMinutes(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return 0, fmt.Errorf("%w: %q", ErrFormat, s)
	}

	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, fmt.Errorf("%w: hour in %q", ErrFormat, s)
	}

	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, fmt.Errorf("%w: minute in %q", ErrFormat, s)
	}

	return hour*60 + minute, nil
}

// ClockToMinutesOrZero parses "HH:mm", defaulting to 0 on malformed input.
// Callers rendering a schedule grid prefer a degenerate window over a crash.
func ClockToMinutesOrZero(s string) int {
	m, err := ClockToMinutes(s)
	if err != nil {
		return 0
	}
	return m
}

// InstantMinuteOfDay returns the minute of day of an ISO-8601 instant,
// read in the instant's own embedded offset.
func InstantMinuteOfDay(iso string) (int, error) {
	t, err := parseInstant(iso)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// InstantDate returns the calendar date "YYYY-MM-DD" of an ISO-8601
// instant, read in the instant's own embedded offset.
func InstantDate(iso string) (string, error) {
	t, err := parseInstant(iso)
	if err != nil {
		return "", err
	}
	return t.Format("2006-01-02"), nil
}

func parseInstant(iso string) (time.Time, error) {
	// time.Parse keeps the offset from the input, so Hour/Minute below
	// are in the instant's embedded zone rather than the host's.
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrFormat, iso)
	}
	return t, nil
}

// WindowDuration returns closeMin - openMin, adding a full day when the
// operating window crosses midnight.
func WindowDuration(openMin, closeMin int) int {
	diff := closeMin - openMin
	if diff < 0 {
		diff += minutesPerDay
	}
	return diff
}

// MinutesToClock formats minutes since midnight as zero-padded "HH:mm".
// Values outside 0-1439 are the caller's responsibility to normalize.
func MinutesToClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
