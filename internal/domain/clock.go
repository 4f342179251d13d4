package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay is the modulus for wall clock arithmetic.
const MinutesPerDay = 24 * 60

// ClockTime is a wall clock time of day in "HH:MM" form. All scheduling
// arithmetic wraps at midnight.
type ClockTime string

// Minutes parses the clock time into minutes since midnight.
func (c ClockTime) Minutes() (int, error) {
	parts := strings.SplitN(string(c), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q", string(c))
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in clock time %q", string(c))
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in clock time %q", string(c))
	}
	return h*60 + m, nil
}

// ClockFromMinutes formats minutes since midnight as "HH:MM", wrapping at 24h.
// Negative inputs wrap backwards across midnight.
func ClockFromMinutes(minutes int) ClockTime {
	minutes %= MinutesPerDay
	if minutes < 0 {
		minutes += MinutesPerDay
	}
	return ClockTime(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60))
}

// AddClockMinutes shifts a minutes-since-midnight value, wrapping at 24h.
func AddClockMinutes(minutes, delta int) int {
	out := (minutes + delta) % MinutesPerDay
	if out < 0 {
		out += MinutesPerDay
	}
	return out
}
