package availability

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the canonical calendar-date form used throughout the engine.
const DateLayout = "2006-01-02"

// parseClock converts an "HH:mm" string to minutes since midnight.
func parseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 {
		return 0, fmt.Errorf("malformed clock time %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("malformed clock time %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("malformed clock time %q", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock time %q out of range", s)
	}
	return h*60 + m, nil
}

// formatClock renders minutes since midnight as "HH:mm".
func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// NormalizeClockTime reduces a stored time to exactly "HH:mm": seconds are
// stripped and hour/minute are left-padded to two digits. Returns "" for
// values that do not look like a clock time; callers skip those.
//
// Normalization happens at this boundary because booked-slot matching is a
// plain string comparison against enumerated candidates.
func NormalizeClockTime(raw string) string {
	m, err := parseClock(raw)
	if err != nil {
		return ""
	}
	return formatClock(m)
}

// NormalizeDate reduces a stored calendar date (possibly a full timestamp)
// to "YYYY-MM-DD". Returns "" when the value has no parsable date part.
func NormalizeDate(raw string) string {
	s := strings.TrimSpace(raw)
	if len(s) < len(DateLayout) {
		return ""
	}
	s = s[:len(DateLayout)]
	if _, err := time.Parse(DateLayout, s); err != nil {
		return ""
	}
	return s
}

// minutesOfDay returns t's wall-clock time as minutes since midnight.
func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
