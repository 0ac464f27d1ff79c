package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// DefaultDurationMinutes is applied wherever a service row carries no
	// usable duration. Aggregations must go through ClampDuration so the
	// fallback is applied in exactly one place.
	DefaultDurationMinutes = 30

	// DefaultStepMinutes is the slot granularity of the shop agenda.
	DefaultStepMinutes = 30

	minutesPerDay = 24 * 60
)

// Interval is a booking expressed as minutes of day, half-open:
// [StartMinute, StartMinute+DurationMinutes).
type Interval struct {
	StartMinute     int
	DurationMinutes int
}

func (iv Interval) EndMinute() int {
	return iv.StartMinute + iv.DurationMinutes
}

// Overlaps reports whether two half-open intervals intersect. Back-to-back
// intervals (one ending exactly where the other starts) do not overlap.
func Overlaps(a, b Interval) bool {
	return a.StartMinute < b.EndMinute() && b.StartMinute < a.EndMinute()
}

// ClampDuration substitutes the default duration for missing or
// non-positive values.
func ClampDuration(minutes int) int {
	if minutes <= 0 {
		return DefaultDurationMinutes
	}
	return minutes
}

// ParseClock converts "HH:MM" to minutes of day.
func ParseClock(s string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock time %q out of range", s)
	}
	return h*60 + m, nil
}

// FormatClock converts minutes of day back to "HH:MM".
func FormatClock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

// ValidStartMinute reports whether minute is a plausible time of day.
func ValidStartMinute(minute int) bool {
	return minute >= 0 && minute < minutesPerDay
}
