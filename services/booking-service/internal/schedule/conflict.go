package schedule

// MaxSuggestions caps how many alternative starts a rejection carries.
const MaxSuggestions = 6

// Decision is the outcome of validating a requested start against a
// professional's existing bookings for the day.
type Decision struct {
	Accepted bool

	// Set when rejected.
	ConflictStartMinute int
	ConflictEndMinute   int
	SuggestedStarts     []int
}

// ValidateStart accepts the request when it overlaps none of busy.
// On rejection it suggests up to maxSuggestions alternative starts seeded
// from the conflicting booking's end: rounded up to the step boundary,
// stepping forward, skipping starts that are themselves busy, and stopping
// at closing time.
func ValidateStart(busy []Interval, startMinute, durationMinutes, closesMinute, stepMinutes, maxSuggestions int) Decision {
	durationMinutes = ClampDuration(durationMinutes)
	if stepMinutes <= 0 {
		stepMinutes = DefaultStepMinutes
	}
	if maxSuggestions <= 0 {
		maxSuggestions = MaxSuggestions
	}

	requested := Interval{StartMinute: startMinute, DurationMinutes: durationMinutes}
	conflict, found := firstOverlap(requested, busy)
	if !found {
		return Decision{Accepted: true}
	}

	d := Decision{
		ConflictStartMinute: conflict.StartMinute,
		ConflictEndMinute:   conflict.EndMinute(),
	}

	s := roundUpToStep(conflict.EndMinute(), stepMinutes)
	for s < closesMinute && len(d.SuggestedStarts) < maxSuggestions {
		if !overlapsAny(Interval{StartMinute: s, DurationMinutes: durationMinutes}, busy) {
			d.SuggestedStarts = append(d.SuggestedStarts, s)
		}
		s += stepMinutes
	}
	return d
}

func firstOverlap(want Interval, busy []Interval) (Interval, bool) {
	for _, b := range busy {
		if Overlaps(want, b) {
			return b, true
		}
	}
	return Interval{}, false
}

func roundUpToStep(minute, step int) int {
	if rem := minute % step; rem != 0 {
		return minute + step - rem
	}
	return minute
}
