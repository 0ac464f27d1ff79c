package schedule

// Slots returns every multiple of stepMinutes t with opens <= t < closes,
// ascending. A closed day (opens >= closes) yields nothing.
func Slots(opensMinute, closesMinute, stepMinutes int) []int {
	if stepMinutes <= 0 {
		stepMinutes = DefaultStepMinutes
	}
	if opensMinute < 0 || closesMinute <= opensMinute {
		return nil
	}

	start := opensMinute
	if rem := start % stepMinutes; rem != 0 {
		start += stepMinutes - rem
	}

	var slots []int
	for t := start; t < closesMinute; t += stepMinutes {
		slots = append(slots, t)
	}
	return slots
}

// AvailableSlots filters candidate start times to those where a booking of
// durationMinutes would not overlap any busy interval.
func AvailableSlots(candidates []int, busy []Interval, durationMinutes int) []int {
	durationMinutes = ClampDuration(durationMinutes)

	var free []int
	for _, s := range candidates {
		if !overlapsAny(Interval{StartMinute: s, DurationMinutes: durationMinutes}, busy) {
			free = append(free, s)
		}
	}
	return free
}

// SlotsWithAnyFree filters candidates to those where at least one
// professional could take a booking of durationMinutes. busyByProfessional
// must contain an entry (possibly empty) per candidate professional; an
// empty map means no professionals, hence no availability.
func SlotsWithAnyFree(candidates []int, busyByProfessional map[string][]Interval, durationMinutes int) []int {
	durationMinutes = ClampDuration(durationMinutes)

	var free []int
	for _, s := range candidates {
		want := Interval{StartMinute: s, DurationMinutes: durationMinutes}
		for _, busy := range busyByProfessional {
			if !overlapsAny(want, busy) {
				free = append(free, s)
				break
			}
		}
	}
	return free
}

func overlapsAny(want Interval, busy []Interval) bool {
	for _, b := range busy {
		if Overlaps(want, b) {
			return true
		}
	}
	return false
}
