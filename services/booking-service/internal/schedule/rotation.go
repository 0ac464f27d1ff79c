package schedule

import (
	"errors"
	"sort"
	"time"
)

var ErrNoProfessionalAvailable = errors.New("no professional available")

// RotationCandidate is one active professional's standing for a given day.
// LastBookingAt is nil when the professional has never taken a booking.
type RotationCandidate struct {
	ProfessionalID string
	BookingsToday  int
	LastBookingAt  *time.Time
}

// SelectProfessional picks the professional who should take the next
// walk-in booking: fewest bookings today, ties broken by longest since last
// booking with never-booked ranked first, and finally by professional ID so
// the choice is fully deterministic for identical inputs.
func SelectProfessional(candidates []RotationCandidate) (string, error) {
	if len(candidates) == 0 {
		return "", ErrNoProfessionalAvailable
	}

	ranked := make([]RotationCandidate, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.BookingsToday != b.BookingsToday {
			return a.BookingsToday < b.BookingsToday
		}
		switch {
		case a.LastBookingAt == nil && b.LastBookingAt != nil:
			return true
		case a.LastBookingAt != nil && b.LastBookingAt == nil:
			return false
		case a.LastBookingAt != nil && b.LastBookingAt != nil:
			if !a.LastBookingAt.Equal(*b.LastBookingAt) {
				return a.LastBookingAt.Before(*b.LastBookingAt)
			}
		}
		return a.ProfessionalID < b.ProfessionalID
	})

	return ranked[0].ProfessionalID, nil
}
