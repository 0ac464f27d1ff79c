package schedule

import (
	"testing"
	"time"
)

func ts(t *testing.T, hour int) *time.Time {
	t.Helper()
	v := time.Date(2026, 3, 2, hour, 0, 0, 0, time.UTC)
	return &v
}

func TestSelectProfessional_FewestBookingsWins(t *testing.T) {
	candidates := []RotationCandidate{
		{ProfessionalID: "a", BookingsToday: 2, LastBookingAt: ts(t, 11)},
		{ProfessionalID: "b", BookingsToday: 2, LastBookingAt: ts(t, 10)},
		{ProfessionalID: "c", BookingsToday: 1, LastBookingAt: ts(t, 12)},
	}

	for i := 0; i < 50; i++ {
		got, err := SelectProfessional(candidates)
		if err != nil {
			t.Fatalf("SelectProfessional failed: %v", err)
		}
		if got != "c" {
			t.Fatalf("expected c (fewest bookings), got %s", got)
		}
	}
}

func TestSelectProfessional_TieBrokenByOldestLastBooking(t *testing.T) {
	candidates := []RotationCandidate{
		{ProfessionalID: "b", BookingsToday: 1, LastBookingAt: ts(t, 11)},
		{ProfessionalID: "a", BookingsToday: 1, LastBookingAt: ts(t, 9)},
	}

	got, err := SelectProfessional(candidates)
	if err != nil {
		t.Fatalf("SelectProfessional failed: %v", err)
	}
	if got != "a" {
		t.Fatalf("expected a (longer since served), got %s", got)
	}
}

func TestSelectProfessional_NeverBookedRanksFirst(t *testing.T) {
	candidates := []RotationCandidate{
		{ProfessionalID: "a", BookingsToday: 0, LastBookingAt: ts(t, 8)},
		{ProfessionalID: "b", BookingsToday: 0, LastBookingAt: nil},
	}

	got, err := SelectProfessional(candidates)
	if err != nil {
		t.Fatalf("SelectProfessional failed: %v", err)
	}
	if got != "b" {
		t.Fatalf("expected b (never booked), got %s", got)
	}
}

func TestSelectProfessional_FullTieIsDeterministic(t *testing.T) {
	// Two fresh hires, no history at all: lowest ID wins, every time.
	candidates := []RotationCandidate{
		{ProfessionalID: "zeta"},
		{ProfessionalID: "alpha"},
	}

	for i := 0; i < 50; i++ {
		got, err := SelectProfessional(candidates)
		if err != nil {
			t.Fatalf("SelectProfessional failed: %v", err)
		}
		if got != "alpha" {
			t.Fatalf("expected alpha, got %s", got)
		}
	}
}

func TestSelectProfessional_Empty(t *testing.T) {
	if _, err := SelectProfessional(nil); err != ErrNoProfessionalAvailable {
		t.Fatalf("expected ErrNoProfessionalAvailable, got %v", err)
	}
}

func TestSelectProfessional_DoesNotMutateInput(t *testing.T) {
	candidates := []RotationCandidate{
		{ProfessionalID: "b", BookingsToday: 3},
		{ProfessionalID: "a", BookingsToday: 1},
	}
	if _, err := SelectProfessional(candidates); err != nil {
		t.Fatalf("SelectProfessional failed: %v", err)
	}
	if candidates[0].ProfessionalID != "b" || candidates[1].ProfessionalID != "a" {
		t.Fatal("input slice was reordered")
	}
}
