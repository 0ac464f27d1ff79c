package schedule

import "testing"

func TestSlots_FullDay(t *testing.T) {
	// 09:00-19:00 at 30 min steps: 09:00 .. 18:30 inclusive.
	slots := Slots(540, 1140, 30)
	if len(slots) != 20 {
		t.Fatalf("expected 20 slots, got %d", len(slots))
	}
	if slots[0] != 540 {
		t.Fatalf("expected first slot 09:00, got %s", FormatClock(slots[0]))
	}
	if slots[len(slots)-1] != 1110 {
		t.Fatalf("expected last slot 18:30, got %s", FormatClock(slots[len(slots)-1]))
	}
	for i := 1; i < len(slots); i++ {
		if slots[i] != slots[i-1]+30 {
			t.Fatalf("slots not ascending by step at index %d", i)
		}
	}
}

func TestSlots_ClosedDay(t *testing.T) {
	if got := Slots(540, 540, 30); got != nil {
		t.Fatalf("opens == closes must yield no slots, got %v", got)
	}
	if got := Slots(600, 540, 30); got != nil {
		t.Fatalf("opens > closes must yield no slots, got %v", got)
	}
}

func TestSlots_UnalignedOpening(t *testing.T) {
	// 09:15 opening rounds up to the 09:30 boundary.
	slots := Slots(555, 660, 30)
	if len(slots) != 3 || slots[0] != 570 {
		t.Fatalf("expected slots starting 09:30, got %v", slots)
	}
}

func TestAvailableSlots_Basic(t *testing.T) {
	candidates := Slots(540, 720, 30) // 09:00-12:00
	busy := []Interval{{StartMinute: 600, DurationMinutes: 30}} // 10:00-10:30

	free := AvailableSlots(candidates, busy, 30)
	want := []int{540, 570, 630, 660, 690}
	if len(free) != len(want) {
		t.Fatalf("expected %d free slots, got %v", len(want), free)
	}
	for i := range want {
		if free[i] != want[i] {
			t.Fatalf("free[%d] = %s, want %s", i, FormatClock(free[i]), FormatClock(want[i]))
		}
	}
}

func TestAvailableSlots_LongerDurationBlocksNeighbors(t *testing.T) {
	candidates := Slots(540, 720, 30)
	busy := []Interval{{StartMinute: 600, DurationMinutes: 30}}

	// A 60 min booking starting 09:30 would run into the 10:00 one.
	free := AvailableSlots(candidates, busy, 60)
	for _, s := range free {
		if s == 570 {
			t.Fatal("09:30 must not be free for a 60 minute booking")
		}
	}
}

func TestAvailableSlots_Monotonicity(t *testing.T) {
	candidates := Slots(540, 1140, 30)
	busy := []Interval{{StartMinute: 600, DurationMinutes: 45}}

	before := AvailableSlots(candidates, busy, 30)
	busy = append(busy, Interval{StartMinute: 900, DurationMinutes: 30})
	after := AvailableSlots(candidates, busy, 30)

	if len(after) > len(before) {
		t.Fatalf("adding a booking grew availability: %d -> %d", len(before), len(after))
	}
	seen := make(map[int]bool, len(before))
	for _, s := range before {
		seen[s] = true
	}
	for _, s := range after {
		if !seen[s] {
			t.Fatalf("slot %s appeared after adding a booking", FormatClock(s))
		}
	}
}

func TestSlotsWithAnyFree(t *testing.T) {
	candidates := Slots(600, 690, 30) // 10:00, 10:30, 11:00
	busyByProfessional := map[string][]Interval{
		"a": {{StartMinute: 600, DurationMinutes: 60}}, // busy 10:00-11:00
		"b": {{StartMinute: 630, DurationMinutes: 30}}, // busy 10:30-11:00
	}

	// 10:00 is free via b, 10:30 is busy for both, 11:00 is free for both.
	free := SlotsWithAnyFree(candidates, busyByProfessional, 30)
	want := []int{600, 660}
	if len(free) != len(want) {
		t.Fatalf("expected %v, got %v", want, free)
	}
	for i := range want {
		if free[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, free)
		}
	}
}

func TestSlotsWithAnyFree_NoProfessionals(t *testing.T) {
	if got := SlotsWithAnyFree(Slots(540, 720, 30), map[string][]Interval{}, 30); got != nil {
		t.Fatalf("no professionals must mean no availability, got %v", got)
	}
}
