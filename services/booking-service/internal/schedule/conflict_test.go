package schedule

import "testing"

func TestValidateStart_NoConflict(t *testing.T) {
	busy := []Interval{{StartMinute: 600, DurationMinutes: 30}}

	d := ValidateStart(busy, 630, 30, 1140, 30, MaxSuggestions)
	if !d.Accepted {
		t.Fatalf("10:30 after a 10:00-10:30 booking must be accepted, got %+v", d)
	}
	if len(d.SuggestedStarts) != 0 {
		t.Fatalf("accepted decision must carry no suggestions, got %v", d.SuggestedStarts)
	}
}

func TestValidateStart_ConflictSuggestsNextSlots(t *testing.T) {
	// Existing booking 10:00-10:30; requesting the same slot.
	busy := []Interval{{StartMinute: 600, DurationMinutes: 30}}

	d := ValidateStart(busy, 600, 30, 1140, 30, MaxSuggestions)
	if d.Accepted {
		t.Fatal("overlapping request must be rejected")
	}
	if d.ConflictStartMinute != 600 || d.ConflictEndMinute != 630 {
		t.Fatalf("unexpected conflict window: %s-%s",
			FormatClock(d.ConflictStartMinute), FormatClock(d.ConflictEndMinute))
	}
	if len(d.SuggestedStarts) != MaxSuggestions {
		t.Fatalf("expected %d suggestions, got %v", MaxSuggestions, d.SuggestedStarts)
	}
	if d.SuggestedStarts[0] != 630 {
		t.Fatalf("first suggestion must be 10:30, got %s", FormatClock(d.SuggestedStarts[0]))
	}
}

func TestValidateStart_SuggestionsRoundUpUnalignedEnd(t *testing.T) {
	// Booking 10:00-10:45: suggestions start at 11:00, not 10:45.
	busy := []Interval{{StartMinute: 600, DurationMinutes: 45}}

	d := ValidateStart(busy, 615, 30, 1140, 30, MaxSuggestions)
	if d.Accepted {
		t.Fatal("expected rejection")
	}
	if d.SuggestedStarts[0] != 660 {
		t.Fatalf("first suggestion must be 11:00, got %s", FormatClock(d.SuggestedStarts[0]))
	}
}

func TestValidateStart_SuggestionsAreConflictFree(t *testing.T) {
	busy := []Interval{
		{StartMinute: 600, DurationMinutes: 30}, // 10:00-10:30
		{StartMinute: 630, DurationMinutes: 30}, // 10:30-11:00
	}

	d := ValidateStart(busy, 600, 30, 1140, 30, MaxSuggestions)
	if d.Accepted {
		t.Fatal("expected rejection")
	}
	for _, s := range d.SuggestedStarts {
		want := Interval{StartMinute: s, DurationMinutes: 30}
		for _, b := range busy {
			if Overlaps(want, b) {
				t.Fatalf("suggestion %s overlaps existing booking", FormatClock(s))
			}
		}
		if s < 540 || s >= 1140 {
			t.Fatalf("suggestion %s outside business hours", FormatClock(s))
		}
	}
}

func TestValidateStart_SuggestionsStopAtClosing(t *testing.T) {
	// Conflict near closing: only a couple of slots remain.
	busy := []Interval{{StartMinute: 1080, DurationMinutes: 30}} // 18:00-18:30

	d := ValidateStart(busy, 1080, 30, 1140, 30, MaxSuggestions)
	if d.Accepted {
		t.Fatal("expected rejection")
	}
	if len(d.SuggestedStarts) != 1 || d.SuggestedStarts[0] != 1110 {
		t.Fatalf("expected single 18:30 suggestion, got %v", d.SuggestedStarts)
	}
}

func TestValidateStart_DurationFallback(t *testing.T) {
	busy := []Interval{{StartMinute: 600, DurationMinutes: 30}}

	// Zero duration falls back to 30 minutes and still conflicts.
	d := ValidateStart(busy, 600, 0, 1140, 30, MaxSuggestions)
	if d.Accepted {
		t.Fatal("zero-duration request must use the fallback duration and conflict")
	}
}
