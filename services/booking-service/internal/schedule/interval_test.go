package schedule

import "testing"

func TestOverlaps_Symmetry(t *testing.T) {
	cases := []struct {
		a, b Interval
		want bool
	}{
		{Interval{540, 30}, Interval{540, 30}, true},
		{Interval{540, 60}, Interval{570, 30}, true},
		{Interval{540, 30}, Interval{570, 30}, false},
		{Interval{600, 45}, Interval{630, 30}, true},
		{Interval{0, 30}, Interval{30, 30}, false},
		{Interval{0, 1440}, Interval{720, 1}, true},
	}
	for _, tc := range cases {
		if got := Overlaps(tc.a, tc.b); got != tc.want {
			t.Fatalf("Overlaps(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
		if Overlaps(tc.a, tc.b) != Overlaps(tc.b, tc.a) {
			t.Fatalf("Overlaps(%v, %v) not symmetric", tc.a, tc.b)
		}
	}
}

func TestOverlaps_BackToBack(t *testing.T) {
	if Overlaps(Interval{0, 30}, Interval{30, 30}) {
		t.Fatal("back-to-back bookings must not conflict")
	}
}

func TestClampDuration(t *testing.T) {
	if got := ClampDuration(0); got != DefaultDurationMinutes {
		t.Fatalf("ClampDuration(0) = %d, want %d", got, DefaultDurationMinutes)
	}
	if got := ClampDuration(-15); got != DefaultDurationMinutes {
		t.Fatalf("ClampDuration(-15) = %d, want %d", got, DefaultDurationMinutes)
	}
	if got := ClampDuration(45); got != 45 {
		t.Fatalf("ClampDuration(45) = %d, want 45", got)
	}
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"09:00", 540, false},
		{"00:00", 0, false},
		{"23:59", 1439, false},
		{" 10:30 ", 630, false},
		{"24:00", 0, true},
		{"09:60", 0, true},
		{"9", 0, true},
		{"ab:cd", 0, true},
		{"", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseClock(%q) expected error, got %d", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseClock(%q) failed: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseClock(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFormatClock_RoundTrip(t *testing.T) {
	for _, m := range []int{0, 540, 630, 1155, 1439} {
		parsed, err := ParseClock(FormatClock(m))
		if err != nil {
			t.Fatalf("round trip of %d failed: %v", m, err)
		}
		if parsed != m {
			t.Fatalf("round trip of %d returned %d", m, parsed)
		}
	}
}
