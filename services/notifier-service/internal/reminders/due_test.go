package reminders

import (
	"testing"
	"time"
)

func TestInTwoHourWindow(t *testing.T) {
	now := 600 // 10:00

	cases := []struct {
		start int
		want  bool
	}{
		{600 + 119, false},
		{600 + 120, true},
		{600 + 125, true},
		{600 + 130, true},
		{600 + 131, false},
		{600, false},
		{600 - 60, false},
	}
	for _, tc := range cases {
		if got := InTwoHourWindow(now, tc.start); got != tc.want {
			t.Fatalf("InTwoHourWindow(%d, %d) = %v, want %v", now, tc.start, got, tc.want)
		}
	}
}

func TestTargetDatesAt(t *testing.T) {
	now := time.Date(2026, 3, 25, 15, 0, 0, 0, time.UTC)
	d := TargetDatesAt(now)

	if d.Today != "2026-03-25" {
		t.Fatalf("Today = %s", d.Today)
	}
	if d.Tomorrow != "2026-03-26" {
		t.Fatalf("Tomorrow = %s", d.Tomorrow)
	}
	if d.ThreeDaysAgo != "2026-03-22" {
		t.Fatalf("ThreeDaysAgo = %s", d.ThreeDaysAgo)
	}
	if d.TwentyOneDaysAgo != "2026-03-04" {
		t.Fatalf("TwentyOneDaysAgo = %s", d.TwentyOneDaysAgo)
	}
}

func TestTargetDatesAt_MonthBoundary(t *testing.T) {
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	d := TargetDatesAt(now)

	if d.ThreeDaysAgo != "2026-02-26" {
		t.Fatalf("ThreeDaysAgo = %s", d.ThreeDaysAgo)
	}
	if d.TwentyOneDaysAgo != "2026-02-08" {
		t.Fatalf("TwentyOneDaysAgo = %s", d.TwentyOneDaysAgo)
	}
}

func TestMinuteOfDay(t *testing.T) {
	at := time.Date(2026, 3, 25, 14, 45, 59, 0, time.UTC)
	if got := MinuteOfDay(at); got != 885 {
		t.Fatalf("MinuteOfDay = %d, want 885", got)
	}
}
