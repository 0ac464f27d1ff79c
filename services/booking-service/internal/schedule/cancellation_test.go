package schedule

import (
	"testing"
	"time"
)

func TestCanCancel_ClientBoundary(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	lead := 2 * time.Hour

	if !CanCancel(now, now.Add(2*time.Hour), lead, RoleClient) {
		t.Fatal("exactly 2h ahead must be cancellable by the client")
	}
	if CanCancel(now, now.Add(1*time.Hour+59*time.Minute), lead, RoleClient) {
		t.Fatal("1h59m ahead must not be cancellable by the client")
	}
	if CanCancel(now, now.Add(-30*time.Minute), lead, RoleClient) {
		t.Fatal("a booking in the past must not be cancellable by the client")
	}
}

func TestCanCancel_OverrideRoles(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	soon := now.Add(5 * time.Minute)

	for _, role := range []Role{RoleAdmin, RoleStaff, RoleSystem} {
		if !CanCancel(now, soon, 2*time.Hour, role) {
			t.Fatalf("role %s must always be allowed to cancel", role)
		}
	}
}

func TestHoursUntil(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	if got := HoursUntil(now, now.Add(90*time.Minute)); got != 1.5 {
		t.Fatalf("HoursUntil = %v, want 1.5", got)
	}
	if got := HoursUntil(now, now.Add(-1*time.Hour)); got != -1 {
		t.Fatalf("HoursUntil for past booking = %v, want -1", got)
	}
}

func TestParseRole(t *testing.T) {
	if ParseRole("admin") != RoleAdmin {
		t.Fatal("admin should parse as admin")
	}
	if ParseRole("") != RoleClient {
		t.Fatal("empty actor should default to client")
	}
	if ParseRole("whatever") != RoleClient {
		t.Fatal("unknown actor should default to client")
	}
}
