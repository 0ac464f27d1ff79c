package schedule

import "time"

// Role identifies who is asking for a cancellation.
type Role string

const (
	RoleClient Role = "client"
	RoleStaff  Role = "staff"
	RoleAdmin  Role = "admin"
	RoleSystem Role = "system"
)

// ParseRole normalizes an actor string, defaulting to client.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleStaff, RoleAdmin, RoleSystem:
		return Role(s)
	default:
		return RoleClient
	}
}

// Override reports whether the role may cancel regardless of lead time.
func (r Role) Override() bool {
	return r == RoleStaff || r == RoleAdmin || r == RoleSystem
}

// CanCancel decides whether a cancellation is allowed: staff, admin and
// system always may; clients need at least minLead before the booking
// starts. Terminal-status bookings must be rejected before consulting this.
func CanCancel(now, startAt time.Time, minLead time.Duration, role Role) bool {
	if role.Override() {
		return true
	}
	return startAt.Sub(now) >= minLead
}

// HoursUntil returns the signed number of hours between now and the
// booking start; negative means the booking is already in the past.
func HoursUntil(now, startAt time.Time) float64 {
	return startAt.Sub(now).Hours()
}
