package reminders

import "time"

// Notification kinds, one ledger row per (appointment, kind).
const (
	KindConfirmation = "confirmation"
	KindCancellation = "cancellation"
	KindReminder24h  = "reminder_24h"
	KindReminder2h   = "reminder_2h"
	KindFollowUp3d   = "follow_up_3d"
	KindFollowUp21d  = "follow_up_21d"
)

// Two-hour reminders fire when the start is 120 to 130 minutes out. The
// 10-minute tail tolerates cron jitter without re-notifying bookings the
// previous tick already handled (the ledger catches overlap anyway).
const (
	twoHourWindowStart = 120
	twoHourWindowEnd   = 130
)

// InTwoHourWindow reports whether an appointment starting at startMinute
// is due a 2h reminder at nowMinute. Both are minutes of the shop-local
// day.
func InTwoHourWindow(nowMinute, startMinute int) bool {
	d := startMinute - nowMinute
	return d >= twoHourWindowStart && d <= twoHourWindowEnd
}

// TargetDates are the shop-local dates each reminder pass scans.
type TargetDates struct {
	Today            string
	Tomorrow         string
	ThreeDaysAgo     string
	TwentyOneDaysAgo string
}

func TargetDatesAt(now time.Time) TargetDates {
	const layout = "2006-01-02"
	return TargetDates{
		Today:            now.Format(layout),
		Tomorrow:         now.AddDate(0, 0, 1).Format(layout),
		ThreeDaysAgo:     now.AddDate(0, 0, -3).Format(layout),
		TwentyOneDaysAgo: now.AddDate(0, 0, -21).Format(layout),
	}
}

// MinuteOfDay converts a wall-clock instant to minutes since local
// midnight.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
