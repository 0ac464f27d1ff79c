package model

import (
	"time"

	"github.com/thiagovm/barberflow/services/booking-service/internal/schedule"
)

type Appointment struct {
	ID                   string
	ClientID             *string
	ProfessionalID       string
	ProfessionalName     string
	Date                 string // YYYY-MM-DD, shop-local
	StartMinute          int
	TotalDurationMinutes int
	TotalValue           float64
	ClientName           string
	Phone                string
	Notes                string
	Status               schedule.Status
	Attended             *bool
	CancelledAt          *time.Time
	CreatedAt            time.Time
}

func (a Appointment) Interval() schedule.Interval {
	return schedule.Interval{
		StartMinute:     a.StartMinute,
		DurationMinutes: schedule.ClampDuration(a.TotalDurationMinutes),
	}
}

// StartAt anchors the appointment on the wall clock of loc.
func (a Appointment) StartAt(loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", a.Date, loc)
	if err != nil {
		return time.Time{}, err
	}
	return day.Add(time.Duration(a.StartMinute) * time.Minute), nil
}

type Service struct {
	ID              string
	Name            string
	DurationMinutes int
	Price           float64
	Active          bool
	CreatedAt       time.Time
}

type Professional struct {
	ID        string
	Name      string
	Phone     string
	Active    bool
	CreatedAt time.Time
}

type Client struct {
	ID           string
	Name         string
	Phone        string
	Appointments int
	LastVisit    *time.Time
	CreatedAt    time.Time
}

// BusinessHours is one weekday row of the shop agenda. Weekday follows
// time.Weekday (0 = Sunday).
type BusinessHours struct {
	Weekday      int
	OpensMinute  int
	ClosesMinute int
	IsOpen       bool
}

// Settings is the single shop configuration row.
type Settings struct {
	Timezone           string
	WebhookURL         string
	CancelMinLeadHours int
	SlotStepMinutes    int
	NotifyConfirmation bool
	NotifyCancellation bool
	NotifyReminder24h  bool
	NotifyReminder2h   bool
	NotifyFollowUp3d   bool
	NotifyFollowUp21d  bool
}

// Location resolves the configured timezone, falling back to UTC.
func (s Settings) Location() *time.Location {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func DefaultSettings() Settings {
	return Settings{
		Timezone:           "UTC",
		CancelMinLeadHours: 2,
		SlotStepMinutes:    schedule.DefaultStepMinutes,
		NotifyConfirmation: true,
		NotifyCancellation: true,
		NotifyReminder24h:  true,
		NotifyReminder2h:   true,
		NotifyFollowUp3d:   false,
		NotifyFollowUp21d:  false,
	}
}

// DefaultBusinessHours is the agenda used until the shop saves its own:
// Mon-Fri 09:00-19:00, Sat 09:00-18:00, closed Sunday.
func DefaultBusinessHours() []BusinessHours {
	hours := make([]BusinessHours, 7)
	for wd := 0; wd < 7; wd++ {
		h := BusinessHours{Weekday: wd, OpensMinute: 540, ClosesMinute: 1140, IsOpen: true}
		switch wd {
		case 0:
			h.IsOpen = false
			h.OpensMinute, h.ClosesMinute = 0, 0
		case 6:
			h.ClosesMinute = 1080
		}
		hours[wd] = h
	}
	return hours
}
