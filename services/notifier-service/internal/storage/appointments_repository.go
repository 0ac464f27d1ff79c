package storage

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/thiagovm/barberflow/libs/db"
)

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// DueAppointment is the read model the reminder scanner works from.
type DueAppointment struct {
	ID               string
	ClientName       string
	Phone            string
	ProfessionalName string
	Date             string
	StartMinute      int
}

// ShopSettings is the slice of shop configuration the notifier needs:
// where to deliver and which notification kinds are enabled.
type ShopSettings struct {
	Timezone           string
	WebhookURL         string
	NotifyConfirmation bool
	NotifyCancellation bool
	NotifyReminder24h  bool
	NotifyReminder2h   bool
	NotifyFollowUp3d   bool
	NotifyFollowUp21d  bool
}

func (s ShopSettings) Location() *time.Location {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

type AppointmentsRepository struct {
	pool *db.Pool
}

func NewAppointmentsRepository(pool *db.Pool) *AppointmentsRepository {
	return &AppointmentsRepository{pool: pool}
}

func (r *AppointmentsRepository) Settings(ctx context.Context) (ShopSettings, error) {
	s := ShopSettings{
		Timezone:           "UTC",
		NotifyConfirmation: true,
		NotifyCancellation: true,
		NotifyReminder24h:  true,
		NotifyReminder2h:   true,
	}
	err := r.pool.QueryRow(ctx, `
		SELECT timezone, COALESCE(webhook_url, ''),
			notify_confirmation, notify_cancellation, notify_reminder_24h, notify_reminder_2h,
			notify_follow_up_3d, notify_follow_up_21d
		FROM shop_settings
		WHERE id = 1
	`).Scan(&s.Timezone, &s.WebhookURL,
		&s.NotifyConfirmation, &s.NotifyCancellation, &s.NotifyReminder24h, &s.NotifyReminder2h,
		&s.NotifyFollowUp3d, &s.NotifyFollowUp21d)
	if isNoRows(err) {
		return s, nil
	}
	if err != nil {
		return ShopSettings{}, err
	}
	return s, nil
}

// ListActiveByDate returns bookings still on the agenda for a date, for
// the 24h and 2h reminder passes.
func (r *AppointmentsRepository) ListActiveByDate(ctx context.Context, date string) ([]DueAppointment, error) {
	return r.list(ctx, `
		SELECT a.id::text, a.client_name, a.phone, COALESCE(p.name, ''),
			to_char(a.date, 'YYYY-MM-DD'), a.start_minute
		FROM appointments a
		LEFT JOIN professionals p ON p.id = a.professional_id
		WHERE a.date = $1
			AND a.status IN ('scheduled', 'confirmed', 'in_progress')
		ORDER BY a.start_minute ASC
	`, date)
}

// ListCompletedAttendedByDate returns the visits eligible for follow-up
// messages: completed, and the client actually showed up.
func (r *AppointmentsRepository) ListCompletedAttendedByDate(ctx context.Context, date string) ([]DueAppointment, error) {
	return r.list(ctx, `
		SELECT a.id::text, a.client_name, a.phone, COALESCE(p.name, ''),
			to_char(a.date, 'YYYY-MM-DD'), a.start_minute
		FROM appointments a
		LEFT JOIN professionals p ON p.id = a.professional_id
		WHERE a.date = $1
			AND a.status = 'completed'
			AND a.attended IS TRUE
		ORDER BY a.start_minute ASC
	`, date)
}

func (r *AppointmentsRepository) list(ctx context.Context, sql, date string) ([]DueAppointment, error) {
	rows, err := r.pool.Query(ctx, sql, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var appts []DueAppointment
	for rows.Next() {
		var a DueAppointment
		if err := rows.Scan(&a.ID, &a.ClientName, &a.Phone, &a.ProfessionalName, &a.Date, &a.StartMinute); err != nil {
			return nil, err
		}
		appts = append(appts, a)
	}
	return appts, rows.Err()
}
