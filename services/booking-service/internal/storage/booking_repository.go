package storage

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/thiagovm/barberflow/libs/db"
	"github.com/thiagovm/barberflow/services/booking-service/internal/model"
	"github.com/thiagovm/barberflow/services/booking-service/internal/schedule"
)

// Querier is satisfied by both *db.Pool and pgx.Tx so read queries can run
// inside or outside the booking transaction.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type BookingRepository struct {
	pool *db.Pool
}

func NewBookingRepository(pool *db.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

func (r *BookingRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	return r.pool.Begin(ctx)
}

func (r *BookingRepository) Pool() Querier {
	return r.pool
}

// LockAgenda serializes writers on one professional's day. Held until the
// transaction ends, it closes the validate-then-insert race: a concurrent
// booking for the same professional and date blocks here until this one
// commits, then re-reads the busy intervals.
func (r *BookingRepository) LockAgenda(ctx context.Context, tx pgx.Tx, professionalID, date string) error {
	_, err := tx.Exec(ctx, `
		SELECT pg_advisory_xact_lock(hashtextextended($1, 0))
	`, professionalID+"@"+date)
	return err
}

// ListActiveIntervals returns the busy intervals of one professional on a
// date. Cancelled and completed appointments do not block the agenda.
func (r *BookingRepository) ListActiveIntervals(ctx context.Context, q Querier, professionalID, date string) ([]schedule.Interval, error) {
	rows, err := q.Query(ctx, `
		SELECT start_minute, total_duration_minutes
		FROM appointments
		WHERE professional_id = $1
			AND date = $2
			AND status IN ('scheduled', 'confirmed', 'in_progress')
		ORDER BY start_minute ASC
	`, professionalID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var busy []schedule.Interval
	for rows.Next() {
		var start, duration int
		if err := rows.Scan(&start, &duration); err != nil {
			return nil, err
		}
		busy = append(busy, schedule.Interval{
			StartMinute:     start,
			DurationMinutes: schedule.ClampDuration(duration),
		})
	}
	return busy, rows.Err()
}

// ActiveIntervalsByProfessional returns the busy map for every active
// professional on a date, including professionals with a free day.
func (r *BookingRepository) ActiveIntervalsByProfessional(ctx context.Context, date string) (map[string][]schedule.Interval, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.id::text, a.start_minute, a.total_duration_minutes
		FROM professionals p
		LEFT JOIN appointments a
			ON a.professional_id = p.id
			AND a.date = $1
			AND a.status IN ('scheduled', 'confirmed', 'in_progress')
		WHERE p.active
		ORDER BY p.id, a.start_minute
	`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	busy := make(map[string][]schedule.Interval)
	for rows.Next() {
		var id string
		var start, duration *int
		if err := rows.Scan(&id, &start, &duration); err != nil {
			return nil, err
		}
		if _, ok := busy[id]; !ok {
			busy[id] = nil
		}
		if start == nil {
			continue
		}
		d := 0
		if duration != nil {
			d = *duration
		}
		busy[id] = append(busy[id], schedule.Interval{
			StartMinute:     *start,
			DurationMinutes: schedule.ClampDuration(d),
		})
	}
	return busy, rows.Err()
}

// RotationSnapshot recomputes, per active professional, today's booking
// count and the most recent booking timestamp. Derived on every call; no
// cached state is authoritative.
func (r *BookingRepository) RotationSnapshot(ctx context.Context, date string) ([]schedule.RotationCandidate, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.id::text,
			COUNT(a.id),
			MAX(a.created_at)
		FROM professionals p
		LEFT JOIN appointments a
			ON a.professional_id = p.id
			AND a.date = $1
			AND a.status IN ('scheduled', 'confirmed', 'in_progress')
		WHERE p.active
		GROUP BY p.id
		ORDER BY p.id
	`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candidates []schedule.RotationCandidate
	for rows.Next() {
		var c schedule.RotationCandidate
		var last *time.Time
		if err := rows.Scan(&c.ProfessionalID, &c.BookingsToday, &last); err != nil {
			return nil, err
		}
		c.LastBookingAt = last
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

type AppointmentService struct {
	ServiceID       string
	Price           float64
	DurationMinutes int
}

// Create inserts the appointment and its service lines, resolving the
// client record by phone when no client id was supplied.
func (r *BookingRepository) Create(ctx context.Context, tx pgx.Tx, appt *model.Appointment, services []AppointmentService) (string, error) {
	clientID := appt.ClientID
	if clientID == nil && appt.Phone != "" {
		var id string
		err := tx.QueryRow(ctx, `
			INSERT INTO clients (name, phone)
			VALUES ($1, $2)
			ON CONFLICT (phone) DO UPDATE SET name = EXCLUDED.name
			RETURNING id::text
		`, appt.ClientName, appt.Phone).Scan(&id)
		if err != nil {
			return "", err
		}
		clientID = &id
	}

	var id string
	err := tx.QueryRow(ctx, `
		INSERT INTO appointments
			(client_id, professional_id, date, start_minute, total_duration_minutes,
			 total_value, client_name, phone, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id::text
	`, clientID, appt.ProfessionalID, appt.Date, appt.StartMinute, appt.TotalDurationMinutes,
		appt.TotalValue, appt.ClientName, appt.Phone, appt.Notes, string(appt.Status)).Scan(&id)
	if err != nil {
		return "", err
	}

	for _, s := range services {
		if _, err := tx.Exec(ctx, `
			INSERT INTO appointment_services (appointment_id, service_id, price, duration_minutes)
			VALUES ($1, $2, $3, $4)
		`, id, s.ServiceID, s.Price, s.DurationMinutes); err != nil {
			return "", err
		}
	}
	return id, nil
}

func (r *BookingRepository) GetForUpdate(ctx context.Context, tx pgx.Tx, appointmentID string) (model.Appointment, error) {
	row := tx.QueryRow(ctx, `
		SELECT a.id::text, a.client_id::text, a.professional_id::text, COALESCE(p.name, ''),
			to_char(a.date, 'YYYY-MM-DD'), a.start_minute, a.total_duration_minutes,
			a.total_value, a.client_name, a.phone, COALESCE(a.notes, ''), a.status,
			a.attended, a.cancelled_at, a.created_at
		FROM appointments a
		LEFT JOIN professionals p ON p.id = a.professional_id
		WHERE a.id = $1
		FOR UPDATE OF a
	`, appointmentID)
	return scanAppointment(row)
}

// Cancel marks the appointment cancelled and writes the audit record.
func (r *BookingRepository) Cancel(ctx context.Context, tx pgx.Tx, appt model.Appointment, actor schedule.Role, reason string, hoursBefore float64) (time.Time, error) {
	var cancelledAt time.Time
	err := tx.QueryRow(ctx, `
		UPDATE appointments
		SET status = 'cancelled',
			attended = false,
			cancelled_at = now()
		WHERE id = $1
		RETURNING cancelled_at
	`, appt.ID).Scan(&cancelledAt)
	if err != nil {
		return time.Time{}, err
	}

	if hoursBefore < 0 {
		hoursBefore = 0
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO cancellations
			(appointment_id, cancelled_by, reason, hours_before, client_name, phone, date, start_minute, total_value)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, appt.ID, string(actor), reason, hoursBefore, appt.ClientName, appt.Phone, appt.Date, appt.StartMinute, appt.TotalValue)
	if err != nil {
		return time.Time{}, err
	}
	return cancelledAt, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx pgx.Tx, appointmentID string, status schedule.Status, attended *bool) error {
	_, err := tx.Exec(ctx, `
		UPDATE appointments
		SET status = $2,
			attended = COALESCE($3, attended)
		WHERE id = $1
	`, appointmentID, string(status), attended)
	return err
}

func (r *BookingRepository) ListByDate(ctx context.Context, date string) ([]model.Appointment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.id::text, a.client_id::text, a.professional_id::text, COALESCE(p.name, ''),
			to_char(a.date, 'YYYY-MM-DD'), a.start_minute, a.total_duration_minutes,
			a.total_value, a.client_name, a.phone, COALESCE(a.notes, ''), a.status,
			a.attended, a.cancelled_at, a.created_at
		FROM appointments a
		LEFT JOIN professionals p ON p.id = a.professional_id
		WHERE a.date = $1
		ORDER BY a.start_minute ASC
	`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAppointments(rows)
}

// ListUpcomingByPhone returns a client's future active appointments:
// later dates, or today with a start time still ahead of nowMinute.
func (r *BookingRepository) ListUpcomingByPhone(ctx context.Context, phone, today string, nowMinute int) ([]model.Appointment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.id::text, a.client_id::text, a.professional_id::text, COALESCE(p.name, ''),
			to_char(a.date, 'YYYY-MM-DD'), a.start_minute, a.total_duration_minutes,
			a.total_value, a.client_name, a.phone, COALESCE(a.notes, ''), a.status,
			a.attended, a.cancelled_at, a.created_at
		FROM appointments a
		LEFT JOIN professionals p ON p.id = a.professional_id
		WHERE a.phone = $1
			AND a.status IN ('scheduled', 'confirmed', 'in_progress')
			AND (a.date > $2 OR (a.date = $2 AND a.start_minute > $3))
		ORDER BY a.date ASC, a.start_minute ASC
	`, phone, today, nowMinute)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAppointments(rows)
}

type RevenueReport struct {
	ProfessionalID   string
	ProfessionalName string
	Appointments     int
	Total            float64
}

// MonthlyRevenue sums a professional's completed, attended appointments
// for one calendar month.
func (r *BookingRepository) MonthlyRevenue(ctx context.Context, professionalID, monthStart, monthEnd string) (RevenueReport, error) {
	var rep RevenueReport
	err := r.pool.QueryRow(ctx, `
		SELECT p.id::text, p.name,
			COUNT(a.id),
			COALESCE(SUM(a.total_value), 0)
		FROM professionals p
		LEFT JOIN appointments a
			ON a.professional_id = p.id
			AND a.date >= $2 AND a.date < $3
			AND a.status = 'completed'
			AND a.attended IS TRUE
		WHERE p.id = $1
		GROUP BY p.id, p.name
	`, professionalID, monthStart, monthEnd).Scan(&rep.ProfessionalID, &rep.ProfessionalName, &rep.Appointments, &rep.Total)
	return rep, err
}

func scanAppointment(row pgx.Row) (model.Appointment, error) {
	var a model.Appointment
	var status string
	err := row.Scan(
		&a.ID,
		&a.ClientID,
		&a.ProfessionalID,
		&a.ProfessionalName,
		&a.Date,
		&a.StartMinute,
		&a.TotalDurationMinutes,
		&a.TotalValue,
		&a.ClientName,
		&a.Phone,
		&a.Notes,
		&status,
		&a.Attended,
		&a.CancelledAt,
		&a.CreatedAt,
	)
	if err != nil {
		return model.Appointment{}, err
	}
	a.Status = schedule.Status(status)
	return a, nil
}

func scanAppointments(rows pgx.Rows) ([]model.Appointment, error) {
	var appts []model.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appts = append(appts, a)
	}
	return appts, rows.Err()
}

// IsConflict detects the partial unique index on active appointments,
// the database backstop behind the advisory lock.
func IsConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
