package storage

import (
	"context"

	"github.com/thiagovm/barberflow/libs/db"
	"github.com/thiagovm/barberflow/services/booking-service/internal/model"
	"github.com/thiagovm/barberflow/services/booking-service/internal/schedule"
)

// SettingsRepository reads and writes the single shop settings row and
// the weekly agenda. Both fall back to defaults when the shop has never
// saved them.
type SettingsRepository struct {
	pool *db.Pool
}

func NewSettingsRepository(pool *db.Pool) *SettingsRepository {
	return &SettingsRepository{pool: pool}
}

func (r *SettingsRepository) Get(ctx context.Context) (model.Settings, error) {
	s := model.DefaultSettings()
	err := r.pool.QueryRow(ctx, `
		SELECT timezone, COALESCE(webhook_url, ''), cancel_min_lead_hours, slot_step_minutes,
			notify_confirmation, notify_cancellation, notify_reminder_24h, notify_reminder_2h,
			notify_follow_up_3d, notify_follow_up_21d
		FROM shop_settings
		WHERE id = 1
	`).Scan(&s.Timezone, &s.WebhookURL, &s.CancelMinLeadHours, &s.SlotStepMinutes,
		&s.NotifyConfirmation, &s.NotifyCancellation, &s.NotifyReminder24h, &s.NotifyReminder2h,
		&s.NotifyFollowUp3d, &s.NotifyFollowUp21d)
	if IsNotFound(err) {
		return model.DefaultSettings(), nil
	}
	if err != nil {
		return model.Settings{}, err
	}
	if s.SlotStepMinutes <= 0 {
		s.SlotStepMinutes = schedule.DefaultStepMinutes
	}
	return s, nil
}

func (r *SettingsRepository) Save(ctx context.Context, s model.Settings) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO shop_settings
			(id, timezone, webhook_url, cancel_min_lead_hours, slot_step_minutes,
			 notify_confirmation, notify_cancellation, notify_reminder_24h, notify_reminder_2h,
			 notify_follow_up_3d, notify_follow_up_21d, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now())
		ON CONFLICT (id) DO UPDATE SET
			timezone = EXCLUDED.timezone,
			webhook_url = EXCLUDED.webhook_url,
			cancel_min_lead_hours = EXCLUDED.cancel_min_lead_hours,
			slot_step_minutes = EXCLUDED.slot_step_minutes,
			notify_confirmation = EXCLUDED.notify_confirmation,
			notify_cancellation = EXCLUDED.notify_cancellation,
			notify_reminder_24h = EXCLUDED.notify_reminder_24h,
			notify_reminder_2h = EXCLUDED.notify_reminder_2h,
			notify_follow_up_3d = EXCLUDED.notify_follow_up_3d,
			notify_follow_up_21d = EXCLUDED.notify_follow_up_21d,
			updated_at = now()
	`, s.Timezone, s.WebhookURL, s.CancelMinLeadHours, s.SlotStepMinutes,
		s.NotifyConfirmation, s.NotifyCancellation, s.NotifyReminder24h, s.NotifyReminder2h,
		s.NotifyFollowUp3d, s.NotifyFollowUp21d)
	return err
}

func (r *SettingsRepository) GetBusinessHours(ctx context.Context) ([]model.BusinessHours, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT weekday, opens_minute, closes_minute, is_open
		FROM business_hours
		ORDER BY weekday ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byDay := make(map[int]model.BusinessHours)
	for rows.Next() {
		var h model.BusinessHours
		if err := rows.Scan(&h.Weekday, &h.OpensMinute, &h.ClosesMinute, &h.IsOpen); err != nil {
			return nil, err
		}
		byDay[h.Weekday] = h
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Missing weekdays fall back to the defaults so the agenda always
	// covers the full week.
	hours := model.DefaultBusinessHours()
	for i := range hours {
		if h, ok := byDay[hours[i].Weekday]; ok {
			hours[i] = h
		}
	}
	return hours, nil
}

func (r *SettingsRepository) SaveBusinessHours(ctx context.Context, hours []model.BusinessHours) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, h := range hours {
		if _, err := tx.Exec(ctx, `
			INSERT INTO business_hours (weekday, opens_minute, closes_minute, is_open)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (weekday) DO UPDATE SET
				opens_minute = EXCLUDED.opens_minute,
				closes_minute = EXCLUDED.closes_minute,
				is_open = EXCLUDED.is_open
		`, h.Weekday, h.OpensMinute, h.ClosesMinute, h.IsOpen); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
