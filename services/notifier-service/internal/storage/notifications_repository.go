package storage

import (
	"context"

	"github.com/thiagovm/barberflow/libs/db"
)

// NotificationsRepository is the delivery ledger. A (appointment, kind)
// pair with a sent row is never delivered again.
type NotificationsRepository struct {
	pool *db.Pool
}

func NewNotificationsRepository(pool *db.Pool) *NotificationsRepository {
	return &NotificationsRepository{pool: pool}
}

func (r *NotificationsRepository) AlreadySent(ctx context.Context, appointmentID, kind string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM notifications
			WHERE appointment_id = $1 AND kind = $2 AND status = 'sent'
		)
	`, appointmentID, kind).Scan(&exists)
	return exists, err
}

func (r *NotificationsRepository) Record(ctx context.Context, appointmentID, kind, status, webhookURL, errMsg string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO notifications (appointment_id, kind, status, webhook_url, error)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))
	`, appointmentID, kind, status, webhookURL, errMsg)
	return err
}
