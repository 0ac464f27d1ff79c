package storage

import (
	"context"
	"strings"

	"github.com/thiagovm/barberflow/libs/db"
	"github.com/thiagovm/barberflow/services/booking-service/internal/model"
)

// ClientRepository serves the CRM view: clients are created implicitly by
// bookings and enriched with visit aggregates on read.
type ClientRepository struct {
	pool *db.Pool
}

func NewClientRepository(pool *db.Pool) *ClientRepository {
	return &ClientRepository{pool: pool}
}

// List returns clients with their appointment counts and last completed
// visit, newest clients first. search filters on name or phone.
func (r *ClientRepository) List(ctx context.Context, search string) ([]model.Client, error) {
	search = strings.TrimSpace(search)
	rows, err := r.pool.Query(ctx, `
		SELECT c.id::text, c.name, c.phone,
			COUNT(a.id) FILTER (WHERE a.status <> 'cancelled'),
			MAX(a.date) FILTER (WHERE a.status = 'completed'),
			c.created_at
		FROM clients c
		LEFT JOIN appointments a ON a.client_id = c.id
		WHERE $1 = '' OR c.name ILIKE '%' || $1 || '%' OR c.phone LIKE '%' || $1 || '%'
		GROUP BY c.id, c.name, c.phone, c.created_at
		ORDER BY c.created_at DESC
	`, search)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []model.Client
	for rows.Next() {
		var c model.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Appointments, &c.LastVisit, &c.CreatedAt); err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (r *ClientRepository) GetByPhone(ctx context.Context, phone string) (model.Client, error) {
	var c model.Client
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, name, phone, created_at
		FROM clients
		WHERE phone = $1
	`, phone).Scan(&c.ID, &c.Name, &c.Phone, &c.CreatedAt)
	return c, err
}
