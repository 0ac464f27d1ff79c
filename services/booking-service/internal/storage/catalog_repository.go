package storage

import (
	"context"
	"errors"
	"strings"

	"github.com/thiagovm/barberflow/libs/db"
	"github.com/thiagovm/barberflow/services/booking-service/internal/model"
)

var ErrInactiveProfessional = errors.New("professional is inactive")

// CatalogRepository manages the bookable catalog: services and the
// professionals who perform them.
type CatalogRepository struct {
	pool *db.Pool
}

func NewCatalogRepository(pool *db.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

func (r *CatalogRepository) ListServices(ctx context.Context, activeOnly bool) ([]model.Service, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, name, duration_minutes, price, active, created_at
		FROM services
		WHERE ($1 = false OR active)
		ORDER BY name ASC
	`, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []model.Service
	for rows.Next() {
		var s model.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.DurationMinutes, &s.Price, &s.Active, &s.CreatedAt); err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

// GetServicesByIDs resolves the requested services, preserving only rows
// that exist and are active. Callers compare lengths to detect unknown ids.
func (r *CatalogRepository) GetServicesByIDs(ctx context.Context, ids []string) ([]model.Service, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, name, duration_minutes, price, active, created_at
		FROM services
		WHERE id = ANY($1) AND active
	`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byID := make(map[string]model.Service)
	for rows.Next() {
		var s model.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.DurationMinutes, &s.Price, &s.Active, &s.CreatedAt); err != nil {
			return nil, err
		}
		byID[s.ID] = s
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Keep the caller's order.
	var out []model.Service
	for _, id := range ids {
		if s, ok := byID[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *CatalogRepository) CreateService(ctx context.Context, s model.Service) (model.Service, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO services (name, duration_minutes, price, active)
		VALUES ($1, $2, $3, true)
		RETURNING id::text, active, created_at
	`, strings.TrimSpace(s.Name), s.DurationMinutes, s.Price).Scan(&s.ID, &s.Active, &s.CreatedAt)
	return s, err
}

func (r *CatalogRepository) UpdateService(ctx context.Context, s model.Service) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE services
		SET name = $2, duration_minutes = $3, price = $4, active = $5
		WHERE id = $1
	`, s.ID, strings.TrimSpace(s.Name), s.DurationMinutes, s.Price, s.Active)
	return err
}

func (r *CatalogRepository) ListProfessionals(ctx context.Context, activeOnly bool) ([]model.Professional, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, name, COALESCE(phone, ''), active, created_at
		FROM professionals
		WHERE ($1 = false OR active)
		ORDER BY name ASC
	`, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pros []model.Professional
	for rows.Next() {
		var p model.Professional
		if err := rows.Scan(&p.ID, &p.Name, &p.Phone, &p.Active, &p.CreatedAt); err != nil {
			return nil, err
		}
		pros = append(pros, p)
	}
	return pros, rows.Err()
}

func (r *CatalogRepository) GetProfessional(ctx context.Context, id string) (model.Professional, error) {
	var p model.Professional
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, name, COALESCE(phone, ''), active, created_at
		FROM professionals
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Name, &p.Phone, &p.Active, &p.CreatedAt)
	return p, err
}

// FindProfessionalByName matches a client's free-text preference against
// active professionals, case-insensitively.
func (r *CatalogRepository) FindProfessionalByName(ctx context.Context, name string) (model.Professional, error) {
	var p model.Professional
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, name, COALESCE(phone, ''), active, created_at
		FROM professionals
		WHERE active AND lower(name) = lower($1)
	`, strings.TrimSpace(name)).Scan(&p.ID, &p.Name, &p.Phone, &p.Active, &p.CreatedAt)
	return p, err
}

func (r *CatalogRepository) CreateProfessional(ctx context.Context, p model.Professional) (model.Professional, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO professionals (name, phone, active)
		VALUES ($1, $2, true)
		RETURNING id::text, active, created_at
	`, strings.TrimSpace(p.Name), p.Phone).Scan(&p.ID, &p.Active, &p.CreatedAt)
	return p, err
}

func (r *CatalogRepository) UpdateProfessional(ctx context.Context, p model.Professional) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE professionals
		SET name = $2, phone = $3, active = $4
		WHERE id = $1
	`, p.ID, strings.TrimSpace(p.Name), p.Phone, p.Active)
	return err
}
