package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/domain"
)

// HaulierRepo stores haulier profiles. The nested profile sections live in
// jsonb columns; pgx (un)marshals them through encoding/json.
type HaulierRepo struct{ db *pgxpool.Pool }

// NewHaulierRepo creates a new HaulierRepo.
func NewHaulierRepo(db *pgxpool.Pool) *HaulierRepo { return &HaulierRepo{db: db} }

const haulierColumns = `id, name, email, phone, company,
		fleet, operating_regions, capabilities, availability, performance, pricing,
		created_at, updated_at, last_active`

func scanHaulier(row pgx.Row) (domain.HaulierProfile, error) {
	var h domain.HaulierProfile
	err := row.Scan(
		&h.ID, &h.Name, &h.Email, &h.Phone, &h.Company,
		&h.Fleet, &h.OperatingRegions, &h.Capabilities, &h.Availability, &h.Performance, &h.Pricing,
		&h.CreatedAt, &h.UpdatedAt, &h.LastActive,
	)
	return h, err
}

// Get returns a haulier profile by its ID, or nil when it does not exist.
func (r *HaulierRepo) Get(ctx context.Context, id string) (*domain.HaulierProfile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+haulierColumns+` FROM hauliers WHERE id=$1`, id)
	h, err := scanHaulier(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get haulier %q: %w", id, err)
	}
	return &h, nil
}

// GetAvailable returns every haulier currently open for new work,
// ordered by id for a deterministic match input order.
func (r *HaulierRepo) GetAvailable(ctx context.Context) ([]domain.HaulierProfile, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+haulierColumns+`
		FROM hauliers
		WHERE (availability->>'is_available')::boolean
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list available hauliers: %w", err)
	}
	defer rows.Close()

	out := make([]domain.HaulierProfile, 0)
	for rows.Next() {
		h, err := scanHaulier(rows)
		if err != nil {
			return nil, fmt.Errorf("scan haulier: %w", err)
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// List returns hauliers ordered by id. If limit/offset are nil, returns the full list.
func (r *HaulierRepo) List(ctx context.Context, limit, offset *int) ([]domain.HaulierProfile, error) {
	q := `SELECT ` + haulierColumns + ` FROM hauliers ORDER BY id`
	args := make([]any, 0, 2)
	if limit != nil {
		q += fmt.Sprintf(" LIMIT $%d", len(args)+1)
		args = append(args, *limit)
	}
	if offset != nil {
		q += fmt.Sprintf(" OFFSET $%d", len(args)+1)
		args = append(args, *offset)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	capacity := 0
	if limit != nil && *limit > 0 {
		capacity = *limit
	}
	out := make([]domain.HaulierProfile, 0, capacity)
	for rows.Next() {
		h, err := scanHaulier(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// Upsert inserts or fully replaces a haulier profile.
func (r *HaulierRepo) Upsert(ctx context.Context, h *domain.HaulierProfile) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO hauliers (`+haulierColumns+`)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
        ON CONFLICT (id) DO UPDATE SET
            name = EXCLUDED.name,
            email = EXCLUDED.email,
            phone = EXCLUDED.phone,
            company = EXCLUDED.company,
            fleet = EXCLUDED.fleet,
            operating_regions = EXCLUDED.operating_regions,
            capabilities = EXCLUDED.capabilities,
            availability = EXCLUDED.availability,
            performance = EXCLUDED.performance,
            pricing = EXCLUDED.pricing,
            updated_at = EXCLUDED.updated_at,
            last_active = EXCLUDED.last_active
    `,
		h.ID, h.Name, h.Email, h.Phone, h.Company,
		h.Fleet, h.OperatingRegions, h.Capabilities, h.Availability, h.Performance, h.Pricing,
		h.CreatedAt, h.UpdatedAt, h.LastActive,
	)
	if err != nil {
		return fmt.Errorf("upsert haulier %q: %w", h.ID, err)
	}
	return nil
}
