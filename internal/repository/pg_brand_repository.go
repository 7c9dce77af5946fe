package repository

import (
	"context"

	"github.com/burhani/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgBrandRepository is the PostgreSQL implementation of BrandRepository.
type PgBrandRepository struct {
	pool *pgxpool.Pool
}

// NewPgBrandRepository creates a PgBrandRepository backed by the given pool.
func NewPgBrandRepository(pool *pgxpool.Pool) *PgBrandRepository {
	return &PgBrandRepository{pool: pool}
}

var _ BrandRepository = (*PgBrandRepository)(nil)

// List returns all brands ordered by name.
func (r *PgBrandRepository) List(ctx context.Context) ([]*model.Brand, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, image_url, created_at, updated_at FROM brands ORDER BY name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var brands []*model.Brand
	for rows.Next() {
		var b model.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.ImageURL, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		brands = append(brands, &b)
	}
	return brands, rows.Err()
}
