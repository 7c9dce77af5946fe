package repository

import (
	"context"

	"github.com/burhani/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgCategoryRepository is the PostgreSQL implementation of CategoryRepository.
type PgCategoryRepository struct {
	pool *pgxpool.Pool
}

// NewPgCategoryRepository creates a PgCategoryRepository backed by the given pool.
func NewPgCategoryRepository(pool *pgxpool.Pool) *PgCategoryRepository {
	return &PgCategoryRepository{pool: pool}
}

var _ CategoryRepository = (*PgCategoryRepository)(nil)

// List returns all categories ordered by name.
func (r *PgCategoryRepository) List(ctx context.Context) ([]*model.Category, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, created_at, updated_at FROM categories ORDER BY name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, &c)
	}
	return categories, rows.Err()
}
