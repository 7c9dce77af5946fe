package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/burhani/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgProductRepository is the PostgreSQL implementation of ProductRepository.
type PgProductRepository struct {
	pool *pgxpool.Pool
}

// NewPgProductRepository creates a PgProductRepository backed by the given pool.
func NewPgProductRepository(pool *pgxpool.Pool) *PgProductRepository {
	return &PgProductRepository{pool: pool}
}

var _ ProductRepository = (*PgProductRepository)(nil)

// productColumns selects a product row joined with its (optional) brand and
// its category. Brand columns come back NULL when the product has no brand.
const productColumns = `p.id, p.name, p.description, p.status, p.is_archived, p.brand_id, p.category_id, p.created_at, p.updated_at,
	b.id, b.name, b.image_url, b.created_at, b.updated_at,
	c.id, c.name, c.created_at, c.updated_at`

const productJoins = `FROM products p
	LEFT JOIN brands b ON b.id = p.brand_id
	JOIN categories c ON c.id = p.category_id`

func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	var bID, bName, bImageURL *string
	var bCreatedAt, bUpdatedAt *time.Time
	var c model.Category
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Status, &p.IsArchived, &p.BrandID, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt,
		&bID, &bName, &bImageURL, &bCreatedAt, &bUpdatedAt,
		&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if bID != nil {
		p.Brand = &model.Brand{ID: *bID, Name: *bName, ImageURL: bImageURL, CreatedAt: *bCreatedAt, UpdatedAt: *bUpdatedAt}
	}
	p.Category = &c
	return &p, nil
}

// ListPublished returns published, non-archived products newest first with
// brand, category and images attached.
func (r *PgProductRepository) ListPublished(ctx context.Context, f model.ProductFilter) ([]*model.Product, error) {
	conds := []string{"p.status = 'PUBLISHED'", "p.is_archived = FALSE"}
	var args []any

	if f.BrandID != "" {
		args = append(args, f.BrandID)
		conds = append(conds, "p.brand_id = $"+strconv.Itoa(len(args)))
	}
	if f.CategoryID != "" {
		args = append(args, f.CategoryID)
		conds = append(conds, "p.category_id = $"+strconv.Itoa(len(args)))
	}

	query := "SELECT " + productColumns + "\n" + productJoins +
		"\nWHERE " + strings.Join(conds, " AND ") +
		"\nORDER BY p.created_at DESC"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += "\nLIMIT $" + strconv.Itoa(len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachImages(ctx, products); err != nil {
		return nil, err
	}
	return products, nil
}

// attachImages loads the images of all given products in one query.
func (r *PgProductRepository) attachImages(ctx context.Context, products []*model.Product) error {
	if len(products) == 0 {
		return nil
	}

	ids := make([]string, len(products))
	byID := make(map[string]*model.Product, len(products))
	for i, p := range products {
		ids[i] = p.ID
		byID[p.ID] = p
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, url, public_id, product_id FROM images WHERE product_id = ANY($1) ORDER BY id`,
		ids,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var img model.Image
		if err := rows.Scan(&img.ID, &img.URL, &img.PublicID, &img.ProductID); err != nil {
			return err
		}
		if p, ok := byID[img.ProductID]; ok {
			p.Images = append(p.Images, img)
		}
	}
	return rows.Err()
}

// GetByID returns one product by primary key with brand, category, images,
// variants and inventory attached, or ErrNotFound.
func (r *PgProductRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+productColumns+"\n"+productJoins+"\nWHERE p.id = $1",
		id,
	)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := r.attachImages(ctx, []*model.Product{p}); err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, name, product_id, created_at, updated_at FROM variants WHERE product_id = $1 ORDER BY created_at`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var v model.Variant
		if err := rows.Scan(&v.ID, &v.Name, &v.ProductID, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		p.Variants = append(p.Variants, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Inventory is optional
	var inv model.Inventory
	err = r.pool.QueryRow(ctx,
		`SELECT id, stock, product_id FROM inventories WHERE product_id = $1`, id,
	).Scan(&inv.ID, &inv.Stock, &inv.ProductID)
	if err == nil {
		p.Inventory = &inv
		inStock := inv.Stock > 0
		p.InStock = &inStock
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	return p, nil
}

// ListPublishedRefs returns id and update time of every published,
// non-archived product.
func (r *PgProductRepository) ListPublishedRefs(ctx context.Context) ([]model.ProductRef, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, updated_at FROM products WHERE status = 'PUBLISHED' AND is_archived = FALSE`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []model.ProductRef
	for rows.Next() {
		var ref model.ProductRef
		if err := rows.Scan(&ref.ID, &ref.UpdatedAt); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

// FindCategoryImage returns the first image of a PUBLISHED product whose
// category name loosely matches nameContains and whose URL contains
// urlContains. Image id ordering keeps the pick stable across calls.
func (r *PgProductRepository) FindCategoryImage(ctx context.Context, nameContains, urlContains string) (*model.Image, error) {
	var img model.Image
	err := r.pool.QueryRow(ctx,
		`SELECT i.id, i.url, i.public_id, i.product_id
		 FROM images i
		 JOIN products p ON p.id = i.product_id
		 JOIN categories c ON c.id = p.category_id
		 WHERE p.status = 'PUBLISHED'
		   AND c.name ILIKE '%' || $1 || '%'
		   AND i.url ILIKE '%' || $2 || '%'
		 ORDER BY i.id
		 LIMIT 1`,
		nameContains, urlContains,
	).Scan(&img.ID, &img.URL, &img.PublicID, &img.ProductID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &img, nil
}
