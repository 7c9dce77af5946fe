package repository

import (
	"context"

	"github.com/burhani/backend/internal/model"
)

// ProductRepository is the persistence interface for catalog products.
// Every read through it sees only the public catalog: status PUBLISHED and
// not archived, except GetByID which fetches by primary key regardless of
// status (the service decides what to expose).
type ProductRepository interface {
	// ListPublished returns published, non-archived products newest first,
	// with brand, category and images attached.
	ListPublished(ctx context.Context, f model.ProductFilter) ([]*model.Product, error)

	// GetByID returns one product with brand, category, images, variants and
	// inventory attached, or ErrNotFound.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// ListPublishedRefs returns id and update time of every published,
	// non-archived product, for sitemap generation.
	ListPublishedRefs(ctx context.Context) ([]model.ProductRef, error)

	// FindCategoryImage returns the first image (by image id) of a PUBLISHED
	// product whose category name contains nameContains (case-insensitive)
	// and whose URL contains urlContains (case-insensitive), or ErrNotFound.
	FindCategoryImage(ctx context.Context, nameContains, urlContains string) (*model.Image, error)
}

// BrandRepository is the persistence interface for brands.
type BrandRepository interface {
	List(ctx context.Context) ([]*model.Brand, error)
}

// CategoryRepository is the persistence interface for categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]*model.Category, error)
}

// ContactRepository is the persistence interface for contact messages.
type ContactRepository interface {
	Save(ctx context.Context, msg *model.ContactMessage) error
}
