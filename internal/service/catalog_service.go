package service

import (
	"context"

	"github.com/burhani/backend/internal/model"
)

// CatalogService produces display-ready projections of catalog data. Public
// reads never include unpublished or archived products.
//
// Availability beats error reporting on this path: a query failure is logged
// and surfaced to the caller as an empty slice or nil result, so catalog
// pages keep rendering (as an empty state) while the backend degrades.
type CatalogService interface {
	// FeaturedProducts fetches up to poolSize of the newest published
	// products and returns a uniformly random sample of at most sampleSize
	// of them, re-drawn on every call.
	FeaturedProducts(ctx context.Context, poolSize, sampleSize int) []*model.Product

	// CategoryHighlights returns the fixed home-page category entries, each
	// with a representative hosted product image when one exists.
	CategoryHighlights(ctx context.Context) []model.CategoryHighlight

	// ProductByID returns one product with brand, category, images, variants
	// and inventory, or nil when absent.
	ProductByID(ctx context.Context, id string) *model.Product

	// ListProducts returns the published catalog, optionally filtered by
	// brand and/or category slug. An unknown slug matches nothing.
	ListProducts(ctx context.Context, brandSlug, categorySlug string) []*model.Product

	// Brands returns all brands with derived slugs attached.
	Brands(ctx context.Context) []*model.Brand

	// Categories returns all categories with derived slugs attached.
	Categories(ctx context.Context) []*model.Category

	// SitemapEntries returns the static site routes plus one entry per
	// published product. The static routes are always present.
	SitemapEntries(ctx context.Context) []model.SitemapEntry
}
