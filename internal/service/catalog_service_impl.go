package service

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/burhani/backend/internal/model"
	"github.com/burhani/backend/internal/repository"
	"github.com/gosimple/slug"
)

// hostedImageMarker identifies upstream-hosted assets; placeholder images
// seeded for development do not qualify as category highlight pictures.
const hostedImageMarker = "cloudinary"

// highlightTargets are the fixed category entries shown on the home page.
var highlightTargets = []model.CategoryHighlight{
	{Name: "Toggle Clamps", Slug: "toggle-clamps", Description: "Vertical, Horizontal, Push-Pull"},
	{Name: "Handwheels", Slug: "handwheels", Description: "Bakelite, Spoke, Revolving Handles"},
	{Name: "Vibration Mounts", Slug: "vibration-mounts", Description: "Rubber Buffers, Anti-Vibration Pads"},
	{Name: "Control Panel", Slug: "control-panel", Description: "Locks, Hinges, Keys"},
}

// staticRoutes are always present in the sitemap, product data or not.
var staticRoutes = []string{"", "/about", "/products", "/categories", "/brands", "/contact"}

// catalogServiceImpl is the production implementation of CatalogService.
type catalogServiceImpl struct {
	products   repository.ProductRepository
	brands     repository.BrandRepository
	categories repository.CategoryRepository
	baseURL    string
}

// NewCatalogService creates a CatalogService backed by the given
// repositories. baseURL is the public site origin used in sitemap URLs.
func NewCatalogService(products repository.ProductRepository, brands repository.BrandRepository, categories repository.CategoryRepository, baseURL string) CatalogService {
	return &catalogServiceImpl{products: products, brands: brands, categories: categories, baseURL: baseURL}
}

// FeaturedProducts fetches the poolSize newest published products and draws
// a fresh random sample of sampleSize from them, without replacement.
func (s *catalogServiceImpl) FeaturedProducts(ctx context.Context, poolSize, sampleSize int) []*model.Product {
	pool, err := s.products.ListPublished(ctx, model.ProductFilter{Limit: poolSize})
	if err != nil {
		slog.Error("featured products query failed", "error", err)
		return []*model.Product{}
	}

	sample := make([]*model.Product, len(pool))
	copy(sample, pool)
	rand.Shuffle(len(sample), func(i, j int) {
		sample[i], sample[j] = sample[j], sample[i]
	})
	if len(sample) > sampleSize {
		sample = sample[:sampleSize]
	}

	for _, p := range sample {
		attachSlugs(p)
	}
	return sample
}

// CategoryHighlights pairs each fixed entry with the first hosted image of a
// published product in a loosely name-matched category, when one exists.
func (s *catalogServiceImpl) CategoryHighlights(ctx context.Context) []model.CategoryHighlight {
	highlights := make([]model.CategoryHighlight, len(highlightTargets))
	for i, target := range highlightTargets {
		h := target
		img, err := s.products.FindCategoryImage(ctx, target.Name, hostedImageMarker)
		switch {
		case err == nil:
			h.ImageURL = &img.URL
		case !errors.Is(err, repository.ErrNotFound):
			slog.Error("category highlight image lookup failed", "category", target.Name, "error", err)
		}
		highlights[i] = h
	}
	return highlights
}

// ProductByID returns one fully-loaded product, or nil when it does not
// exist or the query fails.
func (s *catalogServiceImpl) ProductByID(ctx context.Context, id string) *model.Product {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			slog.Error("product detail query failed", "id", id, "error", err)
		}
		return nil
	}
	attachSlugs(p)
	return p
}

// ListProducts returns the published catalog filtered by the given slugs.
// Slugs are resolved by slugifying stored names, never by a stored column,
// so list generation and filtering can not drift apart.
func (s *catalogServiceImpl) ListProducts(ctx context.Context, brandSlug, categorySlug string) []*model.Product {
	var f model.ProductFilter

	if brandSlug != "" {
		brand := s.brandBySlug(ctx, brandSlug)
		if brand == nil {
			return []*model.Product{}
		}
		f.BrandID = brand.ID
	}
	if categorySlug != "" {
		category := s.categoryBySlug(ctx, categorySlug)
		if category == nil {
			return []*model.Product{}
		}
		f.CategoryID = category.ID
	}

	products, err := s.products.ListPublished(ctx, f)
	if err != nil {
		slog.Error("product listing query failed", "error", err)
		return []*model.Product{}
	}
	for _, p := range products {
		attachSlugs(p)
	}
	if products == nil {
		products = []*model.Product{}
	}
	return products
}

// Brands returns all brands with derived slugs.
func (s *catalogServiceImpl) Brands(ctx context.Context) []*model.Brand {
	brands, err := s.brands.List(ctx)
	if err != nil {
		slog.Error("brand listing query failed", "error", err)
		return []*model.Brand{}
	}
	for _, b := range brands {
		b.Slug = slug.Make(b.Name)
	}
	return brands
}

// Categories returns all categories with derived slugs.
func (s *catalogServiceImpl) Categories(ctx context.Context) []*model.Category {
	categories, err := s.categories.List(ctx)
	if err != nil {
		slog.Error("category listing query failed", "error", err)
		return []*model.Category{}
	}
	for _, c := range categories {
		c.Slug = slug.Make(c.Name)
	}
	return categories
}

// SitemapEntries returns the static routes plus one /products/{id} entry per
// published product. When the product query fails only the static routes
// are returned; sitemap generation never fails outright.
func (s *catalogServiceImpl) SitemapEntries(ctx context.Context) []model.SitemapEntry {
	now := time.Now()
	entries := make([]model.SitemapEntry, 0, len(staticRoutes))
	for _, route := range staticRoutes {
		priority := 0.8
		if route == "" {
			priority = 1.0
		}
		entries = append(entries, model.SitemapEntry{
			URL:             s.baseURL + route,
			LastModified:    now,
			ChangeFrequency: "weekly",
			Priority:        priority,
		})
	}

	refs, err := s.products.ListPublishedRefs(ctx)
	if err != nil {
		slog.Error("sitemap product query failed", "error", err)
		return entries
	}
	for _, ref := range refs {
		entries = append(entries, model.SitemapEntry{
			URL:             s.baseURL + "/products/" + ref.ID,
			LastModified:    ref.UpdatedAt,
			ChangeFrequency: "weekly",
			Priority:        0.9,
		})
	}
	return entries
}

func (s *catalogServiceImpl) brandBySlug(ctx context.Context, wanted string) *model.Brand {
	brands, err := s.brands.List(ctx)
	if err != nil {
		slog.Error("brand slug resolution failed", "slug", wanted, "error", err)
		return nil
	}
	for _, b := range brands {
		if slug.Make(b.Name) == wanted {
			return b
		}
	}
	return nil
}

func (s *catalogServiceImpl) categoryBySlug(ctx context.Context, wanted string) *model.Category {
	categories, err := s.categories.List(ctx)
	if err != nil {
		slog.Error("category slug resolution failed", "slug", wanted, "error", err)
		return nil
	}
	for _, c := range categories {
		if slug.Make(c.Name) == wanted {
			return c
		}
	}
	return nil
}

// attachSlugs populates the derived slug of a product's brand and category.
func attachSlugs(p *model.Product) {
	if p.Brand != nil {
		p.Brand.Slug = slug.Make(p.Brand.Name)
	}
	if p.Category != nil {
		p.Category.Slug = slug.Make(p.Category.Name)
	}
}
