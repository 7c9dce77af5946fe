package handler

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/burhani/backend/internal/model"
	"github.com/burhani/backend/internal/service"
)

// Featured selection parameters: fetch up to featuredPoolSize recent
// products and sample featuredSampleSize of them per request.
const (
	featuredPoolSize   = 24
	featuredSampleSize = 10
)

// CatalogHandler serves the public catalog read endpoints.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a CatalogHandler with the given service.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

type productListResponse struct {
	Products []*model.Product `json:"products"`
}

// List handles GET /api/products. Supports brand and category query
// parameters carrying derived slugs.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	brandSlug := r.URL.Query().Get("brand")
	categorySlug := r.URL.Query().Get("category")

	products := h.catalogService.ListProducts(r.Context(), brandSlug, categorySlug)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(productListResponse{Products: products})
}

// Featured handles GET /api/products/featured.
func (h *CatalogHandler) Featured(w http.ResponseWriter, r *http.Request) {
	products := h.catalogService.FeaturedProducts(r.Context(), featuredPoolSize, featuredSampleSize)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(productListResponse{Products: products})
}

// Get handles GET /api/products/{id}. An absent product is a JSON 404, not
// an error page.
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	product := h.catalogService.ProductByID(r.Context(), r.PathValue("id"))
	if product == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "product_not_found"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(product)
}

// Brands handles GET /api/brands.
func (h *CatalogHandler) Brands(w http.ResponseWriter, r *http.Request) {
	brands := h.catalogService.Brands(r.Context())
	if brands == nil {
		brands = []*model.Brand{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string][]*model.Brand{"brands": brands})
}

// Categories handles GET /api/categories.
func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories := h.catalogService.Categories(r.Context())
	if categories == nil {
		categories = []*model.Category{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string][]*model.Category{"categories": categories})
}

// Highlights handles GET /api/categories/highlights.
func (h *CatalogHandler) Highlights(w http.ResponseWriter, r *http.Request) {
	highlights := h.catalogService.CategoryHighlights(r.Context())

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string][]model.CategoryHighlight{"categories": highlights})
}

// BrandRedirect handles GET /api/brands/{slug}. Brand deep links resolve to
// the filtered listing, even when the slug matches nothing.
func (h *CatalogHandler) BrandRedirect(w http.ResponseWriter, r *http.Request) {
	redirectToListing(w, r, "brand", r.PathValue("slug"))
}

// CategoryRedirect handles GET /api/categories/{slug}.
func (h *CatalogHandler) CategoryRedirect(w http.ResponseWriter, r *http.Request) {
	redirectToListing(w, r, "category", r.PathValue("slug"))
}

func redirectToListing(w http.ResponseWriter, r *http.Request, param, slug string) {
	http.Redirect(w, r, "/api/products?"+param+"="+url.QueryEscape(slug), http.StatusTemporaryRedirect)
}
