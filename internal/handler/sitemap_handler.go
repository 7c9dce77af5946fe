package handler

import (
	"encoding/json"
	"net/http"

	"github.com/burhani/backend/internal/service"
)

// SitemapHandler serves the sitemap entry sequence.
type SitemapHandler struct {
	catalogService service.CatalogService
}

// NewSitemapHandler creates a SitemapHandler with the given service.
func NewSitemapHandler(catalogService service.CatalogService) *SitemapHandler {
	return &SitemapHandler{catalogService: catalogService}
}

// Get handles GET /api/sitemap. The static routes are always present; on
// backend degradation the product entries are simply missing.
func (h *SitemapHandler) Get(w http.ResponseWriter, r *http.Request) {
	entries := h.catalogService.SitemapEntries(r.Context())

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(entries)
}
