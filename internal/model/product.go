package model

import "time"

// Product publication states. Only PUBLISHED, non-archived products are
// visible to catalog browsing.
const (
	StatusDraft     = "DRAFT"
	StatusPublished = "PUBLISHED"
)

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	IsArchived  bool      `json:"is_archived"`
	BrandID     *string   `json:"brand_id,omitempty"`
	CategoryID  string    `json:"category_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Brand     *Brand     `json:"brand,omitempty"`
	Category  *Category  `json:"category,omitempty"`
	Images    []Image    `json:"images,omitempty"`
	Variants  []Variant  `json:"variants,omitempty"`
	Inventory *Inventory `json:"inventory,omitempty"`

	// Transient: stock > 0, set only when Inventory is loaded
	InStock *bool `json:"in_stock,omitempty"`
}

// Image is an upstream-hosted product photo. It is owned exclusively by one
// product and is removed with it.
type Image struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	PublicID  string `json:"public_id"`
	ProductID string `json:"product_id"`
}

// Inventory tracks the stock count of a single product.
type Inventory struct {
	ID        string `json:"id"`
	Stock     int    `json:"stock"`
	ProductID string `json:"product_id"`
}

// Variant is a named variation of a product (size, finish, ...). The public
// catalog only lists variants; they carry no pricing of their own.
type Variant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ProductID string    `json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductRef is the minimal projection used for sitemap generation.
type ProductRef struct {
	ID        string
	UpdatedAt time.Time
}

// ProductFilter narrows a published-products listing. Empty fields match
// everything; Limit <= 0 means no limit.
type ProductFilter struct {
	BrandID    string
	CategoryID string
	Limit      int
}
