package model

import "time"

// Category groups products for browsing and filtering.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Transient: derived from Name at read time, never stored
	Slug string `json:"slug,omitempty"`
}

// CategoryHighlight is a fixed home-page display entry for a category,
// paired with a representative product image when one exists.
type CategoryHighlight struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description string  `json:"description"`
	ImageURL    *string `json:"image_url"`
}
