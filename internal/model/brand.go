package model

import "time"

// Brand is a manufacturer whose products appear in the catalog.
type Brand struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ImageURL  *string   `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Transient: derived from Name at read time, never stored
	Slug string `json:"slug,omitempty"`
}
