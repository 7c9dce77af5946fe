package model

import "time"

// ContactMessage is a visitor enquiry captured from the contact form or a
// per-product enquiry popup. Immutable once created. The schema has no
// subject column; when a subject is supplied it is prepended into Message.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
