package service

import "context"

// Enquiry is a validated contact submission. Name, Email and Message are
// required by the time it reaches the service; Phone and Subject are
// optional.
type Enquiry struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// ProductEnquiry is an enquiry about a specific product, with an optional
// company name.
type ProductEnquiry struct {
	Enquiry
	Company string
}

// EnquiryService persists visitor enquiries and best-effort notifies the
// operator by email. A returned error always means the message was not
// persisted; notification failures are logged and swallowed, since the
// message is already durable by then.
type EnquiryService interface {
	// Submit stores the enquiry as a ContactMessage. When a subject is
	// present it is prepended into the stored body as
	// "Subject: <subject>\n\n<message>" (the schema has no subject column).
	Submit(ctx context.Context, e Enquiry) error

	// SubmitProduct runs the same pipeline with subject and message
	// synthesized from the named product. Returns repository.ErrNotFound
	// when the product does not exist.
	SubmitProduct(ctx context.Context, productID string, e ProductEnquiry) error
}

// Notifier delivers operator notification emails. An implementation reports
// whether it is configured; sending through an unconfigured notifier is
// skipped rather than attempted.
type Notifier interface {
	Enabled() bool
	Send(ctx context.Context, subject, text, html string) error
}
