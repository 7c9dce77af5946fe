package service

import (
	"context"
	"fmt"
	"html"
	"log/slog"

	"github.com/burhani/backend/internal/model"
	"github.com/burhani/backend/internal/repository"
)

// enquiryServiceImpl is the production implementation of EnquiryService.
type enquiryServiceImpl struct {
	contacts repository.ContactRepository
	products repository.ProductRepository
	notifier Notifier
}

// NewEnquiryService creates an EnquiryService backed by the given
// repositories. notifier may be nil, in which case notifications are
// always skipped.
func NewEnquiryService(contacts repository.ContactRepository, products repository.ProductRepository, notifier Notifier) EnquiryService {
	return &enquiryServiceImpl{contacts: contacts, products: products, notifier: notifier}
}

// Submit persists the enquiry and then attempts the operator notification.
// Persistence failure is the only error path; once the row is written the
// submission has succeeded regardless of what the mail relay does.
func (s *enquiryServiceImpl) Submit(ctx context.Context, e Enquiry) error {
	body := e.Message
	if e.Subject != "" {
		body = "Subject: " + e.Subject + "\n\n" + e.Message
	}

	msg := &model.ContactMessage{
		Name:    e.Name,
		Email:   e.Email,
		Message: body,
	}
	if e.Phone != "" {
		msg.Phone = &e.Phone
	}

	if err := s.contacts.Save(ctx, msg); err != nil {
		return err
	}

	s.notify(ctx, e)
	return nil
}

// SubmitProduct loads the product and runs Submit with a synthesized
// subject and message body.
func (s *enquiryServiceImpl) SubmitProduct(ctx context.Context, productID string, e ProductEnquiry) error {
	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return err
	}

	company := e.Company
	if company == "" {
		company = "N/A"
	}

	enquiry := e.Enquiry
	enquiry.Subject = "Product Enquiry: " + p.Name
	enquiry.Message = "Enquiry for: " + p.Name + "\n\nCompany: " + company + "\n\n" + e.Message
	return s.Submit(ctx, enquiry)
}

// notify sends the operator email. Failures end here: they are logged and
// never surface to the submitter.
func (s *enquiryServiceImpl) notify(ctx context.Context, e Enquiry) {
	if s.notifier == nil || !s.notifier.Enabled() {
		slog.Warn("mail relay not configured, enquiry notification skipped", "email", e.Email)
		return
	}

	subject := "New Enquiry from " + e.Name
	if e.Subject != "" {
		subject += ": " + e.Subject
	}

	phone := e.Phone
	if phone == "" {
		phone = "Not provided"
	}

	text := fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\n\nMessage:\n%s\n",
		e.Name, e.Email, phone, e.Message)

	htmlBody := fmt.Sprintf(`<h3>New Website Enquiry</h3>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
<br/>
<p><strong>Message:</strong></p>
<p style="white-space: pre-wrap;">%s</p>`,
		html.EscapeString(e.Name), html.EscapeString(e.Email), html.EscapeString(phone), html.EscapeString(e.Message))

	if err := s.notifier.Send(ctx, subject, text, htmlBody); err != nil {
		slog.Error("enquiry notification failed", "email", e.Email, "error", err)
	}
}
