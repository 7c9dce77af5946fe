package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/burhani/backend/internal/repository"
	"github.com/burhani/backend/internal/service"
)

// ContactHandler handles contact form and per-product enquiry submissions.
type ContactHandler struct {
	enquiryService service.EnquiryService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(enquiryService service.EnquiryService) *ContactHandler {
	return &ContactHandler{enquiryService: enquiryService}
}

// submitRequest is the expected JSON body for POST /api/contact and
// POST /api/products/{id}/enquiry.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Company string `json:"company"`
	Message string `json:"message"`
}

// submitResponse is the envelope every submission endpoint answers with.
type submitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Submit handles POST /api/contact.
// name, email and message are required; phone and subject are optional.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeAndValidate(w, r)
	if !ok {
		return
	}

	err := h.enquiryService.Submit(r.Context(), service.Enquiry{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	h.respond(w, err)
}

// ProductEnquiry handles POST /api/products/{id}/enquiry.
func (h *ContactHandler) ProductEnquiry(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeAndValidate(w, r)
	if !ok {
		return
	}

	err := h.enquiryService.SubmitProduct(r.Context(), r.PathValue("id"), service.ProductEnquiry{
		Enquiry: service.Enquiry{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Message: req.Message,
		},
		Company: req.Company,
	})
	if errors.Is(err, repository.ErrNotFound) {
		writeSubmitResponse(w, http.StatusNotFound, submitResponse{Success: false, Message: "Product not found"})
		return
	}
	h.respond(w, err)
}

// decodeAndValidate parses the body and enforces the required fields.
// Validation failures are reported to the caller and nothing is persisted.
func (h *ContactHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request) (submitRequest, bool) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeSubmitResponse(w, http.StatusBadRequest, submitResponse{Success: false, Message: "Invalid JSON body"})
		return req, false
	}

	if req.Name == "" {
		writeSubmitResponse(w, http.StatusBadRequest, submitResponse{Success: false, Message: "Name is required"})
		return req, false
	}
	if req.Email == "" {
		writeSubmitResponse(w, http.StatusBadRequest, submitResponse{Success: false, Message: "Email is required"})
		return req, false
	}
	if req.Message == "" {
		writeSubmitResponse(w, http.StatusBadRequest, submitResponse{Success: false, Message: "Message is required"})
		return req, false
	}

	return req, true
}

// respond maps the service outcome: persistence failure is the only
// internal error; a persisted enquiry is a success no matter what the mail
// relay did.
func (h *ContactHandler) respond(w http.ResponseWriter, err error) {
	if err != nil {
		writeSubmitResponse(w, http.StatusInternalServerError, submitResponse{Success: false, Message: "Failed to send message"})
		return
	}
	writeSubmitResponse(w, http.StatusCreated, submitResponse{Success: true, Message: "Message sent successfully"})
}

func writeSubmitResponse(w http.ResponseWriter, status int, resp submitResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
