package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/burhani/backend/internal/repository"
	"github.com/burhani/backend/internal/service"
)

// ---------------------------------------------------------------------------
// Mock enquiry service
// ---------------------------------------------------------------------------

type mockEnquiryService struct {
	submitFunc        func(ctx context.Context, e service.Enquiry) error
	submitProductFunc func(ctx context.Context, productID string, e service.ProductEnquiry) error
}

func (m *mockEnquiryService) Submit(ctx context.Context, e service.Enquiry) error {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, e)
	}
	return nil
}

func (m *mockEnquiryService) SubmitProduct(ctx context.Context, productID string, e service.ProductEnquiry) error {
	if m.submitProductFunc != nil {
		return m.submitProductFunc(ctx, productID, e)
	}
	return nil
}

var _ service.EnquiryService = (*mockEnquiryService)(nil)

func contactMux(h *ContactHandler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/contact", h.Submit)
	mux.HandleFunc("POST /api/products/{id}/enquiry", h.ProductEnquiry)
	return mux
}

func postJSON(t *testing.T, mux *http.ServeMux, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decodeSubmitResponse(t *testing.T, rec *httptest.ResponseRecorder) submitResponse {
	t.Helper()
	var resp submitResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp
}

// ---------------------------------------------------------------------------
// Submit tests
// ---------------------------------------------------------------------------

func TestContactHandler_Submit_Success(t *testing.T) {
	var got service.Enquiry
	mock := &mockEnquiryService{
		submitFunc: func(ctx context.Context, e service.Enquiry) error {
			got = e
			return nil
		},
	}
	mux := contactMux(NewContactHandler(mock))

	rec := postJSON(t, mux, "/api/contact",
		`{"name":"Alice","email":"alice@example.com","phone":"9876543210","subject":"Bulk order","message":"Need 500 units."}`)

	if rec.Code != http.StatusCreated {
		t.Errorf("expected status 201, got %d", rec.Code)
	}
	resp := decodeSubmitResponse(t, rec)
	if !resp.Success || resp.Message != "Message sent successfully" {
		t.Errorf("unexpected response %+v", resp)
	}
	if got.Name != "Alice" || got.Subject != "Bulk order" || got.Phone != "9876543210" {
		t.Errorf("unexpected enquiry forwarded to service: %+v", got)
	}
}

func TestContactHandler_Submit_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"invalid JSON", `{"name":`, "Invalid JSON body"},
		{"missing name", `{"email":"a@example.com","message":"hi"}`, "Name is required"},
		{"missing email", `{"name":"Alice","message":"hi"}`, "Email is required"},
		{"missing message", `{"name":"Alice","email":"a@example.com"}`, "Message is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			submitCalled := false
			mock := &mockEnquiryService{
				submitFunc: func(ctx context.Context, e service.Enquiry) error {
					submitCalled = true
					return nil
				},
			}
			mux := contactMux(NewContactHandler(mock))

			rec := postJSON(t, mux, "/api/contact", tt.body)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", rec.Code)
			}
			resp := decodeSubmitResponse(t, rec)
			if resp.Success {
				t.Error("expected success=false")
			}
			if resp.Message != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, resp.Message)
			}
			if submitCalled {
				t.Error("expected nothing forwarded to the service")
			}
		})
	}
}

// TestContactHandler_Submit_LongMessage verifies message length is not
// validated: any non-empty message is forwarded intact.
func TestContactHandler_Submit_LongMessage(t *testing.T) {
	long := strings.Repeat("x", 10000)
	var got service.Enquiry
	mock := &mockEnquiryService{
		submitFunc: func(ctx context.Context, e service.Enquiry) error {
			got = e
			return nil
		},
	}
	mux := contactMux(NewContactHandler(mock))

	rec := postJSON(t, mux, "/api/contact",
		`{"name":"Alice","email":"a@example.com","message":"`+long+`"}`)

	if rec.Code != http.StatusCreated {
		t.Errorf("expected status 201, got %d", rec.Code)
	}
	if got.Message != long {
		t.Errorf("expected the full message forwarded, got %d characters", len(got.Message))
	}
}

func TestContactHandler_Submit_ServiceFailure(t *testing.T) {
	mock := &mockEnquiryService{
		submitFunc: func(ctx context.Context, e service.Enquiry) error {
			return errors.New("connection refused")
		},
	}
	mux := contactMux(NewContactHandler(mock))

	rec := postJSON(t, mux, "/api/contact", `{"name":"Alice","email":"a@example.com","message":"hi"}`)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", rec.Code)
	}
	resp := decodeSubmitResponse(t, rec)
	if resp.Success || resp.Message != "Failed to send message" {
		t.Errorf("unexpected response %+v", resp)
	}
}

// ---------------------------------------------------------------------------
// ProductEnquiry tests
// ---------------------------------------------------------------------------

func TestContactHandler_ProductEnquiry_Success(t *testing.T) {
	var gotID string
	var gotEnquiry service.ProductEnquiry
	mock := &mockEnquiryService{
		submitProductFunc: func(ctx context.Context, productID string, e service.ProductEnquiry) error {
			gotID = productID
			gotEnquiry = e
			return nil
		},
	}
	mux := contactMux(NewContactHandler(mock))

	rec := postJSON(t, mux, "/api/products/prod-clamp-01/enquiry",
		`{"name":"Bob","email":"bob@example.com","company":"Acme Tools","message":"Price for 100 pcs?"}`)

	if rec.Code != http.StatusCreated {
		t.Errorf("expected status 201, got %d", rec.Code)
	}
	if gotID != "prod-clamp-01" {
		t.Errorf("expected product id from path, got %q", gotID)
	}
	if gotEnquiry.Company != "Acme Tools" || gotEnquiry.Name != "Bob" {
		t.Errorf("unexpected enquiry %+v", gotEnquiry)
	}
}

func TestContactHandler_ProductEnquiry_UnknownProduct(t *testing.T) {
	mock := &mockEnquiryService{
		submitProductFunc: func(ctx context.Context, productID string, e service.ProductEnquiry) error {
			return repository.ErrNotFound
		},
	}
	mux := contactMux(NewContactHandler(mock))

	rec := postJSON(t, mux, "/api/products/missing/enquiry",
		`{"name":"Bob","email":"bob@example.com","message":"Price?"}`)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
	resp := decodeSubmitResponse(t, rec)
	if resp.Success || resp.Message != "Product not found" {
		t.Errorf("unexpected response %+v", resp)
	}
}
