package mailer

import (
	"context"
	"strings"
	"testing"
)

func testConfig() Config {
	return Config{
		Host:     "smtp.example.com",
		Port:     "587",
		Username: "relay@example.com",
		Password: "secret",
		From:     "relay@example.com",
		FromName: "Burhani Associates Website",
		To:       "ops@example.com",
	}
}

func TestMailer_Enabled(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{"both set", "relay@example.com", "secret", true},
		{"missing username", "", "secret", false},
		{"missing password", "relay@example.com", "", false},
		{"neither set", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Username = tt.username
			cfg.Password = tt.password
			if got := New(cfg).Enabled(); got != tt.want {
				t.Errorf("Enabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMailer_Send_WithoutCredentials(t *testing.T) {
	cfg := testConfig()
	cfg.Username = ""
	cfg.Password = ""

	err := New(cfg).Send(context.Background(), "subject", "text", "<p>html</p>")
	if err == nil {
		t.Error("expected error when credentials are not configured")
	}
}

func TestMailer_Send_WithoutRecipient(t *testing.T) {
	cfg := testConfig()
	cfg.To = ""

	err := New(cfg).Send(context.Background(), "subject", "text", "<p>html</p>")
	if err == nil {
		t.Error("expected error when recipient is not configured")
	}
}

func TestMailer_Send_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := New(testConfig()).Send(ctx, "subject", "text", "<p>html</p>")
	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestMailer_BuildRaw(t *testing.T) {
	m := New(testConfig())

	raw, err := m.buildRaw("New Enquiry from Alice", "Name: Alice\n", "<h3>New Website Enquiry</h3>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	msg := string(raw)

	for _, want := range []string{
		"From: Burhani Associates Website <relay@example.com>\r\n",
		"To: ops@example.com\r\n",
		"Subject: New Enquiry from Alice\r\n",
		"MIME-Version: 1.0\r\n",
		`Content-Type: multipart/alternative; boundary=`,
		`text/plain; charset="UTF-8"`,
		`text/html; charset="UTF-8"`,
		"Name: Alice\n",
		"<h3>New Website Enquiry</h3>",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected message to contain %q", want)
		}
	}

	// Plain text must precede HTML in a multipart/alternative body.
	if strings.Index(msg, "text/plain") > strings.Index(msg, "text/html") {
		t.Error("expected text/plain part before text/html part")
	}
}

func TestMailer_BuildRaw_BareFromAddress(t *testing.T) {
	cfg := testConfig()
	cfg.FromName = ""
	m := New(cfg)

	raw, err := m.buildRaw("subject", "text", "<p>html</p>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(raw), "From: relay@example.com\r\n") {
		t.Error("expected bare from address without display name")
	}
}
