// Package mailer delivers operator notification emails over SMTP.
//
// The mail relay is strictly best-effort infrastructure: callers are
// expected to treat every error from Send as log-and-continue.
package mailer

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"mime/multipart"
	"net/smtp"
	"net/textproto"
	"strings"
)

// Config holds SMTP connection settings and the fixed operator recipient.
type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	FromName string
	To       string
}

// Mailer sends notification emails to a single operator address.
type Mailer struct {
	cfg Config
}

// New creates a Mailer with the given configuration.
func New(cfg Config) *Mailer {
	return &Mailer{cfg: cfg}
}

// Enabled reports whether relay credentials are configured. When false,
// callers skip sending instead of attempting a doomed delivery.
func (m *Mailer) Enabled() bool {
	return m.cfg.Username != "" && m.cfg.Password != ""
}

// Send delivers a text+HTML email to the operator address.
func (m *Mailer) Send(ctx context.Context, subject, text, html string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !m.Enabled() {
		return fmt.Errorf("mailer: relay credentials not configured")
	}
	if m.cfg.To == "" {
		return fmt.Errorf("mailer: recipient address not configured")
	}

	raw, err := m.buildRaw(subject, text, html)
	if err != nil {
		return err
	}

	addr := m.cfg.Host + ":" + m.cfg.Port
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)

	// Implicit TLS on 465, STARTTLS on 587/25.
	if m.cfg.Port == "465" {
		return m.sendTLS(addr, auth, raw)
	}
	return smtp.SendMail(addr, auth, m.cfg.From, []string{m.cfg.To}, raw)
}

func (m *Mailer) sendTLS(addr string, auth smtp.Auth, raw []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: m.cfg.Host})
	if err != nil {
		return fmt.Errorf("mailer: TLS dial: %w", err)
	}
	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		return err
	}
	defer client.Quit()

	if err := client.Auth(auth); err != nil {
		return err
	}
	if err := client.Mail(m.cfg.From); err != nil {
		return err
	}
	if err := client.Rcpt(m.cfg.To); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	defer w.Close()
	_, err = w.Write(raw)
	return err
}

// buildRaw assembles a multipart/alternative message with plain-text and
// HTML renditions of the body.
func (m *Mailer) buildRaw(subject, text, html string) ([]byte, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	plain, err := mw.CreatePart(textproto.MIMEHeader{
		"Content-Type": {`text/plain; charset="UTF-8"`},
	})
	if err != nil {
		return nil, err
	}
	if _, err := plain.Write([]byte(text)); err != nil {
		return nil, err
	}

	rich, err := mw.CreatePart(textproto.MIMEHeader{
		"Content-Type": {`text/html; charset="UTF-8"`},
	})
	if err != nil {
		return nil, err
	}
	if _, err := rich.Write([]byte(html)); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	from := m.cfg.From
	if m.cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", m.cfg.FromName, m.cfg.From)
	}

	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + m.cfg.To + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=%q\r\n", mw.Boundary()))
	b.WriteString("\r\n")
	b.Write(body.Bytes())
	return []byte(b.String()), nil
}
