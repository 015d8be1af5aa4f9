package notify

import (
	"context"
	"fmt"
	"html"
	"net/smtp"
	"strings"

	"github.com/quantwatch/quantwatch/internal/config"
)

const mimeBoundary = "quantwatch-digest"

// EmailDeliverer sends digests over SMTP with STARTTLS, carrying both a
// plain-text and an HTML-wrapped body.
type EmailDeliverer struct {
	email config.EmailConfig
	// send is the SMTP call, replaceable in tests.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewEmailDeliverer creates an EmailDeliverer for a complete email
// configuration.
func NewEmailDeliverer(email config.EmailConfig) *EmailDeliverer {
	return &EmailDeliverer{email: email, send: smtp.SendMail}
}

// Deliver sends one digest email.
func (d *EmailDeliverer) Deliver(_ context.Context, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", d.email.Server(), d.email.Port())
	auth := smtp.PlainAuth("", d.email.Sender(), d.email.Password(), d.email.Server())

	msg := buildMessage(d.email.Sender(), d.email.Recipient(), subject, body)
	if err := d.send(addr, auth, d.email.Sender(), []string{d.email.Recipient()}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// buildMessage assembles a multipart/alternative message with the plain
// body and a preformatted HTML rendering of it.
func buildMessage(from, to, subject, body string) []byte {
	var sb strings.Builder
	sb.WriteString("From: " + from + "\r\n")
	sb.WriteString("To: " + to + "\r\n")
	sb.WriteString("Subject: " + subject + "\r\n")
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: multipart/alternative; boundary=" + mimeBoundary + "\r\n")
	sb.WriteString("\r\n")

	sb.WriteString("--" + mimeBoundary + "\r\n")
	sb.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	sb.WriteString(body)
	sb.WriteString("\r\n")

	sb.WriteString("--" + mimeBoundary + "\r\n")
	sb.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	sb.WriteString("<html><body><pre>")
	sb.WriteString(html.EscapeString(body))
	sb.WriteString("</pre></body></html>\r\n")

	sb.WriteString("--" + mimeBoundary + "--\r\n")
	return []byte(sb.String())
}
