package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cjrsolutions/cjrweb/internal/domain"
)

// MailtoSubmitter hands the message to the visitor's own mail client. It
// never touches the network; the browser navigates to the returned URI.
type MailtoSubmitter struct {
	recipient string
}

// Submit implements domain.ContactSubmitter.
func (s *MailtoSubmitter) Submit(ctx context.Context, form domain.ContactForm) (domain.SubmitResult, error) {
	if s.recipient == "" {
		return domain.SubmitResult{}, fmt.Errorf("mailto delivery has no recipient")
	}
	return domain.SubmitResult{
		ComposeURI: ComposeMailto(s.recipient, form.Subject(), form.PlainBody()),
	}, nil
}

// LogSender prints inquiries to the log instead of sending them. Meant for
// development.
type LogSender struct {
	recipient string
}

// Submit implements domain.ContactSubmitter.
func (s *LogSender) Submit(ctx context.Context, form domain.ContactForm) (domain.SubmitResult, error) {
	slog.InfoContext(ctx, "--- Contact Inquiry (Logged) ---",
		"to", s.recipient,
		"reply_to", form.Email,
		"subject", form.Subject(),
		"body", form.PlainBody(),
	)
	return domain.SubmitResult{Delivered: true}, nil
}

// DefaultResendEndpoint is the Resend e-mail API.
const DefaultResendEndpoint = "https://api.resend.com/emails"

// ResendSender sends inquiries through the Resend API.
type ResendSender struct {
	apiKey        string
	senderAddress string
	recipient     string
	endpoint      string
	client        *http.Client
}

type resendPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

// Submit implements domain.ContactSubmitter.
func (s *ResendSender) Submit(ctx context.Context, form domain.ContactForm) (domain.SubmitResult, error) {
	sender := s.senderAddress
	if sender == "" {
		sender = "CJR Solutions <onboarding@resend.dev>"
	}

	body, err := json.Marshal(resendPayload{
		From:    sender,
		To:      []string{s.recipient},
		ReplyTo: form.Email,
		Subject: form.Subject(),
		Text:    form.PlainBody(),
	})
	if err != nil {
		return domain.SubmitResult{}, fmt.Errorf("failed to marshal resend payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return domain.SubmitResult{}, fmt.Errorf("failed to create resend request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return domain.SubmitResult{}, fmt.Errorf("failed to send request to resend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return domain.SubmitResult{}, fmt.Errorf("resend API returned an error: status %d", resp.StatusCode)
	}

	slog.InfoContext(ctx, "Successfully sent contact inquiry via Resend", "to", s.recipient, "subject", form.Subject())
	return domain.SubmitResult{Delivered: true}, nil
}

// NewResendSender builds a ResendSender. An empty endpoint uses
// DefaultResendEndpoint.
func NewResendSender(apiKey, sender, recipient, endpoint string) *ResendSender {
	if endpoint == "" {
		endpoint = DefaultResendEndpoint
	}
	return &ResendSender{
		apiKey:        apiKey,
		senderAddress: sender,
		recipient:     recipient,
		endpoint:      endpoint,
		client:        &http.Client{Timeout: 10 * time.Second},
	}
}
