package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"aquaseal/internal/config"
	"aquaseal/internal/model"
)

// ErrDeliveryFailed is returned when the mail provider rejected the message
// or is not configured. The caller must resubmit; there are no retries.
var ErrDeliveryFailed = errors.New("delivery failed")

// Sender delivers a contact submission to the office inbox
type Sender interface {
	Send(ctx context.Context, req *model.ContactRequest) error
}

// Mailer sends contact notifications through an HTTP email-delivery API
// (Resend-compatible: POST /emails with a bearer key).
type Mailer struct {
	cfg        *config.MailConfig
	httpClient *http.Client
}

// NewMailer creates a new mail client
func NewMailer(cfg *config.MailConfig) *Mailer {
	return &Mailer{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

// IsEnabled returns whether the client is configured and ready
func (m *Mailer) IsEnabled() bool {
	return m.cfg.Enabled
}

// emailRequest is the provider's message payload
type emailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

// Send delivers one contact submission
func (m *Mailer) Send(ctx context.Context, req *model.ContactRequest) error {
	if !m.cfg.Enabled {
		return fmt.Errorf("%w: mail provider is not configured", ErrDeliveryFailed)
	}

	payload := emailRequest{
		From:    m.cfg.From,
		To:      []string{m.cfg.To},
		ReplyTo: req.Email,
		Subject: fmt.Sprintf("Website inquiry: %s (%s)", req.Service, req.Name),
		Text:    formatInquiry(req),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.APIBase+"/emails", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+m.cfg.APIKey)

	resp, err := m.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: provider returned %d: %s", ErrDeliveryFailed, resp.StatusCode, respBody)
	}

	return nil
}

// formatInquiry renders the notification body sent to the office
func formatInquiry(req *model.ContactRequest) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Name: %s\nPhone: %s\n", req.Name, req.Phone)
	if req.Email != "" {
		fmt.Fprintf(&buf, "Email: %s\n", req.Email)
	}
	fmt.Fprintf(&buf, "Service: %s\n", req.Service)
	if req.AreaSqm != nil {
		fmt.Fprintf(&buf, "Area: %.0f sqm\n", *req.AreaSqm)
	}
	if req.Message != "" {
		fmt.Fprintf(&buf, "\n%s\n", req.Message)
	}
	return buf.String()
}
