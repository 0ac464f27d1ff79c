package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"
)

// Message is the payload posted to the automation webhook (N8N). The
// workflow behind the URL owns the actual WhatsApp/SMS templating.
type Message struct {
	Kind             string   `json:"kind"`
	AppointmentID    string   `json:"appointment_id"`
	ClientName       string   `json:"client_name"`
	Phone            string   `json:"phone"`
	ProfessionalName string   `json:"professional_name,omitempty"`
	Date             string   `json:"date,omitempty"`
	Start            string   `json:"start,omitempty"`
	Services         []string `json:"services,omitempty"`
	TotalValue       float64  `json:"total_value,omitempty"`
}

type Sender interface {
	Send(ctx context.Context, url string, msg Message) error
	ProviderID() string
}

// HTTPSender posts messages with a single best-effort attempt. Delivery
// failures are recorded, not retried; the next cron pass will not resend
// a notification that was already marked sent.
type HTTPSender struct {
	token string
	http  *http.Client
}

func NewHTTPSender(token string) *HTTPSender {
	return &HTTPSender{
		token: strings.TrimSpace(token),
		http: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

func (s *HTTPSender) ProviderID() string {
	return "n8n-webhook"
}

func (s *HTTPSender) Send(ctx context.Context, url string, msg Message) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return errors.New("webhook url not configured")
	}
	raw, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.New("webhook returned non-2xx")
	}
	return nil
}

type NoopSender struct{}

func NewNoopSender() *NoopSender {
	return &NoopSender{}
}

func (s *NoopSender) ProviderID() string {
	return "noop"
}

func (s *NoopSender) Send(_ context.Context, _ string, _ Message) error {
	return nil
}
