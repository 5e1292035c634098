package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
)

type Email struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Mailer hands an email to a delivery provider.
type Mailer interface {
	Send(ctx context.Context, email Email) error
}

const resendEndpoint = "https://api.resend.com/emails"

// ResendMailer sends through the Resend HTTP API.
type ResendMailer struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

func NewResendMailer(apiKey string, client *http.Client) *ResendMailer {
	if client == nil {
		client = &http.Client{}
	}
	return &ResendMailer{apiKey: apiKey, endpoint: resendEndpoint, client: client}
}

// WithEndpoint points the mailer at another base URL.
func (m *ResendMailer) WithEndpoint(endpoint string) *ResendMailer {
	cp := *m
	cp.endpoint = endpoint
	return &cp
}

func (m *ResendMailer) Send(ctx context.Context, email Email) error {
	postBody, err := json.Marshal(email)
	if err != nil {
		return fmt.Errorf("encode email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(postBody))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.apiKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("resend returned %d: %s", resp.StatusCode, bytes.TrimSpace(respBody))
	}
	return nil
}

// LogMailer only logs what would have been sent. Used when no provider key
// is configured.
type LogMailer struct{}

func (LogMailer) Send(_ context.Context, email Email) error {
	log.Printf("Email not sent (no provider configured): to=%v subject=%q", email.To, email.Subject)
	return nil
}
