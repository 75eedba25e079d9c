// Package messaging provides the email, SMS and WhatsApp delivery adapters
// for devacia-os. Each send is a single vendor API call: no retries, a
// failure surfaces immediately to the caller.
package messaging

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// ErrNotConfigured is returned when an adapter is used without credentials.
var ErrNotConfigured = errors.New("messaging adapter credentials missing")

// BrevoConfig holds Brevo (transactional email) settings, loaded from
// DEVACIA_BREVO_* environment variables.
type BrevoConfig struct {
	APIKey      string        `envconfig:"API_KEY"`
	SenderEmail string        `envconfig:"SENDER_EMAIL"`
	BaseURL     string        `envconfig:"BASE_URL" default:"https://api.brevo.com"`
	Timeout     time.Duration `envconfig:"TIMEOUT" default:"10s"`
}

// BrevoClient sends transactional email through the Brevo REST API.
type BrevoClient struct {
	apiKey      string
	senderEmail string
	baseURL     string
	httpClient  *http.Client
}

// NewBrevoClient creates a Brevo client from cfg. A client without
// credentials is still constructed; sends through it fail with
// ErrNotConfigured.
func NewBrevoClient(cfg BrevoConfig) *BrevoClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &BrevoClient{
		apiKey:      strings.TrimSpace(cfg.APIKey),
		senderEmail: strings.TrimSpace(cfg.SenderEmail),
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:  &http.Client{Timeout: timeout},
	}
}

type brevoAddress struct {
	Email string `json:"email"`
}

type brevoAttachment struct {
	Content string `json:"content"`
	Name    string `json:"name"`
}

type brevoEmail struct {
	Sender      brevoAddress      `json:"sender"`
	To          []brevoAddress    `json:"to"`
	Subject     string            `json:"subject"`
	TextContent string            `json:"textContent"`
	Attachment  []brevoAttachment `json:"attachment,omitempty"`
}

// SendEmail sends a plain-text email, optionally attaching the file at
// attachmentPath (base64-encoded, as the Brevo API requires).
func (c *BrevoClient) SendEmail(ctx context.Context, to, subject, body, attachmentPath string) error {
	if c.apiKey == "" || c.senderEmail == "" {
		return fmt.Errorf("brevo: %w", ErrNotConfigured)
	}

	payload := brevoEmail{
		Sender:      brevoAddress{Email: c.senderEmail},
		To:          []brevoAddress{{Email: to}},
		Subject:     subject,
		TextContent: body,
	}

	if attachmentPath != "" {
		data, err := os.ReadFile(attachmentPath)
		if err != nil {
			return fmt.Errorf("read attachment: %w", err)
		}
		payload.Attachment = []brevoAttachment{{
			Content: base64.StdEncoding.EncodeToString(data),
			Name:    filepath.Base(attachmentPath),
		}}
	}

	buf, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v3/smtp/email", bytes.NewReader(buf))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("api-key", c.apiKey)
	req.Header.Set("content-type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		return nil
	default:
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("brevo returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}
}
