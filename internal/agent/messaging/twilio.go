// Package messaging provides the email, SMS and WhatsApp delivery adapters
// for devacia-os.
package messaging

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// TwilioConfig holds Twilio settings, loaded from DEVACIA_TWILIO_*
// environment variables. FromNumber is used for SMS; WhatsAppFrom (without
// the whatsapp: prefix) for WhatsApp.
type TwilioConfig struct {
	AccountSID   string        `envconfig:"ACCOUNT_SID"`
	AuthToken    string        `envconfig:"AUTH_TOKEN"`
	FromNumber   string        `envconfig:"FROM_NUMBER"`
	WhatsAppFrom string        `envconfig:"WHATSAPP_FROM"`
	BaseURL      string        `envconfig:"BASE_URL" default:"https://api.twilio.com"`
	Timeout      time.Duration `envconfig:"TIMEOUT" default:"10s"`
}

// TwilioClient sends SMS and WhatsApp messages through the Twilio REST API.
type TwilioClient struct {
	accountSID   string
	authToken    string
	fromNumber   string
	whatsAppFrom string
	baseURL      string
	httpClient   *http.Client
}

// NewTwilioClient creates a Twilio client from cfg. A client without
// credentials is still constructed; sends through it fail with
// ErrNotConfigured.
func NewTwilioClient(cfg TwilioConfig) *TwilioClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &TwilioClient{
		accountSID:   strings.TrimSpace(cfg.AccountSID),
		authToken:    strings.TrimSpace(cfg.AuthToken),
		fromNumber:   strings.TrimSpace(cfg.FromNumber),
		whatsAppFrom: strings.TrimSpace(cfg.WhatsAppFrom),
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:   &http.Client{Timeout: timeout},
	}
}

// SendSMS sends a text message to the given phone number.
func (c *TwilioClient) SendSMS(ctx context.Context, to, body string) error {
	if c.fromNumber == "" {
		return fmt.Errorf("twilio sms: %w", ErrNotConfigured)
	}
	return c.send(ctx, c.fromNumber, to, body)
}

// SendWhatsApp sends a WhatsApp message to the given phone number.
func (c *TwilioClient) SendWhatsApp(ctx context.Context, to, body string) error {
	if c.whatsAppFrom == "" {
		return fmt.Errorf("twilio whatsapp: %w", ErrNotConfigured)
	}
	return c.send(ctx, "whatsapp:"+c.whatsAppFrom, "whatsapp:"+to, body)
}

func (c *TwilioClient) send(ctx context.Context, from, to, body string) error {
	if c.accountSID == "" || c.authToken == "" {
		return fmt.Errorf("twilio: %w", ErrNotConfigured)
	}

	form := url.Values{}
	form.Set("From", from)
	form.Set("To", to)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", c.baseURL, c.accountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build message request: %w", err)
	}
	req.SetBasicAuth(c.accountSID, c.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	return fmt.Errorf("twilio returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
}
