package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	resendAPIURL      = "https://api.resend.com/emails"
	resendSendTimeout = 10 * time.Second

	providerResend = "resend"

	errAPIKeyRequiredFmt       = "resend API key is required"
	errFailedMarshalPayloadFmt = "failed to marshal email payload: %w"
	errFailedCreateRequestFmt  = "failed to create request: %w"
	errRequestFailedFmt        = "resend request failed: %w"
	errUnexpectedStatusFmt     = "resend returned status %d: %s"
)

// ResendProvider delivers mail through the Resend HTTP API.
type ResendProvider struct {
	apiKey string
	apiURL string
	client *http.Client
}

func NewResendProvider(apiKey string) *ResendProvider {
	return &ResendProvider{
		apiKey: apiKey,
		apiURL: resendAPIURL,
		client: &http.Client{Timeout: resendSendTimeout},
	}
}

func (p *ResendProvider) Name() string {
	return providerResend
}

func (p *ResendProvider) Send(ctx context.Context, email *Email) error {
	if p.apiKey == "" {
		return fmt.Errorf(errAPIKeyRequiredFmt)
	}

	payload := map[string]interface{}{
		"from":    email.From,
		"to":      email.To,
		"subject": email.Subject,
		"html":    email.HTML,
	}
	if email.Text != "" {
		payload["text"] = email.Text
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf(errFailedMarshalPayloadFmt, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf(errFailedCreateRequestFmt, err)
	}

	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf(errRequestFailedFmt, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf(errUnexpectedStatusFmt, resp.StatusCode, string(body))
	}

	return nil
}
