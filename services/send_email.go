package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lekzzicon/portfolio-backend/config"
	"github.com/lekzzicon/portfolio-backend/errs"
)

const resendEndpoint = "https://api.resend.com/emails"

// ResendEmailRequest represents the request payload for Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// ResendEmailResponse represents the response from Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

// EmailSender delivers a single message. The contact handler depends on this
// interface so tests can stub delivery.
type EmailSender interface {
	Send(ctx context.Context, subject, html, replyTo string, recipients []string) error
}

// ResendClient sends email through the Resend HTTP API.
type ResendClient struct {
	apiKey     string
	fromEmail  string
	httpClient *http.Client
	logger     zerolog.Logger
}

var _ EmailSender = (*ResendClient)(nil)

// NewResendClient builds an email sender from environment configuration.
// Requires RESEND_API_KEY and RESEND_FROM_EMAIL.
func NewResendClient(cfg map[string]string) (*ResendClient, error) {
	apiKey := config.GetString(cfg, "RESEND_API_KEY", "")
	fromEmail := config.GetString(cfg, "RESEND_FROM_EMAIL", "")
	if apiKey == "" || fromEmail == "" {
		return nil, errs.NewConfigurationError("email credentials (RESEND_API_KEY, RESEND_FROM_EMAIL)")
	}

	return &ResendClient{
		apiKey:     apiKey,
		fromEmail:  fromEmail,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     log.With().Str("serviceName", "resendClient").Logger(),
	}, nil
}

// Send delivers one email via the Resend API.
func (c *ResendClient) Send(ctx context.Context, subject, html, replyTo string, recipients []string) error {
	if len(recipients) == 0 {
		return fmt.Errorf("at least one recipient is required")
	}

	payload := ResendEmailRequest{
		From:    c.fromEmail,
		To:      recipients,
		ReplyTo: replyTo,
		Subject: subject,
		Html:    html,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, resendEndpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create Resend API request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to Resend API: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read Resend API response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp ResendErrorResponse
		if err := json.Unmarshal(bodyBytes, &errorResp); err == nil && errorResp.Message != "" {
			return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, errorResp.Message)
		}
		return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var emailResponse ResendEmailResponse
	if err := json.Unmarshal(bodyBytes, &emailResponse); err != nil {
		c.logger.Warn().Err(err).Msg("Failed to parse Resend email response, but email was sent")
	} else {
		c.logger.Info().Str("emailId", emailResponse.ID).Msg("Successfully sent email via Resend")
	}

	return nil
}
