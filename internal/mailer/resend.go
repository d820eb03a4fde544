// Copyright (c) 2026 Sky Limit Visuals <hello@skylimitvisuals.com>
// All rights reserved. See LICENSE for details.

// Package mailer sends the contact-notification email through the Resend
// API. Like the CRM forward, it is a best-effort leg of the contact
// pipeline.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"time"

	"skylimit/internal/models"
)

// ResendClient sends transactional email via Resend.
type ResendClient struct {
	apiKey  string
	from    string
	to      string
	client  *http.Client
	baseURL string
}

// NewResend creates a ResendClient sending from and to the given addresses.
func NewResend(apiKey, from, to string) *ResendClient {
	return &ResendClient{
		apiKey:  apiKey,
		from:    from,
		to:      to,
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: "https://api.resend.com",
	}
}

// Configured reports whether an API key is set.
func (c *ResendClient) Configured() bool {
	return c.apiKey != ""
}

type resendEmail struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// SendContactNotification emails the owners about a new submission. The
// reply-to is the submitter, so answering the notification answers them.
func (c *ResendClient) SendContactNotification(ctx context.Context, sub *models.ContactSubmission) error {
	payload, err := json.Marshal(resendEmail{
		From:    c.from,
		To:      []string{c.to},
		ReplyTo: sub.Email,
		Subject: fmt.Sprintf("New inquiry from %s", sub.Name),
		HTML:    contactHTML(sub),
	})
	if err != nil {
		return fmt.Errorf("resend marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("resend request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("resend http: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, string(body))
	}
	return nil
}

func contactHTML(sub *models.ContactSubmission) string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "<h2>New contact form submission</h2>")
	fmt.Fprintf(&b, "<p><strong>Name:</strong> %s</p>", html.EscapeString(sub.Name))
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>", html.EscapeString(sub.Email))
	if sub.Service != "" {
		fmt.Fprintf(&b, "<p><strong>Service:</strong> %s</p>", html.EscapeString(sub.Service))
	}
	if sub.EventDate != "" {
		fmt.Fprintf(&b, "<p><strong>Event date:</strong> %s</p>", html.EscapeString(sub.EventDate))
	}
	fmt.Fprintf(&b, "<p><strong>Message:</strong></p><p>%s</p>", html.EscapeString(sub.Message))
	return b.String()
}
