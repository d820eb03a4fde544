// Copyright (c) 2026 Sky Limit Visuals <hello@skylimitvisuals.com>
// All rights reserved. See LICENSE for details.

// Package crm forwards contact submissions to the HubSpot Forms API. The
// forward is one best-effort leg of the contact pipeline; its failure is
// logged by the caller, never fatal.
package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"skylimit/internal/models"
)

// HubSpotClient submits to the HubSpot Forms ingestion endpoint.
type HubSpotClient struct {
	portalID string
	formID   string
	client   *http.Client
	baseURL  string
}

// NewHubSpot creates a HubSpotClient for the given portal and form.
func NewHubSpot(portalID, formID string) *HubSpotClient {
	return &HubSpotClient{
		portalID: portalID,
		formID:   formID,
		client:   &http.Client{Timeout: 15 * time.Second},
		baseURL:  "https://api.hsforms.com",
	}
}

// Configured reports whether a portal and form are set.
func (c *HubSpotClient) Configured() bool {
	return c.portalID != "" && c.formID != ""
}

type hubspotField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type hubspotContext struct {
	PageURI  string `json:"pageUri"`
	PageName string `json:"pageName"`
}

type hubspotSubmission struct {
	Fields  []hubspotField `json:"fields"`
	Context hubspotContext `json:"context"`
}

// Submit forwards one contact submission to the form.
func (c *HubSpotClient) Submit(ctx context.Context, sub *models.ContactSubmission) error {
	fields := []hubspotField{
		{Name: "firstname", Value: sub.Name},
		{Name: "email", Value: sub.Email},
		{Name: "message", Value: sub.Message},
	}
	if sub.Service != "" {
		fields = append(fields, hubspotField{Name: "service_interest", Value: sub.Service})
	}
	if sub.EventDate != "" {
		fields = append(fields, hubspotField{Name: "event_date", Value: sub.EventDate})
	}

	payload, err := json.Marshal(hubspotSubmission{
		Fields: fields,
		Context: hubspotContext{
			PageURI:  "skylimitvisuals.com/contact",
			PageName: "Contact | Sky Limit Visuals",
		},
	})
	if err != nil {
		return fmt.Errorf("hubspot marshal: %w", err)
	}

	url := fmt.Sprintf("%s/submissions/v3/integration/submit/%s/%s", c.baseURL, c.portalID, c.formID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("hubspot request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("hubspot http: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("hubspot API error (status %d): %s", resp.StatusCode, string(body))
	}
	return nil
}
