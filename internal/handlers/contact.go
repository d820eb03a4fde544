// Copyright (c) 2026 Sky Limit Visuals <hello@skylimitvisuals.com>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"skylimit/internal/models"
)

// CRMForwarder is the best-effort CRM leg of the contact pipeline.
type CRMForwarder interface {
	Configured() bool
	Submit(ctx context.Context, sub *models.ContactSubmission) error
}

// Notifier is the best-effort email leg of the contact pipeline.
type Notifier interface {
	Configured() bool
	SendContactNotification(ctx context.Context, sub *models.ContactSubmission) error
}

// SubmissionStore is the durable leg of the contact pipeline.
type SubmissionStore interface {
	Insert(ctx context.Context, sub *models.ContactSubmission) error
}

// Contact runs the contact pipeline: CRM forward, durable record, email
// notification. The request succeeds when the durable record or the email
// landed; every other failure is logged only.
type Contact struct {
	crm    CRMForwarder
	store  SubmissionStore
	mailer Notifier
	log    *slog.Logger
}

// NewContact creates the contact handler.
func NewContact(crm CRMForwarder, store SubmissionStore, mailer Notifier, log *slog.Logger) *Contact {
	return &Contact{crm: crm, store: store, mailer: mailer, log: log}
}

// Submit handles one contact form submission.
func (h *Contact) Submit(w http.ResponseWriter, r *http.Request) {
	var sub models.ContactSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg := validateContact(&sub); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	ctx := r.Context()

	// Leg 1: CRM forward, best-effort.
	if h.crm != nil && h.crm.Configured() {
		if err := h.crm.Submit(ctx, &sub); err != nil {
			h.log.Warn("hubspot forward failed", "email", sub.Email, "error", err)
		}
	}

	// Leg 2: durable record.
	stored := false
	if err := h.store.Insert(ctx, &sub); err != nil {
		h.log.Error("contact submission insert failed", "email", sub.Email, "error", err)
	} else {
		stored = true
	}

	// Leg 3: notification email, best-effort.
	mailed := false
	if h.mailer != nil && h.mailer.Configured() {
		if err := h.mailer.SendContactNotification(ctx, &sub); err != nil {
			h.log.Warn("contact notification failed", "email", sub.Email, "error", err)
		} else {
			mailed = true
		}
	}

	// Success requires at least one confirmed leg beyond the CRM forward.
	if !stored && !mailed {
		writeError(w, http.StatusInternalServerError, "could not record your message, please try again")
		return
	}

	h.log.Info("contact submission received", "email", sub.Email, "stored", stored, "mailed", mailed)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
