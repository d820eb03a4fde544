// Copyright (c) 2026 Sky Limit Visuals <hello@skylimitvisuals.com>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"skylimit/internal/models"
)

// Validation limits for contact submissions.
const (
	maxNameLen    = 200
	maxServiceLen = 100
	maxDateLen    = 40
	maxMessageLen = 5_000
)

// validateContact checks a submission and returns the first error found,
// or "".
func validateContact(sub *models.ContactSubmission) string {
	sub.Name = strings.TrimSpace(sub.Name)
	sub.Email = strings.TrimSpace(sub.Email)
	sub.Message = strings.TrimSpace(sub.Message)

	if sub.Name == "" {
		return "Name is required."
	}
	if utf8.RuneCountInString(sub.Name) > maxNameLen {
		return "Name is too long."
	}
	if sub.Email == "" {
		return "Email is required."
	}
	if _, err := mail.ParseAddress(sub.Email); err != nil {
		return "Email address is not valid."
	}
	if sub.Message == "" {
		return "Message is required."
	}
	if utf8.RuneCountInString(sub.Message) > maxMessageLen {
		return "Message is too long (max 5,000 characters)."
	}
	if utf8.RuneCountInString(sub.Service) > maxServiceLen {
		return "Service selection is not valid."
	}
	if utf8.RuneCountInString(sub.EventDate) > maxDateLen {
		return "Event date is not valid."
	}
	return ""
}
