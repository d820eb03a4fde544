// Copyright (c) 2026 Sky Limit Visuals <hello@skylimitvisuals.com>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"skylimit/internal/models"
)

// ContactStore persists contact form submissions — the durable leg of the
// contact pipeline.
type ContactStore struct {
	db *sql.DB
}

// NewContactStore creates a ContactStore with the given database connection.
func NewContactStore(db *sql.DB) *ContactStore {
	return &ContactStore{db: db}
}

// Insert stores a submission, assigning its id and timestamp.
func (s *ContactStore) Insert(ctx context.Context, sub *models.ContactSubmission) error {
	sub.ID = uuid.New()
	sub.CreatedAt = time.Now()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO contact_submissions (id, name, email, service, event_date, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		sub.ID, sub.Name, sub.Email, sub.Service, nullIfEmpty(sub.EventDate), sub.Message, sub.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contact submission: %w", err)
	}
	return nil
}

// Recent returns the most recent submissions, newest first.
func (s *ContactStore) Recent(ctx context.Context, limit int) ([]models.ContactSubmission, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, service, event_date, message, created_at
		FROM contact_submissions
		ORDER BY created_at DESC
		LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list contact submissions: %w", err)
	}
	defer rows.Close()

	var subs []models.ContactSubmission
	for rows.Next() {
		var sub models.ContactSubmission
		var date sql.NullString
		if err := rows.Scan(&sub.ID, &sub.Name, &sub.Email, &sub.Service, &date, &sub.Message, &sub.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contact submission: %w", err)
		}
		sub.EventDate = date.String
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
