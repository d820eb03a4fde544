// Copyright (c) 2026 Sky Limit Visuals <hello@skylimitvisuals.com>
// All rights reserved. See LICENSE for details.

// Package store contains the PostgreSQL persistence layer: text override
// documents, the derived-collection records, and contact submissions.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// ContentStore persists text overrides. One row per (collection, document)
// holds a JSONB mapping of field name to string; a single-field write merges
// into the mapping without clobbering sibling fields.
type ContentStore struct {
	db *sql.DB
}

// NewContentStore creates a ContentStore with the given database connection.
func NewContentStore(db *sql.DB) *ContentStore {
	return &ContentStore{db: db}
}

// GetDocument returns the field mapping for (collection, name). A missing
// document is not an error: it returns an empty map.
func (s *ContentStore) GetDocument(ctx context.Context, collection, name string) (map[string]string, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT fields FROM content_documents
		WHERE collection = $1 AND name = $2`,
		collection, name,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get document %s/%s: %w", collection, name, err)
	}

	fields := map[string]string{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("decode document %s/%s: %w", collection, name, err)
	}
	return fields, nil
}

// GetField returns the stored value for one field. The second return is
// false when the document or the field is absent — that is data, not an
// error.
func (s *ContentStore) GetField(ctx context.Context, collection, name, field string) (string, bool, error) {
	var val sql.NullString
	err := s.db.QueryRowContext(ctx, `
		SELECT fields ->> $3 FROM content_documents
		WHERE collection = $1 AND name = $2`,
		collection, name, field,
	).Scan(&val)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get field %s/%s/%s: %w", collection, name, field, err)
	}
	if !val.Valid {
		return "", false, nil
	}
	return val.String, true, nil
}

// MergeField upserts a single field into the document, creating the
// document if absent. Sibling fields are preserved: the JSONB || operator
// merges at the top level.
func (s *ContentStore) MergeField(ctx context.Context, collection, name, field, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO content_documents (collection, name, fields, updated_at)
		VALUES ($1, $2, jsonb_build_object($3::text, $4::text), $5)
		ON CONFLICT (collection, name)
		DO UPDATE SET
			fields     = content_documents.fields || excluded.fields,
			updated_at = excluded.updated_at`,
		collection, name, field, value, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("merge field %s/%s/%s: %w", collection, name, field, err)
	}
	return nil
}

// DeleteDocument removes a document and all its fields. Deleting a document
// that does not exist is success.
func (s *ContentStore) DeleteDocument(ctx context.Context, collection, name string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM content_documents WHERE collection = $1 AND name = $2`,
		collection, name,
	)
	if err != nil {
		return fmt.Errorf("delete document %s/%s: %w", collection, name, err)
	}
	return nil
}
