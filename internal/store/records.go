// Copyright (c) 2026 Sky Limit Visuals <hello@skylimitvisuals.com>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// Collection names for the derived collections.
const (
	CollectionFilms        = "films"
	CollectionPackages     = "packages"
	CollectionTestimonials = "testimonials"
	CollectionPhotos       = "photos"
	CollectionAddOns       = "addons"
)

// Record is one row of a derived collection: an opaque JSON payload plus
// its display order.
type Record struct {
	ID    string
	Data  json.RawMessage
	Order int
}

// RecordStore persists the derived collections (films, packages,
// testimonials, photos, add-ons) as freeform JSONB records with an explicit
// display order.
type RecordStore struct {
	db *sql.DB
}

// NewRecordStore creates a RecordStore with the given database connection.
func NewRecordStore(db *sql.DB) *RecordStore {
	return &RecordStore{db: db}
}

// Put upserts a record. The order is written both to the sort_order column
// and into the payload's "order" field so the two never drift.
func (s *RecordStore) Put(ctx context.Context, collection, id string, data any, order int) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode record %s/%s: %w", collection, id, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO site_records (collection, id, data, sort_order, updated_at)
		VALUES ($1, $2, jsonb_set($3::jsonb, '{order}', to_jsonb($4::int)), $4, $5)
		ON CONFLICT (collection, id)
		DO UPDATE SET
			data       = excluded.data,
			sort_order = excluded.sort_order,
			updated_at = excluded.updated_at`,
		collection, id, payload, order, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("put record %s/%s: %w", collection, id, err)
	}
	return nil
}

// Get returns one record's payload. The second return is false when the
// record does not exist.
func (s *RecordStore) Get(ctx context.Context, collection, id string) (json.RawMessage, bool, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT data FROM site_records WHERE collection = $1 AND id = $2`,
		collection, id,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get record %s/%s: %w", collection, id, err)
	}
	return raw, true, nil
}

// Delete removes a record. Deleting a record that does not exist is success.
func (s *RecordStore) Delete(ctx context.Context, collection, id string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM site_records WHERE collection = $1 AND id = $2`,
		collection, id,
	)
	if err != nil {
		return fmt.Errorf("delete record %s/%s: %w", collection, id, err)
	}
	return nil
}

// ListOrdered returns every record in a collection in display order, and
// repairs records that lack one: each such record is assigned its
// positional index and the assignment is persisted. The repair is
// idempotent — a second read performs no writes and returns the same
// stable, monotonic order.
//
// Note this means a nominally read-only operation can issue writes; the
// first read of a just-imported collection is the moment its ordering
// becomes durable.
func (s *RecordStore) ListOrdered(ctx context.Context, collection string) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, data, sort_order FROM site_records
		WHERE collection = $1
		ORDER BY sort_order ASC NULLS LAST, id ASC`,
		collection,
	)
	if err != nil {
		return nil, fmt.Errorf("list records %s: %w", collection, err)
	}
	defer rows.Close()

	var records []Record
	var missing []int // positions in records lacking an order
	for rows.Next() {
		var r Record
		var order sql.NullInt64
		if err := rows.Scan(&r.ID, &r.Data, &order); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		if order.Valid {
			r.Order = int(order.Int64)
		} else {
			missing = append(missing, len(records))
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list records %s: %w", collection, err)
	}

	if len(missing) == 0 {
		return records, nil
	}

	// Repair: assign each unordered record its positional index and persist.
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("repair order %s: %w", collection, err)
	}
	defer tx.Rollback()

	for _, i := range missing {
		records[i].Order = i
		if _, err := tx.ExecContext(ctx, `
			UPDATE site_records
			SET sort_order = $3,
			    data       = jsonb_set(data, '{order}', to_jsonb($3::int)),
			    updated_at = $4
			WHERE collection = $1 AND id = $2`,
			collection, records[i].ID, i, time.Now(),
		); err != nil {
			return nil, fmt.Errorf("repair order %s/%s: %w", collection, records[i].ID, err)
		}
		// Keep the returned payload consistent with what was persisted.
		if patched, err := setOrderField(records[i].Data, i); err == nil {
			records[i].Data = patched
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("repair order %s: %w", collection, err)
	}
	return records, nil
}

// NextIntID returns the next free integer identifier in a collection whose
// ids are numeric strings (testimonials).
func (s *RecordStore) NextIntID(ctx context.Context, collection string) (int, error) {
	var next int
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(id::int), 0) + 1 FROM site_records
		WHERE collection = $1 AND id ~ '^[0-9]+$'`,
		collection,
	).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("next id %s: %w", collection, err)
	}
	return next, nil
}

// Count returns the number of records in a collection.
func (s *RecordStore) Count(ctx context.Context, collection string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM site_records WHERE collection = $1`,
		collection,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count records %s: %w", collection, err)
	}
	return n, nil
}

// setOrderField rewrites the "order" field of a JSON payload.
func setOrderField(data json.RawMessage, order int) (json.RawMessage, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	m["order"] = order
	return json.Marshal(m)
}
