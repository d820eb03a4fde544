// Copyright (c) 2026 Sky Limit Visuals <hello@skylimitvisuals.com>
// All rights reserved. See LICENSE for details.

package content

import (
	"context"
	"fmt"
	"log/slog"

	"skylimit/internal/bus"
)

// TextResolver resolves and commits text overrides. Identity is the full
// (collection, document, field) triple; distinct triples never
// cross-contaminate because every read and write addresses the triple
// directly.
type TextResolver struct {
	docs DocumentStore
	bus  *bus.Bus
	log  *slog.Logger
}

// NewTextResolver creates a TextResolver. The bus may be shared with the
// media resolver; commits publish on it.
func NewTextResolver(docs DocumentStore, b *bus.Bus, log *slog.Logger) *TextResolver {
	return &TextResolver{docs: docs, bus: b, log: log}
}

// Resolve returns the stored value for the triple, or fallback when the
// document is missing, the field is missing, or the read fails. A failed
// read is logged and swallowed here: the caller always gets a displayable
// string, never an error.
func (r *TextResolver) Resolve(ctx context.Context, collection, document, field, fallback string) string {
	val, ok, err := r.docs.GetField(ctx, collection, document, field)
	if err != nil {
		r.log.Warn("text resolve failed, serving default",
			"collection", collection, "document", document, "field", field, "error", err)
		return fallback
	}
	if !ok {
		return fallback
	}
	return val
}

// ResolveDocument resolves every field of a document at once: stored
// overrides are merged over the supplied defaults. Read failures degrade
// to the defaults, same as Resolve.
func (r *TextResolver) ResolveDocument(ctx context.Context, collection, document string, defaults map[string]string) map[string]string {
	resolved := make(map[string]string, len(defaults))
	for k, v := range defaults {
		resolved[k] = v
	}

	stored, err := r.docs.GetDocument(ctx, collection, document)
	if err != nil {
		r.log.Warn("document resolve failed, serving defaults",
			"collection", collection, "document", document, "error", err)
		return resolved
	}
	for k, v := range stored {
		resolved[k] = v
	}
	return resolved
}

// Commit merges {field: value} into the document, creating it if absent,
// and notifies every subscriber of the triple. Sibling fields are never
// touched. Unlike reads, a failed write is an error the caller must see.
func (r *TextResolver) Commit(ctx context.Context, collection, document, field, value string) error {
	if err := r.docs.MergeField(ctx, collection, document, field, value); err != nil {
		return fmt.Errorf("commit %s/%s/%s: %w", collection, document, field, err)
	}

	r.log.Info("text committed",
		"collection", collection, "document", document, "field", field)
	r.bus.Publish(bus.Event{Key: bus.TextKey(collection, document, field)})
	return nil
}
