// Copyright (c) 2026 Sky Limit Visuals <hello@skylimitvisuals.com>
// All rights reserved. See LICENSE for details.

// Package content is the resolution layer: it turns a (collection,
// document, field) triple or an asset id into a currently-effective value,
// merging compiled-in defaults with stored overrides. Reads never fail from
// the caller's point of view; a missing or unreachable override resolves to
// the default. Writes go through here too, so every successful commit or
// upload fans out an invalidation on the notification bus.
package content

import (
	"context"
	"io"

	"skylimit/internal/catalog"
)

// DocumentStore is the persistence the text resolver reads overrides from.
// *store.ContentStore satisfies it.
type DocumentStore interface {
	GetDocument(ctx context.Context, collection, name string) (map[string]string, error)
	GetField(ctx context.Context, collection, name, field string) (string, bool, error)
	MergeField(ctx context.Context, collection, name, field, value string) error
}

// ObjectStore is the object storage the media resolver probes and writes.
// *storage.Client satisfies it.
type ObjectStore interface {
	ListFolder(ctx context.Context, prefix string) ([]string, error)
	Exists(ctx context.Context, key string) (bool, error)
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	Delete(ctx context.Context, key string) error
	FileURL(key string) string
}

// DescriptorCache caches resolved asset descriptors keyed by asset id.
// *cache.AssetCache satisfies it; a nil-safe no-op implementation is fine
// for tests.
type DescriptorCache interface {
	Get(ctx context.Context, id string) ([]byte, bool)
	Set(ctx context.Context, id string, payload []byte)
	Invalidate(ctx context.Context, id string)
}

// Descriptor is a fully resolved media asset: where it lives, what it is,
// and how to display it.
type Descriptor struct {
	ID       string       `json:"id"`
	URL      string       `json:"url"`
	Path     string       `json:"path"`
	Kind     catalog.Kind `json:"type"`
	Width    int          `json:"width,omitempty"`
	Height   int          `json:"height,omitempty"`
	MIMEType string       `json:"mimeType,omitempty"`
	Fallback bool         `json:"fallback,omitempty"` // true when no stored object matched
}
