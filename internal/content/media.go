// Copyright (c) 2026 Sky Limit Visuals <hello@skylimitvisuals.com>
// All rights reserved. See LICENSE for details.

package content

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"skylimit/internal/bus"
	"skylimit/internal/catalog"
)

// Prober reads image dimensions from encoded bytes. It is optional; a nil
// prober means uploads carry the catalog's expected dimensions only.
type Prober func(data []byte) (width, height int, err error)

// MediaResolver resolves asset ids to descriptors and handles uploads and
// removals. Resolution order: a name match inside the asset's page folder
// wins, then the literal declared path, then the caller's fallback. A
// store failure at any step degrades to the next step, never to an error.
type MediaResolver struct {
	objects ObjectStore
	cache   DescriptorCache
	bus     *bus.Bus
	log     *slog.Logger
	probe   Prober
}

// NewMediaResolver creates a MediaResolver. probe may be nil.
func NewMediaResolver(objects ObjectStore, c DescriptorCache, b *bus.Bus, log *slog.Logger, probe Prober) *MediaResolver {
	return &MediaResolver{objects: objects, cache: c, bus: b, log: log, probe: probe}
}

// ResolveAsset resolves an asset id to a descriptor. fallbackPath is the
// static site path served when no stored object matches; when empty, the
// shared placeholder is used. The result is never an error: not-found is
// data.
func (r *MediaResolver) ResolveAsset(ctx context.Context, id, fallbackPath string) Descriptor {
	if payload, ok := r.cache.Get(ctx, id); ok {
		var d Descriptor
		if err := json.Unmarshal(payload, &d); err == nil {
			return d
		}
		// A corrupt cache entry is dropped and re-resolved.
		r.cache.Invalidate(ctx, id)
	}

	if key, ok := r.findObject(ctx, id); ok {
		d := r.describe(id, key)
		if payload, err := json.Marshal(d); err == nil {
			r.cache.Set(ctx, id, payload)
		}
		return d
	}

	return r.fallback(id, fallbackPath)
}

// findObject locates the stored object for an asset id, or reports that
// none exists. Storage errors are logged and treated as not-found so the
// caller still gets a fallback descriptor.
func (r *MediaResolver) findObject(ctx context.Context, id string) (string, bool) {
	// Testimonial portraits predate the path convention: old uploads used
	// two spellings and several extensions, so those ids probe the full
	// candidate set directly.
	if catalog.IsTestimonialID(id) {
		for _, candidate := range catalog.TestimonialImagePaths(id) {
			ok, err := r.objects.Exists(ctx, candidate)
			if err != nil {
				r.log.Warn("asset probe failed", "id", id, "path", candidate, "error", err)
				continue
			}
			if ok {
				return candidate, true
			}
		}
		return "", false
	}

	asset, known := catalog.ByID(id)

	// Step 1: search the page folder for an object whose name, ignoring
	// extension, matches the id. A re-upload in a different format (say
	// .webp replacing .jpg) is found this way.
	folder := "images/"
	if known {
		folder = path.Dir(asset.Path) + "/"
	}
	keys, err := r.objects.ListFolder(ctx, folder)
	if err != nil {
		r.log.Warn("asset folder listing failed", "id", id, "folder", folder, "error", err)
	} else {
		for _, key := range keys {
			base := path.Base(key)
			if strings.TrimSuffix(base, path.Ext(base)) == id {
				return key, true
			}
		}
	}

	// Step 2: the literal declared path.
	if known {
		ok, err := r.objects.Exists(ctx, asset.Path)
		if err != nil {
			r.log.Warn("asset probe failed", "id", id, "path", asset.Path, "error", err)
		} else if ok {
			return asset.Path, true
		}
	}

	return "", false
}

// describe builds the descriptor for a stored object, filling in the
// catalog's expected dimensions when the id is a known asset.
func (r *MediaResolver) describe(id, key string) Descriptor {
	d := Descriptor{
		ID:       id,
		URL:      r.objects.FileURL(key),
		Path:     key,
		Kind:     catalog.KindForPath(key),
		MIMEType: catalog.MIMEForPath(key),
	}
	if asset, ok := catalog.ByID(id); ok {
		d.Width = asset.Width
		d.Height = asset.Height
	}
	return d
}

// fallback builds the descriptor for an id with no stored object.
func (r *MediaResolver) fallback(id, fallbackPath string) Descriptor {
	return FallbackDescriptor(id, fallbackPath)
}

// FallbackDescriptor builds the descriptor used when no stored object
// matches an id, and as the loading placeholder before resolution
// completes. The URL is a static site path, not a storage URL.
func FallbackDescriptor(id, fallbackPath string) Descriptor {
	p := catalog.NormalizePath(fallbackPath)
	if p == "" {
		p = "images/placeholder.jpg"
	}
	d := Descriptor{
		ID:       id,
		URL:      "/" + p,
		Path:     p,
		Kind:     catalog.KindForPath(p),
		MIMEType: catalog.MIMEForPath(p),
		Fallback: true,
	}
	if asset, ok := catalog.ByID(id); ok {
		d.Width = asset.Width
		d.Height = asset.Height
	}
	return d
}

// UploadAsset writes the binary to the conventional path for id, then
// invalidates every cached and mounted resolution of that id and of the
// asset's page and section. On failure nothing is exposed: no URL, no
// invalidation.
func (r *MediaResolver) UploadAsset(ctx context.Context, id string, data []byte, contentType string) (Descriptor, error) {
	return r.UploadAssetTo(ctx, id, "", data, contentType)
}

// UploadAssetTo is UploadAsset with an explicit destination key. An empty
// objectPath falls back to the id's conventional path.
func (r *MediaResolver) UploadAssetTo(ctx context.Context, id, objectPath string, data []byte, contentType string) (Descriptor, error) {
	key := catalog.NormalizePath(objectPath)
	if key == "" {
		key = uploadPath(id)
	}
	if contentType == "" {
		contentType = catalog.MIMEForPath(key)
	}

	if err := r.objects.Upload(ctx, key, contentType, bytes.NewReader(data), int64(len(data))); err != nil {
		return Descriptor{}, fmt.Errorf("upload asset %s: %w", id, err)
	}

	d := r.describe(id, key)
	if r.probe != nil && d.Kind == catalog.KindImage {
		if w, h, err := r.probe(data); err == nil {
			d.Width, d.Height = w, h
		}
	}

	r.cache.Invalidate(ctx, id)
	keys := []string{bus.AssetKey(id)}
	if asset, ok := catalog.ByID(id); ok {
		keys = append(keys, bus.PageKey(asset.Page), bus.SectionKey(asset.Section))
	}
	r.bus.PublishKeys(keys...)

	r.log.Info("asset uploaded", "id", id, "path", key, "size", len(data))
	return d, nil
}

// RemoveObject deletes a stored object by path. Removal is idempotent:
// deleting a path that is already gone is success. The owning asset id,
// derived from the object name, is invalidated.
func (r *MediaResolver) RemoveObject(ctx context.Context, objectPath string) error {
	key := catalog.NormalizePath(objectPath)
	if key == "" {
		return nil
	}

	if err := r.objects.Delete(ctx, key); err != nil {
		return fmt.Errorf("remove object %s: %w", key, err)
	}

	base := path.Base(key)
	id := strings.TrimSuffix(base, path.Ext(base))
	r.cache.Invalidate(ctx, id)
	r.bus.Publish(bus.Event{Key: bus.AssetKey(id)})

	r.log.Info("object removed", "path", key)
	return nil
}

// uploadPath is the storage key an upload for id is written to.
// Testimonial portraits always land on the canonical singular spelling so
// resolution stops depending on the historical variants over time.
func uploadPath(id string) string {
	if catalog.IsTestimonialID(id) {
		parts := strings.SplitN(id, "-", 2)
		if len(parts) == 2 {
			return "home/testimonial-" + parts[1] + ".jpg"
		}
	}
	return catalog.ConventionalPath(id)
}
