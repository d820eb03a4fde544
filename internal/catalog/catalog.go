// Copyright (c) 2026 Sky Limit Visuals <hello@skylimitvisuals.com>
// All rights reserved. See LICENSE for details.

// Package catalog holds the compiled-in inventory of site media assets.
// Every editable image or video on the site has an entry here describing
// its identity, conventional storage path, and display metadata. The
// catalog is the fallback: the object store holds overrides, and an id
// with no stored object still resolves against this data.
package catalog

import (
	"path"
	"strings"
)

// Kind distinguishes still images from video assets.
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

// Asset describes one editable media slot on the site.
type Asset struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Path     string `json:"path"` // canonical storage key, no leading slash
	Alt      string `json:"alt"`
	Page     string `json:"page"`
	Section  string `json:"section"`
	Priority bool   `json:"priority,omitempty"` // eager-load hint for above-the-fold media
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Kind     Kind   `json:"type"`
	MIMEType string `json:"mimeType,omitempty"`
}

// videoExtensions are the file extensions treated as video when resolving
// a stored object's media kind.
var videoExtensions = map[string]bool{
	".mp4":  true,
	".webm": true,
	".ogg":  true,
	".mov":  true,
}

// NormalizePath returns the canonical storage-key form of a path: no
// leading slash. Historical data mixes "home/x.jpg" and "/home/x.jpg";
// every boundary normalizes through here.
func NormalizePath(p string) string {
	return strings.TrimPrefix(strings.TrimSpace(p), "/")
}

// KindForPath derives the media kind from a file extension.
func KindForPath(p string) Kind {
	if videoExtensions[strings.ToLower(path.Ext(p))] {
		return KindVideo
	}
	return KindImage
}

// MIMEForPath returns a best-effort MIME type for a stored object path.
func MIMEForPath(p string) string {
	switch strings.ToLower(path.Ext(p)) {
	case ".mp4", ".mov":
		return "video/mp4"
	case ".webm":
		return "video/webm"
	case ".ogg":
		return "video/ogg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	default:
		return "image/jpeg"
	}
}

// ConventionalPath returns the storage key an upload for the given asset id
// should be written to. Known assets keep their declared path; unknown ids
// fall back to the generic images folder.
func ConventionalPath(id string) string {
	if a, ok := ByID(id); ok {
		return a.Path
	}
	return "images/" + id
}

// TestimonialImagePaths returns the candidate storage keys for a
// testimonial portrait, covering both historical path spellings and the
// extension set old uploads used. Earlier revisions wrote
// "home/testimonials-N" and "home/testimonial-N" interchangeably, so
// resolution probes both.
func TestimonialImagePaths(id string) []string {
	parts := strings.SplitN(id, "-", 2)
	if len(parts) != 2 {
		return nil
	}
	n := parts[1]

	bases := []string{
		"home/testimonials-" + n,
		"home/testimonial-" + n,
	}
	extensions := []string{".jpg", ".jpeg", ".png", ".webp"}

	paths := make([]string, 0, len(bases)*len(extensions))
	for _, b := range bases {
		for _, ext := range extensions {
			paths = append(paths, b+ext)
		}
	}
	return paths
}

// IsTestimonialID reports whether an asset id names a testimonial portrait.
// Both the singular and plural prefix occur in stored data.
func IsTestimonialID(id string) bool {
	return strings.HasPrefix(id, "testimonial-") || strings.HasPrefix(id, "testimonials-")
}

// ByID looks up an asset definition by its identifier.
func ByID(id string) (Asset, bool) {
	for _, a := range siteAssets {
		if a.ID == id {
			return a, true
		}
	}
	return Asset{}, false
}

// ByPage returns the asset definitions declared for a page, in catalog order.
func ByPage(page string) []Asset {
	var out []Asset
	for _, a := range siteAssets {
		if a.Page == page {
			out = append(out, a)
		}
	}
	return out
}

// BySection returns the asset definitions declared for a section across
// all pages.
func BySection(section string) []Asset {
	var out []Asset
	for _, a := range siteAssets {
		if a.Section == section {
			out = append(out, a)
		}
	}
	return out
}

// All returns every catalog entry.
func All() []Asset {
	out := make([]Asset, len(siteAssets))
	copy(out, siteAssets)
	return out
}
