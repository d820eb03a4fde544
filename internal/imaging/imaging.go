// Copyright (c) 2026 Sky Limit Visuals <hello@skylimitvisuals.com>
// All rights reserved. See LICENSE for details.

// Package imaging wraps libvips for the two image jobs the site has:
// probing dimensions of an upload, and generating responsive WebP variants
// for the photography gallery. Variant generation never upscales; a source
// narrower than a breakpoint stops the ladder there.
package imaging

import (
	"fmt"
	"log/slog"

	"github.com/davidbyttow/govips/v2/vips"
)

// Variant is one responsive breakpoint.
type Variant struct {
	Name    string
	Width   int
	Quality int // WebP quality 1-100
}

// GalleryVariants are the breakpoints generated for photo gallery uploads.
var GalleryVariants = []Variant{
	{Name: "thumb", Width: 320, Quality: 75},
	{Name: "sm", Width: 640, Quality: 80},
	{Name: "md", Width: 1024, Quality: 80},
	{Name: "lg", Width: 1920, Quality: 85},
}

// Rendition is one generated variant ready for upload.
type Rendition struct {
	Name        string
	Width       int
	Height      int
	Data        []byte
	ContentType string // always "image/webp"
}

// Startup initialises libvips. Call once at application start; concurrency
// 0 lets libvips pick its own worker count.
func Startup(concurrency int) {
	cfg := &vips.Config{
		ConcurrencyLevel: concurrency,
		MaxCacheSize:     100,
		MaxCacheMem:      50 * 1024 * 1024,
	}
	vips.LoggingSettings(nil, vips.LogLevelWarning)
	vips.Startup(cfg)
	slog.Info("libvips started", "version", vips.Version)
}

// Shutdown releases libvips resources.
func Shutdown() {
	vips.Shutdown()
}

// Probe returns the pixel dimensions of an encoded image without a full
// decode.
func Probe(data []byte) (width, height int, err error) {
	img, err := vips.NewImageFromBuffer(data)
	if err != nil {
		return 0, 0, fmt.Errorf("imaging: probe failed: %w", err)
	}
	defer img.Close()
	return img.Width(), img.Height(), nil
}

// GenerateRenditions produces WebP renditions of the source for each
// breakpoint, capped at the source width. The ladder stops once the source
// width is reached, so at least one rendition is always produced.
func GenerateRenditions(original []byte, variants []Variant) ([]Rendition, error) {
	if len(variants) == 0 {
		variants = GalleryVariants
	}

	probe, err := vips.NewImageFromBuffer(original)
	if err != nil {
		return nil, fmt.Errorf("imaging: probe failed: %w", err)
	}
	sourceWidth := probe.Width()
	probe.Close()

	var out []Rendition
	for _, v := range variants {
		target := v.Width
		if sourceWidth <= target {
			target = sourceWidth
		}

		img, err := vips.NewThumbnailFromBuffer(original, target, 0, vips.InterestingNone)
		if err != nil {
			return nil, fmt.Errorf("imaging: resize %s (%dpx): %w", v.Name, target, err)
		}

		// Honor EXIF orientation before stripping metadata.
		if err := img.AutoRotate(); err != nil {
			img.Close()
			return nil, fmt.Errorf("imaging: autorotate %s: %w", v.Name, err)
		}

		params := vips.NewWebpExportParams()
		params.Quality = v.Quality
		params.Lossless = false
		params.StripMetadata = true

		buf, meta, err := img.ExportWebp(params)
		img.Close()
		if err != nil {
			return nil, fmt.Errorf("imaging: export %s: %w", v.Name, err)
		}

		out = append(out, Rendition{
			Name:        v.Name,
			Width:       meta.Width,
			Height:      meta.Height,
			Data:        buf,
			ContentType: "image/webp",
		})

		if sourceWidth <= v.Width {
			break
		}
	}

	return out, nil
}
