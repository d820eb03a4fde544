// Copyright (c) 2026 Sky Limit Visuals <hello@skylimitvisuals.com>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"

	"skylimit/internal/catalog"
	"skylimit/internal/content"
	"skylimit/internal/imaging"
)

// maxUploadSize is the maximum allowed media upload (50 MB, videos included).
const maxUploadSize = 50 << 20

// allowedUploadTypes are the MIME types accepted for media uploads.
var allowedUploadTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
	"video/mp4":  true,
	"video/webm": true,
	"video/ogg":  true,
	"video/quicktime": true,
}

// RenditionFunc generates responsive renditions for a gallery upload. Nil
// disables rendition generation.
type RenditionFunc func(original []byte, variants []imaging.Variant) ([]imaging.Rendition, error)

// Media serves asset resolution, uploads, and removals.
type Media struct {
	resolver   *content.MediaResolver
	renditions RenditionFunc
	log        *slog.Logger
}

// NewMedia creates the media handler. renditions may be nil.
func NewMedia(r *content.MediaResolver, renditions RenditionFunc, log *slog.Logger) *Media {
	return &Media{resolver: r, renditions: renditions, log: log}
}

// GetAsset resolves one asset id to its descriptor. The optional
// "fallback" query parameter overrides the shared placeholder. Not-found
// still answers 200: the descriptor just points at the fallback.
func (h *Media) GetAsset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	fallback := r.URL.Query().Get("fallback")

	d := h.resolver.ResolveAsset(r.Context(), id, fallback)
	writeJSON(w, http.StatusOK, d)
}

// ListAssets resolves every catalog asset for a page or section.
func (h *Media) ListAssets(w http.ResponseWriter, r *http.Request) {
	var assets []catalog.Asset
	switch {
	case r.URL.Query().Get("page") != "":
		assets = catalog.ByPage(r.URL.Query().Get("page"))
	case r.URL.Query().Get("section") != "":
		assets = catalog.BySection(r.URL.Query().Get("section"))
	default:
		assets = catalog.All()
	}

	out := make([]content.Descriptor, 0, len(assets))
	for _, a := range assets {
		out = append(out, h.resolver.ResolveAsset(r.Context(), a.ID, ""))
	}
	writeJSON(w, http.StatusOK, map[string]any{"assets": out})
}

// Upload accepts a multipart upload (file, imageId, imagePath, type) and
// answers {url, path, id}. Photo gallery uploads additionally get
// responsive WebP renditions, best-effort.
func (h *Media) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "upload too large or malformed")
		return
	}

	id := strings.TrimSpace(r.FormValue("imageId"))
	if id == "" {
		writeError(w, http.StatusBadRequest, "imageId is required")
		return
	}
	objectPath := r.FormValue("imagePath")

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	contentType := strings.TrimSpace(r.FormValue("type"))
	if contentType == "" {
		contentType = header.Header.Get("Content-Type")
	}
	if contentType != "" && !allowedUploadTypes[contentType] {
		writeError(w, http.StatusUnsupportedMediaType, "unsupported media type")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read upload")
		return
	}

	d, err := h.resolver.UploadAssetTo(r.Context(), id, objectPath, data, contentType)
	if err != nil {
		h.log.Error("upload failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "upload failed")
		return
	}

	if h.renditions != nil && d.Kind == catalog.KindImage && strings.HasPrefix(d.Path, "photos/") {
		h.generateRenditions(r, d.Path, data)
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"url":  d.URL,
		"path": d.Path,
		"id":   d.ID,
	})
}

// generateRenditions uploads responsive variants next to a gallery photo.
// Failures are logged only; the original upload already succeeded.
func (h *Media) generateRenditions(r *http.Request, objectPath string, data []byte) {
	rends, err := h.renditions(data, imaging.GalleryVariants)
	if err != nil {
		h.log.Warn("rendition generation failed", "path", objectPath, "error", err)
		return
	}

	ext := path.Ext(objectPath)
	base := strings.TrimSuffix(objectPath, ext)
	for _, rend := range rends {
		key := base + "-" + rend.Name + ".webp"
		if _, err := h.resolver.UploadAssetTo(r.Context(), path.Base(base), key, rend.Data, rend.ContentType); err != nil {
			h.log.Warn("rendition upload failed", "path", key, "error", err)
		}
	}
}

// Remove deletes a stored object by path, idempotently. The path arrives
// as the remainder of the URL after /api/images/.
func (h *Media) Remove(w http.ResponseWriter, r *http.Request) {
	objectPath := chi.URLParam(r, "*")
	if objectPath == "" {
		writeError(w, http.StatusBadRequest, "path is required")
		return
	}

	if err := h.resolver.RemoveObject(r.Context(), objectPath); err != nil {
		h.log.Error("remove failed", "path", objectPath, "error", err)
		writeError(w, http.StatusInternalServerError, "remove failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"removed": true})
}
