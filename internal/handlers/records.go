// Copyright (c) 2026 Sky Limit Visuals <hello@skylimitvisuals.com>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"skylimit/internal/content"
	"skylimit/internal/models"
	"skylimit/internal/slug"
	"skylimit/internal/store"
)

// CollectionPattern is the chi route pattern matching the derived
// collections.
const CollectionPattern = "{collection:films|packages|testimonials|photos|addons}"

// Records serves the derived collections: films, packages, testimonials,
// photos, and add-ons.
type Records struct {
	records *store.RecordStore
	media   *content.MediaResolver // may be nil when storage is not configured
	log     *slog.Logger
}

// NewRecords creates the records handler. media may be nil; image cleanup
// on delete is then skipped.
func NewRecords(r *store.RecordStore, media *content.MediaResolver, log *slog.Logger) *Records {
	return &Records{records: r, media: media, log: log}
}

// List returns every record in display order. Records written without an
// order get one assigned and persisted by this read.
func (h *Records) List(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")

	records, err := h.records.ListOrdered(r.Context(), collection)
	if err != nil {
		h.log.Error("list records failed", "collection", collection, "error", err)
		writeError(w, http.StatusInternalServerError, "could not list "+collection)
		return
	}

	items := make([]json.RawMessage, 0, len(records))
	for _, rec := range records {
		items = append(items, rec.Data)
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// Get returns one record.
func (h *Records) Get(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")
	id := chi.URLParam(r, "id")

	raw, ok, err := h.records.Get(r.Context(), collection, id)
	if err != nil {
		h.log.Error("get record failed", "collection", collection, "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "could not load record")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(raw)
}

// Create inserts a new record. Testimonials get the next numeric id;
// other collections derive an id from the payload's id or title.
func (h *Records) Create(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")

	if collection == store.CollectionTestimonials {
		h.createTestimonial(w, r)
		return
	}

	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	id := recordID(payload)
	if id == "" {
		writeError(w, http.StatusBadRequest, "id or title is required")
		return
	}
	payload["id"] = id

	order, hasOrder := orderOf(payload)
	if !hasOrder {
		n, err := h.records.Count(r.Context(), collection)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "could not create record")
			return
		}
		order = n
	}

	if err := h.records.Put(r.Context(), collection, id, payload, order); err != nil {
		h.log.Error("create record failed", "collection", collection, "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "could not create record")
		return
	}
	payload["order"] = order
	writeJSON(w, http.StatusCreated, payload)
}

// createTestimonial assigns the next numeric id and appends at the end.
func (h *Records) createTestimonial(w http.ResponseWriter, r *http.Request) {
	var draft models.TestimonialDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if draft.Quote == "" || draft.Client == "" {
		writeError(w, http.StatusBadRequest, "quote and client are required")
		return
	}

	ctx := r.Context()
	id, err := h.records.NextIntID(ctx, store.CollectionTestimonials)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not create testimonial")
		return
	}
	order, err := h.records.Count(ctx, store.CollectionTestimonials)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not create testimonial")
		return
	}

	tm := draft.Persist(id, order)
	if err := h.records.Put(ctx, store.CollectionTestimonials, strconv.Itoa(id), &tm, order); err != nil {
		h.log.Error("create testimonial failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "could not create testimonial")
		return
	}
	writeJSON(w, http.StatusCreated, tm)
}

// Put upserts one record under the given id.
func (h *Records) Put(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")
	id := slug.SanitizeID(chi.URLParam(r, "id"))

	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	payload["id"] = id

	order, hasOrder := orderOf(payload)
	if !hasOrder {
		n, err := h.records.Count(r.Context(), collection)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "could not save record")
			return
		}
		order = n
	}

	if err := h.records.Put(r.Context(), collection, id, payload, order); err != nil {
		h.log.Error("put record failed", "collection", collection, "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "could not save record")
		return
	}
	payload["order"] = order
	writeJSON(w, http.StatusOK, payload)
}

// Delete removes a record and, best-effort, its stored images. Image
// cleanup failing never fails the delete: removal is idempotent all the
// way down.
func (h *Records) Delete(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")
	id := chi.URLParam(r, "id")

	if err := h.records.Delete(r.Context(), collection, id); err != nil {
		h.log.Error("delete record failed", "collection", collection, "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "could not delete record")
		return
	}

	if h.media != nil {
		for _, p := range recordImagePaths(collection, id) {
			if err := h.media.RemoveObject(r.Context(), p); err != nil {
				h.log.Warn("record image cleanup failed", "path", p, "error", err)
			}
		}
	}

	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// recordID picks the record identifier from a payload: an explicit id, or
// a slug derived from the title.
func recordID(payload map[string]any) string {
	if id, ok := payload["id"].(string); ok && id != "" {
		return slug.SanitizeID(id)
	}
	if title, ok := payload["title"].(string); ok && title != "" {
		return slug.Generate(title)
	}
	return ""
}

// orderOf reads the payload's order field.
func orderOf(payload map[string]any) (int, bool) {
	if f, ok := payload["order"].(float64); ok {
		return int(f), true
	}
	return 0, false
}

// recordImagePaths lists the storage keys a record's images may live at.
func recordImagePaths(collection, id string) []string {
	switch collection {
	case store.CollectionFilms:
		return []string{"films/" + id + ".jpg"}
	case store.CollectionPackages:
		return []string{"packages/" + id}
	case store.CollectionPhotos:
		return []string{"photos/" + id}
	case store.CollectionTestimonials:
		// Both historical spellings may hold a portrait.
		return []string{
			"home/testimonial-" + id + ".jpg",
			"home/testimonials-" + id + ".jpg",
		}
	default:
		return nil
	}
}
