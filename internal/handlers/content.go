// Copyright (c) 2026 Sky Limit Visuals <hello@skylimitvisuals.com>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"

	"skylimit/internal/content"
)

// maxFieldLen caps a single text field's value.
const maxFieldLen = 10_000

// Content serves text resolution and commits.
type Content struct {
	resolver *content.TextResolver
}

// NewContent creates the content handler.
func NewContent(r *content.TextResolver) *Content {
	return &Content{resolver: r}
}

// GetField resolves one (collection, document, field) triple. The optional
// "default" query parameter is returned when no override is stored; the
// response never reports an error for missing content.
func (h *Content) GetField(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")
	document := chi.URLParam(r, "document")
	field := chi.URLParam(r, "field")
	fallback := r.URL.Query().Get("default")

	value := h.resolver.Resolve(r.Context(), collection, document, field, fallback)
	writeJSON(w, http.StatusOK, map[string]string{
		"collection": collection,
		"document":   document,
		"field":      field,
		"value":      value,
	})
}

// GetDocument resolves a whole document's stored fields.
func (h *Content) GetDocument(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")
	document := chi.URLParam(r, "document")

	fields := h.resolver.ResolveDocument(r.Context(), collection, document, nil)
	writeJSON(w, http.StatusOK, map[string]any{
		"collection": collection,
		"document":   document,
		"fields":     fields,
	})
}

// PutField commits one field value, merging into the document.
func (h *Content) PutField(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")
	document := chi.URLParam(r, "document")
	field := chi.URLParam(r, "field")

	var body struct {
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if utf8.RuneCountInString(body.Value) > maxFieldLen {
		writeError(w, http.StatusBadRequest, "value is too long")
		return
	}

	if err := h.resolver.Commit(r.Context(), collection, document, field, body.Value); err != nil {
		writeError(w, http.StatusInternalServerError, "could not save content")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"value": body.Value})
}
