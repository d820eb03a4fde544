// Copyright (c) 2026 Sky Limit Visuals <hello@skylimitvisuals.com>
// All rights reserved. See LICENSE for details.

// Package models defines the freeform records behind the site's derived
// collections (films, packages, testimonials, photos, add-ons). Each record
// carries an explicit display order; records written by older clients may
// lack one, which the store repairs on first read.
package models

// Film is one wedding film entry on the films page.
type Film struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ImageURL     string `json:"imageUrl,omitempty"`
	YouTubeURL   string `json:"youtubeUrl,omitempty"`
	IsTeaser     bool   `json:"isTeaser,omitempty"`
	IsEngagement bool   `json:"isEngagement,omitempty"`
	Order        int    `json:"order"`
}

// ImagePath returns the conventional storage key for the film's still image.
func (f *Film) ImagePath() string {
	return "films/" + f.ID + ".jpg"
}
