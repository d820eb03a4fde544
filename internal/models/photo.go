// Copyright (c) 2026 Sky Limit Visuals <hello@skylimitvisuals.com>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Photo is a gallery entry on the wedding photography page.
type Photo struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Category    string    `json:"category,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	Order       int       `json:"order"`
}

// ImagePath returns the conventional storage key for the photo.
func (p *Photo) ImagePath() string {
	return "photos/" + p.ID
}
