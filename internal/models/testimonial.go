// Copyright (c) 2026 Sky Limit Visuals <hello@skylimitvisuals.com>
// All rights reserved. See LICENSE for details.

package models

import "fmt"

// TestimonialDraft is a testimonial that has not been persisted yet. It has
// no identifier; creating it through the store yields a Testimonial. Keeping
// draft and persisted as distinct types means an "is new" marker can never
// leak into stored data.
type TestimonialDraft struct {
	Quote       string `json:"quote"`
	Description string `json:"description"`
	Client      string `json:"client"`
}

// Testimonial is a persisted client testimonial shown on the home page.
type Testimonial struct {
	ID          int    `json:"id"`
	Quote       string `json:"quote"`
	Description string `json:"description"`
	Client      string `json:"client"`
	ImageID     string `json:"imageId,omitempty"`
	ImagePath   string `json:"imagePath,omitempty"`
	Order       int    `json:"order"`
}

// Persist attaches an identifier and order to a draft, producing the
// persisted form. The image id follows the home-page portrait convention.
func (d TestimonialDraft) Persist(id, order int) Testimonial {
	return Testimonial{
		ID:          id,
		Quote:       d.Quote,
		Description: d.Description,
		Client:      d.Client,
		ImageID:     fmt.Sprintf("testimonial-%d", id),
		Order:       order,
	}
}

// CanonicalImagePath returns the canonical storage key for the portrait:
// no leading slash, singular spelling. Resolution still probes the
// historical variants; writes only ever use this form.
func (t *Testimonial) CanonicalImagePath() string {
	return fmt.Sprintf("home/testimonial-%d.jpg", t.ID)
}
