// Copyright (c) 2026 Sky Limit Visuals <hello@skylimitvisuals.com>
// All rights reserved. See LICENSE for details.

package models

// PackageFeature is a single bullet in a pricing package.
type PackageFeature struct {
	Text string `json:"text"`
	Note string `json:"note,omitempty"`
}

// Package is a pricing package on the investment page. Type is either
// "videography" or "photography".
type Package struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Subtitle    string           `json:"subtitle,omitempty"`
	Description string           `json:"description"`
	ImageURL    string           `json:"imageUrl,omitempty"`
	Price       string           `json:"price"`
	Features    []PackageFeature `json:"features"`
	Type        string           `json:"type"`
	Order       int              `json:"order"`
}

// ImagePath returns the conventional storage key for the package image.
func (p *Package) ImagePath() string {
	return "packages/" + p.ID
}
