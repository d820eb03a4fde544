// Copyright (c) 2026 Sky Limit Visuals <hello@skylimitvisuals.com>
// All rights reserved. See LICENSE for details.

package catalog

// siteAssets is the compiled-in inventory. Paths are canonical storage keys
// (no leading slash); the object store may hold a same-named file with a
// different extension, which takes precedence at resolution time.
var siteAssets = []Asset{
	// HOME
	{
		ID: "hero-main", Name: "hero-main",
		Path: "home/hero-main.mp4",
		Alt:  "Sky Limit Visuals Hero Video",
		Page: "home", Section: "hero",
		Priority: true,
		Width:    1920, Height: 1080,
		Kind: KindVideo, MIMEType: "video/mp4",
	},
	{
		ID: "services-1", Name: "services-1",
		Path: "home/services-1.webp",
		Alt:  "Films Services",
		Page: "home", Section: "services",
		Width: 800, Height: 600,
		Kind: KindImage,
	},
	{
		ID: "services-2", Name: "services-2",
		Path: "home/services-2.webp",
		Alt:  "Investment Services",
		Page: "home", Section: "services",
		Width: 800, Height: 600,
		Kind: KindImage,
	},
	{
		ID: "services-3", Name: "services-3",
		Path: "home/services-3.webp",
		Alt:  "Contact Services",
		Page: "home", Section: "services",
		Width: 800, Height: 600,
		Kind: KindImage,
	},
	{
		ID: "team-main", Name: "team-main",
		Path: "home/team-main.webp",
		Alt:  "Sky Limit Visuals Team",
		Page: "home", Section: "team",
		Width: 500, Height: 500,
		Kind: KindImage,
	},
	{
		ID: "testimonial-1", Name: "testimonial-1",
		Path: "home/testimonial-1.webp",
		Alt:  "Testimonial 1",
		Page: "home", Section: "testimonials",
		Width: 600, Height: 800,
		Kind: KindImage,
	},
	{
		ID: "testimonial-2", Name: "testimonial-2",
		Path: "home/testimonial-2.webp",
		Alt:  "Testimonial 2",
		Page: "home", Section: "testimonials",
		Width: 600, Height: 800,
		Kind: KindImage,
	},
	{
		ID: "testimonial-3", Name: "testimonial-3",
		Path: "home/testimonial-3.webp",
		Alt:  "Testimonial 3",
		Page: "home", Section: "testimonials",
		Width: 600, Height: 800,
		Kind: KindImage,
	},
	{
		ID: "testimonial-placeholder", Name: "testimonial-placeholder",
		Path: "images/placeholder.jpg",
		Alt:  "Testimonial Placeholder",
		Page: "home", Section: "testimonials",
		Width: 600, Height: 800,
		Kind: KindImage,
	},

	// ABOUT
	{
		ID: "about-hero", Name: "about-hero",
		Path: "about/about-hero.webp",
		Alt:  "About Sky Limit Visuals Hero",
		Page: "about", Section: "hero",
		Width: 1920, Height: 1080,
		Kind: KindImage,
	},
	{
		ID: "about-team-1", Name: "about-team-1",
		Path: "about/about-team-1.webp",
		Alt:  "Team Member 1",
		Page: "about", Section: "team",
		Width: 800, Height: 1000,
		Kind: KindImage,
	},
	{
		ID: "about-team-2", Name: "about-team-2",
		Path: "about/about-team-2.webp",
		Alt:  "Team Member 2",
		Page: "about", Section: "team",
		Width: 800, Height: 1000,
		Kind: KindImage,
	},
	{
		ID: "noah-portrait", Name: "noah-portrait",
		Path: "about/noah-portrait.webp",
		Alt:  "Noah Ike",
		Page: "about", Section: "team",
		Width: 1000, Height: 1000,
		Kind: KindImage,
	},
	{
		ID: "reagan-portrait", Name: "reagan-portrait",
		Path: "about/reagan-portrait.webp",
		Alt:  "Reagan Berce",
		Page: "about", Section: "team",
		Width: 1000, Height: 1000,
		Kind: KindImage,
	},

	// FILMS
	{
		ID: "films-hero", Name: "films-hero",
		Path: "films/films-hero.webp",
		Alt:  "Films Hero Image",
		Page: "films", Section: "hero",
		Width: 1920, Height: 1080,
		Kind: KindImage,
	},

	// PHOTOS
	{
		ID: "photos-hero", Name: "photos-hero",
		Path: "photos/photos-hero.webp",
		Alt:  "Photos Hero Image",
		Page: "photos", Section: "hero",
		Width: 1920, Height: 1080,
		Kind: KindImage,
	},

	// INVESTMENT
	{
		ID: "investment-hero", Name: "investment-hero",
		Path: "investment/investment-hero.webp",
		Alt:  "Investment Hero Image",
		Page: "investment", Section: "hero",
		Width: 1920, Height: 1080,
		Kind: KindImage,
	},

	// CONTACT
	{
		ID: "contact-hero", Name: "contact-hero",
		Path: "contact/contact-hero.webp",
		Alt:  "Contact Hero Image",
		Page: "contact", Section: "hero",
		Width: 1920, Height: 1080,
		Kind: KindImage,
	},
}
