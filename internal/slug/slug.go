// Copyright (c) 2026 Sky Limit Visuals <hello@skylimitvisuals.com>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation and record-id
// sanitization for the derived collections.
package slug

import (
	"regexp"
	"strings"
)

var (
	// nonAlphanumeric matches anything that isn't a letter, digit, or space.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
	// unsafeIDChars matches characters not allowed in a record id. Record
	// ids become document names and storage keys, so the set is strict.
	unsafeIDChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)
)

// Generate creates a URL-friendly slug from the given string.
// Example: "Hello, World! 2026" → "hello-world-2026"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = strings.ReplaceAll(result, " ", "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	return result
}

// SanitizeID maps an arbitrary record identifier onto the safe character
// set, replacing anything else with a hyphen. Case is preserved: ids from
// older data are mixed-case and must keep matching their stored objects.
func SanitizeID(id string) string {
	return unsafeIDChars.ReplaceAllString(strings.TrimSpace(id), "-")
}
