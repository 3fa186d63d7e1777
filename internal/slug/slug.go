// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug normalizes and checks the URL-safe identifiers used for
// catalog records. Category and subcategory IDs travel in paths and query
// strings, so they are expected to already be in slug form.
package slug

import (
	"regexp"
	"strings"
)

var (
	// nonAlphanumeric matches anything that isn't a letter, digit, space, or hyphen.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// whitespace collapses runs of spaces, tabs, and underscores.
	whitespace = regexp.MustCompile(`[\s_]+`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Generate converts a label into a URL-friendly identifier.
// Example: "Housing Finance 2026" → "housing-finance-2026"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = whitespace.ReplaceAllString(result, " ")
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = strings.ReplaceAll(result, " ", "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// Valid reports whether id is a non-empty identifier that Generate would
// leave unchanged.
func Valid(id string) bool {
	return id != "" && Generate(id) == id
}
