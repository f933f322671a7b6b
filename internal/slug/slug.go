// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

// Package slug provides URL-friendly slug generation and validation.
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
	// validSlug is the canonical shape: lowercase alphanumeric segments
	// joined by single hyphens.
	validSlug = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

// Generate creates a URL-friendly slug from the given string.
// Example: "Hello, World! 2025" → "hello-world-2025"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = strings.ReplaceAll(result, " ", "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	return result
}

// IsValid reports whether s is already in canonical slug form. Client
// supplied slugs must pass this; generated slugs always do.
func IsValid(s string) bool {
	return validSlug.MatchString(s)
}
