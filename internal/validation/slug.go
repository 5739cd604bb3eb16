// Package validation holds the checks and normalizations every event and
// booking write goes through before it reaches storage.
package validation

import (
	"regexp"
	"strings"
)

var (
	nonSlugRun  = regexp.MustCompile(`[^a-z0-9]+`)
	slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// Slugify derives a URL-safe identifier from title: lowercase, every run of
// characters outside [a-z0-9] collapsed to a single "-", no leading or trailing "-".
// A title with no ASCII letters or digits yields "".
func Slugify(title string) string {
	s := strings.TrimSpace(strings.ToLower(title))
	s = nonSlugRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// IsSlug reports whether s is already in canonical slug form.
func IsSlug(s string) bool {
	return slugPattern.MatchString(s)
}
