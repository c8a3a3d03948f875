package shared

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slugify derives a primary-key identifier from a display name: accents are
// folded away, everything is lowercased, and any character outside [a-z0-9]
// is dropped with no separator. Distinct names can collide; a collision
// surfaces later as a duplicate-key failure on insert.
func Slugify(name string) string {
	folded := removeMarks(name)

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// removeMarks decomposes the string and strips combining marks, so that
// e.g. "é" folds to "e" before the ASCII filter runs.
func removeMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
