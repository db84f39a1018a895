// Package textutil normalizes French source text for matching and slugs.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases and strips diacritics, so "Résolution" and
// "resolution" compare equal.
func Normalize(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// Slugify builds a stable slug: lowercase, diacritics stripped, runs of
// non-alphanumeric characters collapsed to single hyphens.
func Slugify(s string) string {
	normalized := Normalize(s)

	var b strings.Builder
	b.Grow(len(normalized))
	lastHyphen := true // suppress a leading hyphen
	for _, r := range normalized {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
