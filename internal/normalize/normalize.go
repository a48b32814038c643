// Package normalize folds user-visible text into the canonical form used for
// email synthesis and search matching: lower case, trimmed, Unicode-decomposed
// with all combining marks removed, so "José" and "jose" compare equal.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lower-cases, trims and strips diacritics.
func Fold(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		// transform only fails on malformed input; fall back to the
		// lower-cased original rather than dropping the value.
		return s
	}
	return out
}
