// Package segment turns raw record text into renderable paragraph units.
//
// Normalize maps typographic punctuation onto the subset the core PDF fonts
// can draw and drops whatever is left outside it. Segment splits a field on
// line breaks and classifies each line as a bullet or a plain paragraph.
package segment

import (
	"strings"
	"unicode"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// substitutions is applied before composition so that multi-rune
// replacements (the ellipsis) are possible.
var substitutions = strings.NewReplacer(
	"\r\n", "\n",
	"\r", "\n",
	"•", "-", // bullet
	"–", "-", // en dash
	"—", "-", // em dash
	"“", `"`,
	"”", `"`,
	"‘", "'",
	"’", "'",
	"…", "...",
	"\u202f", " ", // narrow no-break space
	"\u00a0", " ",
)

// unsupported reports runes the core fonts cannot encode. Line breaks and
// tabs survive; every other control character is dropped.
func unsupported(r rune) bool {
	if r == '\n' || r == '\t' {
		return false
	}
	if unicode.IsControl(r) {
		return true
	}
	_, ok := charmap.ISO8859_1.EncodeRune(r)
	return !ok
}

// Normalize returns s with typographic punctuation replaced by ASCII
// equivalents, combining sequences composed, and any remaining rune outside
// ISO-8859-1 removed. It never fails; unrenderable text simply disappears.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = substitutions.Replace(s)

	t := transform.Chain(norm.NFC, runes.Remove(runes.Predicate(unsupported)))
	out, _, err := transform.String(t, s)
	if err != nil {
		// transform.String only fails on invalid transformer state; fall back
		// to a rune filter so text still renders.
		return strings.Map(func(r rune) rune {
			if unsupported(r) {
				return -1
			}
			return r
		}, s)
	}
	return out
}

// Upper returns Normalize(s) in upper case. A rune whose upper-case form
// falls outside ISO-8859-1 (µ, ÿ) is kept as is.
func Upper(s string) string {
	return strings.Map(func(r rune) rune {
		u := unicode.ToUpper(r)
		if u != r && unsupported(u) {
			return r
		}
		return u
	}, Normalize(s))
}
