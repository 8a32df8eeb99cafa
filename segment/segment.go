package segment

import (
	"strings"
	"unicode/utf8"
)

// Kind classifies a paragraph unit.
type Kind int

const (
	Plain Kind = iota
	Bullet
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case Bullet:
		return "bullet"
	default:
		return "plain"
	}
}

// Unit is one paragraph of a field: a single source line, with any leading
// list marker removed for bullets.
type Unit struct {
	Kind Kind
	Text string
}

// markers are the leading characters recognized as list markers.
const markers = "-*•–—"

// SplitLines splits s on line breaks and returns the trimmed, non-empty
// lines in order.
func SplitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// HasMarker reports whether line starts with a recognized list marker.
func HasMarker(line string) bool {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(line))
	return r != utf8.RuneError && strings.ContainsRune(markers, r)
}

// StripMarker removes the leading run of markers and spaces from line.
func StripMarker(line string) string {
	return strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), markers+" \t"))
}

// Segment splits s into paragraph units.
//
// A field holding a single line is one plain unit, kept verbatim even when it
// starts with punctuation: single-line fields are titles or short values.
// Every line of a multi-line field becomes a bullet, whether or not it
// carried a marker, so list-like fields render consistently. Lines that are
// empty once their marker is removed are dropped.
func Segment(s string) []Unit {
	lines := SplitLines(s)
	switch len(lines) {
	case 0:
		return nil
	case 1:
		return []Unit{{Kind: Plain, Text: lines[0]}}
	}

	units := make([]Unit, 0, len(lines))
	for _, line := range lines {
		text := line
		if HasMarker(line) {
			text = StripMarker(line)
		}
		if text == "" {
			continue
		}
		units = append(units, Unit{Kind: Bullet, Text: text})
	}
	return units
}

// Count returns the number of units of kind k.
func Count(units []Unit, k Kind) int {
	n := 0
	for _, u := range units {
		if u.Kind == k {
			n++
		}
	}
	return n
}
