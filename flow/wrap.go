package flow

import (
	"strings"

	"github.com/jetspec/dossier/surface"
)

// Wrap breaks text into lines no wider than width when drawn in font f.
// Hard line breaks in text are kept. Words wider than the line are split
// between characters. An empty text yields no lines.
func Wrap(m surface.Measurer, f surface.Font, text string, width float64) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(m, f, para, width)...)
	}
	return lines
}

func wrapParagraph(m surface.Measurer, f surface.Font, para string, width float64) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return nil
	}

	var (
		lines []string
		line  string
	)
	for _, word := range words {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if m.StringWidth(f, candidate) <= width {
			line = candidate
			continue
		}
		if line != "" {
			lines = append(lines, line)
			line = ""
		}
		if m.StringWidth(f, word) <= width {
			line = word
			continue
		}
		pieces := splitWord(m, f, word, width)
		lines = append(lines, pieces[:len(pieces)-1]...)
		line = pieces[len(pieces)-1]
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// splitWord cuts a word that cannot fit on one line into pieces that do.
// Every piece holds at least one rune so a too-narrow column still advances.
func splitWord(m surface.Measurer, f surface.Font, word string, width float64) []string {
	var (
		pieces []string
		cur    []rune
	)
	for _, r := range word {
		next := append(cur, r)
		if len(cur) > 0 && m.StringWidth(f, string(next)) > width {
			pieces = append(pieces, string(cur))
			cur = []rune{r}
			continue
		}
		cur = next
	}
	if len(cur) > 0 {
		pieces = append(pieces, string(cur))
	}
	return pieces
}
