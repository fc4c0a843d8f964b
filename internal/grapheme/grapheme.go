// Package grapheme wraps uniseg and go-runewidth for the rendering and
// word-movement needs of the code block.
package grapheme

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns the grapheme clusters of text in order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Width returns the terminal cell width of a single cluster or a string.
// Zero-width results fall back to uniseg so combining sequences that
// runewidth does not know still occupy a cell.
func Width(text string) int {
	w := runewidth.StringWidth(text)
	if w <= 0 {
		if fallback := uniseg.StringWidth(text); fallback > 0 {
			return fallback
		}
		return 0
	}
	return w
}

// Truncate cuts text to at most cells terminal cells without splitting a
// cluster. cells <= 0 means no limit.
func Truncate(text string, cells int) string {
	if cells <= 0 || Width(text) <= cells {
		return text
	}
	var sb strings.Builder
	used := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		w := Width(g.Str())
		if used+w > cells {
			break
		}
		sb.WriteString(g.Str())
		used += w
	}
	return sb.String()
}

// PadRight appends spaces until text is cells wide.
func PadRight(text string, cells int) string {
	w := Width(text)
	if w >= cells {
		return text
	}
	return text + strings.Repeat(" ", cells-w)
}

// IsSpace reports whether every rune of cluster is whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsWord reports whether r belongs to an identifier-like word.
func IsWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
