package layout

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/five82/coloredlogcat/internal/palette"
)

// IndentWrap breaks text into segments of width-indent runes and prefixes
// every continuation with a newline and indent spaces. The first segment is
// allowed overhead extra runes for escape sequences that take no columns.
// An invalid UTF-8 byte counts as one rune and is copied through unchanged.
// A non-positive wrap area returns text unchanged.
func IndentWrap(text string, indent, width, overhead int) string {
	area := width - indent
	if area <= 0 || utf8.RuneCountInString(text) <= area+overhead {
		return text
	}

	pad := "\n" + strings.Repeat(" ", indent)
	var b strings.Builder
	b.Grow(len(text) + (len(text)/area+1)*len(pad))

	limit := area + overhead
	for start := 0; start < len(text); {
		end := advance(text, start, limit)
		if start > 0 {
			b.WriteString(pad)
		}
		b.WriteString(text[start:end])
		start = end
		limit = area
	}
	return b.String()
}

// advance returns the byte offset n runes past start, stopping at the end of
// text.
func advance(text string, start, n int) int {
	i := start
	for ; n > 0 && i < len(text); n-- {
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}
	return i
}

// assignment matches escape sequences first so their trailing "0m" or "22m"
// can never start a key.
var assignment = regexp.MustCompile(`\x1b\[[0-9;]*m|([\w.@]+)=([\w.@]+)`)

// highlightAssignments colors key=value pairs: blue key and value around a
// green equals sign.
func highlightAssignments(text string) string {
	matches := assignment.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}
	key := palette.Fg(palette.Blue).Sequence()
	eq := palette.Fg(palette.Green).Sequence()

	var b strings.Builder
	last := 0
	for _, m := range matches {
		if m[2] < 0 {
			continue
		}
		b.WriteString(text[last:m[0]])
		b.WriteString(key)
		b.WriteString(text[m[2]:m[3]])
		b.WriteString(eq)
		b.WriteString("=")
		b.WriteString(key)
		b.WriteString(text[m[4]:m[5]])
		b.WriteString(palette.Reset())
		last = m[1]
	}
	b.WriteString(text[last:])
	return b.String()
}
