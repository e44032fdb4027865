package jsx

import (
	"fmt"
	"regexp"
	"strings"
)

// FormatTextLiteral normalizes a raw JSX text run into the content of a
// string-literal child argument. It returns the quoted literal and a raw
// whitespace passthrough that keeps downstream line/column accounting in
// sync with the untransformed source.
//
// Whitespace collapses as follows: leading whitespace of every line is
// dropped, trailing whitespace before a newline is dropped, and each dropped
// line break between two pieces of content becomes a single joining space.
// Inline whitespace between content on the same line is preserved, including
// at the very end of the run when the run does not finish on a
// whitespace-only line.
func FormatTextLiteral(text string) (literal, passthrough string) {
	var out []byte
	var pending []byte
	atLineStart := true
	seenContent := false

	for i := 0; i < len(text); i++ {
		switch c := text[i]; c {
		case ' ', '\t':
			if !atLineStart {
				pending = append(pending, c)
			}
		case '\n':
			pending = pending[:0]
			atLineStart = true
		default:
			if seenContent && atLineStart {
				out = append(out, ' ')
			}
			out = append(out, pending...)
			pending = pending[:0]
			out = append(out, c)
			seenContent = true
			atLineStart = false
		}
	}
	if !atLineStart {
		out = append(out, pending...)
	}
	return QuoteStringLiteral(string(out)), formatTextPassthrough(text)
}

// formatTextPassthrough emits one newline per newline in the original run,
// then one space per literal space character (not tab) seen after the last
// newline. The space count is cumulative across that trailing segment rather
// than a trailing run; the output carries no semantic content.
func formatTextPassthrough(text string) string {
	numNewlines := 0
	numSpaces := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			numNewlines++
			numSpaces = 0
		case ' ':
			numSpaces++
		}
	}
	return strings.Repeat("\n", numNewlines) + strings.Repeat(" ", numSpaces)
}

var attrNewlineRun = regexp.MustCompile(`\n[\t\n\v\f\r ]+`)

// FormatAttributeValue normalizes a raw string-valued attribute: every run
// of a newline followed by one or more whitespace characters becomes a
// single space. Returns the quoted literal.
func FormatAttributeValue(text string) string {
	return QuoteStringLiteral(attrNewlineRun.ReplaceAllString(text, " "))
}

// QuoteStringLiteral renders s as a double-quoted JavaScript string literal.
// Non-ASCII bytes pass through unescaped.
func QuoteStringLiteral(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if c < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, c)
			} else {
				b.WriteByte(c)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
