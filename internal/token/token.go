package token

import (
	"jsxc/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsIdentLike reports whether the token text names an identifier binding
// (used by the import scanner and the name allocator).
func (t Token) IsIdentLike() bool {
	switch t.Kind {
	case Ident, Keyword, JSXName:
		return true
	default:
		return false
	}
}

// EndsExpression reports whether a '<' following this token reads as a
// comparison or shift rather than a JSX tag start.
func (t Token) EndsExpression() bool {
	switch t.Kind {
	case Ident, Number, String, Template, Regex, RParen, RBracket, TagEnd:
		return true
	default:
		return false
	}
}
