package jsx

import (
	"jsxc/internal/token"
)

// TokenCursor is the transformer's view of the shared token buffer. All
// consuming operations first emit the raw inter-token gap (whitespace and
// comments), so source outside the rewritten tokens survives byte-for-byte
// and finalized output is never edited retroactively.
type TokenCursor interface {
	// Index returns the cursor position in the token stream.
	Index() int
	// Kind returns the kind of the current token; EOF when exhausted.
	Kind() token.Kind
	// Current returns the current token.
	Current() token.Token
	// KindAt returns the kind of the token at an absolute index; EOF when
	// out of range.
	KindAt(idx int) token.Kind
	// Matches1 reports whether the current token has the given kind.
	Matches1(k token.Kind) bool
	// Matches2 reports whether the current and next tokens have the given kinds.
	Matches2(k1, k2 token.Kind) bool
	// Copy emits the current token's text unchanged and advances.
	Copy()
	// Replace emits text in place of the current token and advances.
	Replace(text string)
	// Remove emits nothing for the current token (its leading gap is kept)
	// and advances.
	Remove()
	// AppendCode emits text at the current output position without consuming
	// a token.
	AppendCode(text string)
}

// Processor re-enters the generic, non-JSX rewriting machinery. The two entry
// points and the transformer are mutually recursive: JSX can nest inside
// expressions and vice versa.
type Processor interface {
	// ProcessToken applies all non-JSX-specific rewrites to the current token
	// and advances; a TagStart token re-enters the JSX transformer.
	ProcessToken() error
	// ProcessBalancedRegion transforms the interior of a brace-, paren-, or
	// bracket-delimited region: it consumes tokens, tracking delimiter depth,
	// until the unmatched closing delimiter is current. The caller consumes
	// the delimiter itself (the JSX emitters strip it).
	ProcessBalancedRegion() error
}

// ImportResolver maps a logical imported name to its possibly-renamed local
// binding in the file being transformed.
type ImportResolver interface {
	// Resolve returns the local binding for name and true, or "" and false
	// when the file does not bind it.
	Resolve(name string) (string, bool)
}

// NameAllocator issues identifiers guaranteed unused elsewhere in the file.
type NameAllocator interface {
	Claim(seed string) string
}
