package rewrite

import (
	"strconv"

	"golang.org/x/text/unicode/norm"

	"jsxc/internal/token"
)

// NameAllocator issues identifiers guaranteed not to collide with any
// identifier-like token in the file. Identifier texts are NFC-normalized
// before comparison, matching ECMAScript's notion of identifier equality.
type NameAllocator struct {
	used map[string]bool
}

// NewNameAllocator collects every identifier-like token text from the file's
// token stream.
func NewNameAllocator(tokens []token.Token) *NameAllocator {
	used := make(map[string]bool)
	for i := range tokens {
		if tokens[i].IsIdentLike() {
			used[norm.NFC.String(tokens[i].Text)] = true
		}
	}
	return &NameAllocator{used: used}
}

// Claim returns the first unused name among seed, seed2, seed3, ... and
// marks it used.
func (a *NameAllocator) Claim(seed string) string {
	name := seed
	for i := 2; a.used[name]; i++ {
		name = seed + strconv.Itoa(i)
	}
	a.used[name] = true
	return name
}
