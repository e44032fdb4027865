package rewrite

import (
	"golang.org/x/text/unicode/norm"

	"jsxc/internal/token"
)

// ImportBindings maps imported names to their local bindings, built from the
// file's import clauses. Default and namespace imports bind under their own
// name; named imports record `a as b` renames.
type ImportBindings struct {
	local map[string]string
}

// ScanImports walks the token stream and collects every static import
// clause. Dynamic `import(...)` calls and `import.meta` are ignored.
func ScanImports(tokens []token.Token) *ImportBindings {
	b := &ImportBindings{local: make(map[string]string)}
	for i := 0; i < len(tokens); i++ {
		if tokens[i].Kind == token.Keyword && tokens[i].Text == "import" {
			i = b.scanClause(tokens, i+1)
		}
	}
	return b
}

// Resolve returns the local binding for an imported name.
func (b *ImportBindings) Resolve(name string) (string, bool) {
	local, ok := b.local[norm.NFC.String(name)]
	return local, ok
}

func (b *ImportBindings) bind(imported, local string) {
	b.local[norm.NFC.String(imported)] = local
}

// scanClause consumes one import clause starting at index i (the token after
// the `import` keyword) and returns the index of the last consumed token.
func (b *ImportBindings) scanClause(tokens []token.Token, i int) int {
	kindAt := func(idx int) token.Kind {
		if idx < 0 || idx >= len(tokens) {
			return token.EOF
		}
		return tokens[idx].Kind
	}

	switch kindAt(i) {
	case token.String:
		// Side-effect import.
		return i
	case token.LParen:
		// Dynamic import call; not a declaration.
		return i - 1
	case token.Punct:
		if tokens[i].Text == "." {
			// import.meta
			return i - 1
		}
		if tokens[i].Text != "*" {
			return i - 1
		}
	case token.Ident:
		// Default import binding, possibly followed by , { ... } or , * as ns.
		b.bind(tokens[i].Text, tokens[i].Text)
		if kindAt(i+1) == token.Punct && tokens[i+1].Text == "," {
			return b.scanClause(tokens, i+2)
		}
		return i
	case token.LBrace:
		return b.scanNamed(tokens, i)
	default:
		return i - 1
	}

	// `* as ns`
	if kindAt(i+1) == token.Ident && tokens[i+1].Text == "as" && kindAt(i+2) == token.Ident {
		b.bind(tokens[i+2].Text, tokens[i+2].Text)
		return i + 2
	}
	return i
}

// scanNamed consumes a `{ a, b as c, ... }` clause starting at the LBrace.
func (b *ImportBindings) scanNamed(tokens []token.Token, i int) int {
	i++
	for i < len(tokens) {
		if tokens[i].Kind == token.RBrace {
			return i
		}
		if tokens[i].Kind == token.Ident {
			imported := tokens[i].Text
			local := imported
			if i+2 < len(tokens) &&
				tokens[i+1].Kind == token.Ident && tokens[i+1].Text == "as" &&
				tokens[i+2].Kind == token.Ident {
				local = tokens[i+2].Text
				i += 2
			}
			b.bind(imported, local)
		}
		i++
	}
	return i - 1
}
