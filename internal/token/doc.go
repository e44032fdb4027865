// Package token defines lexical token kinds for the jsxc rewriter.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - Whitespace and comments never appear in the token stream; they live in
//     the inter-token gaps and are recovered from spans by the rewriter.
//   - JSX-specific kinds (TagStart, TagEnd, Slash, JSXName, Equals, JSXText)
//     are only produced inside JSX contexts; the same source characters lex
//     as Punct elsewhere.
package token
