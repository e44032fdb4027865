package lexer

import (
	"unicode"
	"unicode/utf8"

	"jsxc/internal/token"
)

// jsKeywords lists the reserved words that cannot end an expression, so a
// '<' or '/' after one of them reads as a tag start or regex. Value words
// (this, true, false, null, undefined, super) are deliberately absent: they
// do end expressions and lex as Ident.
var jsKeywords = map[string]struct{}{
	"await": {}, "break": {}, "case": {}, "catch": {}, "class": {},
	"const": {}, "continue": {}, "debugger": {}, "default": {}, "delete": {},
	"do": {}, "else": {}, "enum": {}, "export": {}, "extends": {},
	"finally": {}, "for": {}, "function": {}, "if": {}, "import": {},
	"in": {}, "instanceof": {}, "let": {}, "new": {}, "return": {},
	"switch": {}, "throw": {}, "try": {}, "typeof": {},
	"var": {}, "void": {}, "while": {}, "with": {}, "yield": {},
}

func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Off
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		if isIdentContinue(ch) {
			lx.cursor.Bump()
			continue
		}
		if ch >= runeSelf {
			r, size := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:])
			if r != utf8.RuneError && (unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Pc, r)) {
				lx.cursor.BumpN(uint32(size))
				continue
			}
		}
		break
	}
	tok := lx.make(token.Ident, start)
	if _, reserved := jsKeywords[tok.Text]; reserved {
		tok.Kind = token.Keyword
	}
	return tok
}
