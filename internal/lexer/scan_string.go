package lexer

import (
	"jsxc/internal/diag"
	"jsxc/internal/token"
)

// scanString scans a single- or double-quoted JavaScript string. Escapes are
// honored for boundary purposes only; the text is kept raw.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Off
	quote := lx.cursor.Bump()
	for !lx.cursor.EOF() {
		ch := lx.cursor.Bump()
		switch ch {
		case '\\':
			lx.cursor.Bump()
		case quote:
			return lx.make(token.String, start)
		case '\n':
			lx.report(diag.LexUnterminatedString, start, "unterminated string literal")
			return lx.make(token.Invalid, start)
		}
	}
	lx.report(diag.LexUnterminatedString, start, "unterminated string literal")
	return lx.make(token.Invalid, start)
}

// scanJSXString scans a JSX attribute string. Per the JSX grammar there are
// no escape sequences, and newlines are legal inside the literal.
func (lx *Lexer) scanJSXString() token.Token {
	start := lx.cursor.Off
	quote := lx.cursor.Bump()
	for !lx.cursor.EOF() {
		if lx.cursor.Bump() == quote {
			return lx.make(token.String, start)
		}
	}
	lx.report(diag.LexUnterminatedJSXString, start, "unterminated attribute string")
	return lx.make(token.Invalid, start)
}

// scanTemplateChunk scans template literal text. start is the token start
// offset: the already consumed opening backtick for the first chunk, the
// current position for chunks resumed after an interpolation. A chunk ends
// at the closing backtick, or right before a '${', which the next call
// turns into an LBrace opening a nested ctxJS context. Routing '${' and its
// '}' through LBrace/RBrace keeps delimiter balance intact for region
// scanning, and lets tags inside interpolations transform normally.
func (lx *Lexer) scanTemplateChunk(start uint32) token.Token {
	if lx.cursor.EOF() {
		lx.report(diag.LexUnterminatedTemplate, start, "unterminated template literal")
		lx.pop()
		return lx.eofToken()
	}
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case '\\':
			lx.cursor.BumpN(2)
		case '`':
			// The opening backtick is consumed before the first chunk
			// starts, so this is always the closing one.
			lx.cursor.Bump()
			lx.pop()
			return lx.make(token.Template, start)
		case '$':
			if lx.cursor.PeekAt(1) == '{' {
				if lx.cursor.Off == start {
					lx.cursor.BumpN(2)
					lx.push(lexContext{kind: ctxJS})
					return lx.make(token.LBrace, start)
				}
				return lx.make(token.Template, start)
			}
			lx.cursor.Bump()
		default:
			lx.cursor.Bump()
		}
	}
	lx.report(diag.LexUnterminatedTemplate, start, "unterminated template literal")
	lx.pop()
	return lx.make(token.Invalid, start)
}

// scanRegex scans a regular expression literal, including its flags.
func (lx *Lexer) scanRegex() token.Token {
	start := lx.cursor.Off
	lx.cursor.Bump()
	inClass := false
	for {
		if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
			lx.report(diag.LexUnterminatedRegex, start, "unterminated regular expression")
			return lx.make(token.Invalid, start)
		}
		ch := lx.cursor.Bump()
		if ch == '\\' {
			lx.cursor.Bump()
			continue
		}
		switch ch {
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '/':
			if !inClass {
				for !lx.cursor.EOF() && isIdentContinue(lx.cursor.Peek()) {
					lx.cursor.Bump()
				}
				return lx.make(token.Regex, start)
			}
		}
	}
}
