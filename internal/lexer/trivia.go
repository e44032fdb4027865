package lexer

import "jsxc/internal/diag"

// skipTrivia advances the cursor past whitespace and comments. Trivia is
// never tokenized; it lives in the gap between adjacent token spans.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		if isWhitespace(ch) {
			lx.cursor.Bump()
			continue
		}
		if ch != '/' {
			return
		}
		b0, b1, ok := lx.cursor.Peek2()
		if !ok || b0 != '/' {
			return
		}
		switch b1 {
		case '/':
			lx.skipLineComment()
		case '*':
			lx.skipBlockComment()
		default:
			return
		}
	}
}

func (lx *Lexer) skipLineComment() {
	lx.cursor.BumpN(2)
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
}

func (lx *Lexer) skipBlockComment() {
	start := lx.cursor.Off
	lx.cursor.BumpN(2)
	for {
		if lx.cursor.EOF() {
			lx.report(diag.LexUnterminatedBlockComment, start, "unterminated block comment")
			return
		}
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '*' && b1 == '/' {
			lx.cursor.BumpN(2)
			return
		}
		lx.cursor.Bump()
	}
}
