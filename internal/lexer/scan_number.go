package lexer

import "jsxc/internal/token"

// scanNumber is lenient: it accepts any plausible numeric shape (decimal,
// hex/octal/binary prefixes, exponents, bigint suffix, numeric separators)
// without validating it. The text is copied verbatim downstream, so over- or
// under-grouping exotic literals cannot corrupt output.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Off
	isPrefixed := false
	if lx.cursor.Peek() == '0' {
		switch lx.cursor.PeekAt(1) {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			isPrefixed = true
			lx.cursor.BumpN(2)
		}
	}
	seenDot := false
	var last byte
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		switch {
		case isDec(ch) || isIdentContinue(ch):
			// Letters cover hex digits, exponent markers and the
			// bigint 'n' suffix; '_' covers numeric separators.
			last = ch
			lx.cursor.Bump()
			continue
		case ch == '.' && !seenDot && !isPrefixed:
			seenDot = true
			last = ch
			lx.cursor.Bump()
			continue
		case (ch == '+' || ch == '-') && !isPrefixed &&
			(last == 'e' || last == 'E') && isDec(lx.cursor.PeekAt(1)):
			last = ch
			lx.cursor.Bump()
			continue
		}
		break
	}
	return lx.make(token.Number, start)
}
