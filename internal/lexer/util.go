package lexer

const runeSelf = 0x80

func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isIdentStart(b byte) bool {
	return b == '_' || b == '$' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentContinue(b byte) bool {
	return isIdentStart(b) || isDec(b)
}

// JSX element and attribute names additionally allow '-' after the first
// character (web components, aria-*, data-*).
func isJSXNameContinue(b byte) bool {
	return isIdentContinue(b) || b == '-'
}
