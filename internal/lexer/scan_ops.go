package lexer

import (
	"jsxc/internal/diag"
	"jsxc/internal/token"
)

// Longest-match operator tables. Multi-byte operators must be matched
// before their prefixes so that e.g. '=>' is not split into '=' '>'.
var (
	punct4 = []string{">>>="}
	punct3 = []string{
		"===", "!==", "...", "**=", "<<=", ">>=", ">>>", "&&=", "||=", "??=",
	}
	punct2 = []string{
		"=>", "==", "!=", "<=", ">=", "&&", "||", "??", "?.",
		"++", "--", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=",
		"<<", ">>", "**",
	}
)

const punct1 = "+-*/%=<>!?:;,.&|^~@#"

// scanPunct scans an operator or punctuator with maximal munch.
func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Off
	rest := lx.file.Content[start:]
	for _, table := range [][]string{punct4, punct3, punct2} {
		for _, op := range table {
			if hasPrefix(rest, op) {
				lx.cursor.BumpN(uint32(len(op)))
				return lx.make(token.Punct, start)
			}
		}
	}
	ch := lx.cursor.Bump()
	for i := 0; i < len(punct1); i++ {
		if punct1[i] == ch {
			return lx.make(token.Punct, start)
		}
	}
	lx.report(diag.LexUnknownChar, start, "unexpected character")
	return lx.make(token.Invalid, start)
}

func hasPrefix(b []byte, s string) bool {
	if len(b) < len(s) {
		return false
	}
	return string(b[:len(s)]) == s
}
