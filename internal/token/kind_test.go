package token_test

import (
	"testing"

	"jsxc/internal/token"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind token.Kind
		want string
	}{
		{token.Invalid, "Invalid"},
		{token.EOF, "EOF"},
		{token.Ident, "Ident"},
		{token.TagStart, "TagStart"},
		{token.JSXText, "JSXText"},
		{token.Kind(200), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestDelimPredicates(t *testing.T) {
	opens := []token.Kind{token.LParen, token.LBracket, token.LBrace}
	closes := []token.Kind{token.RParen, token.RBracket, token.RBrace}

	for _, k := range opens {
		if !k.IsOpenDelim() || k.IsCloseDelim() {
			t.Errorf("%v: want open-only delimiter", k)
		}
	}
	for _, k := range closes {
		if !k.IsCloseDelim() || k.IsOpenDelim() {
			t.Errorf("%v: want close-only delimiter", k)
		}
	}
	if token.TagStart.IsOpenDelim() {
		t.Error("TagStart must not count as a balanced-region delimiter")
	}
}

func TestEndsExpression(t *testing.T) {
	ends := token.Token{Kind: token.Ident}
	if !ends.EndsExpression() {
		t.Error("Ident should end an expression")
	}
	starts := token.Token{Kind: token.Keyword, Text: "return"}
	if starts.EndsExpression() {
		t.Error("Keyword should not end an expression")
	}
}
