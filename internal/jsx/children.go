package jsx

import (
	"jsxc/internal/diag"
	"jsxc/internal/token"
)

// emitChildren converts the element's child tokens into comma-prefixed call
// arguments, stopping at the closing tag's start marker (`</`), which is
// left for the caller to consume.
func (t *Transformer) emitChildren() error {
	for {
		switch {
		case t.cur.Matches2(token.TagStart, token.Slash):
			return nil
		case t.cur.Matches2(token.LBrace, token.RBrace):
			// Empty or comment-only interpolation: no argument. The gap
			// between the braces (the comment, if any) is preserved.
			t.cur.Replace("")
			t.cur.Replace("")
		case t.cur.Matches1(token.LBrace):
			t.cur.Replace(", ")
			if err := t.proc.ProcessBalancedRegion(); err != nil {
				return err
			}
			t.cur.Replace("")
		case t.cur.Matches1(token.TagStart):
			t.cur.AppendCode(", ")
			if err := t.TransformElement(); err != nil {
				return err
			}
		case t.cur.Matches1(token.JSXText):
			t.emitTextChild()
		case t.cur.Matches1(token.EOF):
			return structuralErr(diag.XfmMalformedTag, t.cur.Current().Span,
				"malformed tag terminator")
		default:
			return structuralErr(diag.XfmUnexpectedChildToken, t.cur.Current().Span,
				"unexpected token in children")
		}
	}
}

// emitTextChild replaces a raw text run with its argument form. A run whose
// normalized literal is empty contributes no argument, only the whitespace
// passthrough keeping line accounting intact.
func (t *Transformer) emitTextChild() {
	literal, passthrough := FormatTextLiteral(t.cur.Current().Text)
	if literal == `""` {
		t.cur.Replace(passthrough)
		return
	}
	t.cur.Replace(", " + literal + passthrough)
}
