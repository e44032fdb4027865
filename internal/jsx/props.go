package jsx

import (
	"fmt"
	"strings"

	"jsxc/internal/token"
)

// emitProps converts the tag's attribute tokens into an object-literal
// argument. The object is always emitted, even with zero attributes, and
// carries the __self/__source debug props unless production mode is on.
// firstTokenOffset is the byte offset of the element's TagStart token; its
// line number feeds the __source metadata.
func (t *Transformer) emitProps(firstTokenOffset uint32) error {
	t.cur.AppendCode(", {")
	for {
		switch {
		case t.cur.Matches2(token.JSXName, token.Equals):
			name := t.cur.Current().Text
			if strings.Contains(name, "-") {
				t.cur.Replace("'" + name + "'")
			} else {
				t.cur.Copy()
			}
			t.cur.Replace(": ")
			if t.cur.Matches1(token.LBrace) {
				// Expression value: strip the braces, transform the interior.
				t.cur.Replace("")
				if err := t.proc.ProcessBalancedRegion(); err != nil {
					return err
				}
				t.cur.Replace("")
			} else {
				t.emitStringValue()
			}
		case t.cur.Matches1(token.JSXName):
			// Boolean shorthand attribute.
			t.cur.Copy()
			t.cur.AppendCode(": true")
		case t.cur.Matches1(token.LBrace):
			// Spread attribute: the interior reproduces verbatim inside the
			// object literal.
			t.cur.Replace("")
			if err := t.proc.ProcessBalancedRegion(); err != nil {
				return err
			}
			t.cur.Replace("")
		default:
			return t.closeProps(firstTokenOffset)
		}
		t.cur.AppendCode(",")
	}
}

func (t *Transformer) closeProps(firstTokenOffset uint32) error {
	if t.opts.Production {
		t.cur.AppendCode("}")
		return nil
	}
	line := t.lines.LineNumberAt(firstTokenOffset)
	t.cur.AppendCode(fmt.Sprintf(
		" __self: this, __source: {fileName: %s, lineNumber: %d}}",
		t.fileName.Identifier(), line,
	))
	return nil
}

// emitStringValue substitutes a string-valued attribute with its normalized
// literal. The token text includes the delimiting quotes; the formatter sees
// the raw interior exactly as written.
func (t *Transformer) emitStringValue() {
	raw := t.cur.Current().Text
	if len(raw) >= 2 {
		raw = raw[1 : len(raw)-1]
	}
	t.cur.Replace(FormatAttributeValue(raw))
}
