package jsx

import (
	"jsxc/internal/diag"
	"jsxc/internal/source"
	"jsxc/internal/token"
)

// Transformer turns one JSX tag, and recursively its descendants, into one
// factory-call expression. It owns the token range from the element's
// TagStart through its matching TagEnd; non-JSX spans inside are delegated
// back to the generic processor.
type Transformer struct {
	cur      TokenCursor
	proc     Processor
	resolver ImportResolver
	lines    *source.LineCursor
	fileName *FileNameBinding
	opts     Options
}

// NewTransformer wires the transformer to its per-pass collaborators.
func NewTransformer(
	cur TokenCursor,
	proc Processor,
	resolver ImportResolver,
	lines *source.LineCursor,
	fileName *FileNameBinding,
	opts Options,
) *Transformer {
	return &Transformer{
		cur:      cur,
		proc:     proc,
		resolver: resolver,
		lines:    lines,
		fileName: fileName,
		opts:     opts,
	}
}

// TransformElement rewrites the element whose TagStart token is current.
// On return the cursor sits just past the element's final consumed token.
// The only failure modes are the two structural fatals: a tag terminator
// matching neither recognized form, and an unexpected token kind in child
// position; both abort the whole file.
func (t *Transformer) TransformElement() error {
	firstOffset := t.cur.Current().Span.Start

	factory := t.opts.factoryBase()
	if local, ok := t.resolver.Resolve(factory); ok {
		factory = local
	}
	t.cur.Replace(factory + t.opts.factorySuffix() + "(")

	if err := t.scanTagIntro(); err != nil {
		return err
	}
	if err := t.emitProps(firstOffset); err != nil {
		return err
	}

	switch {
	case t.cur.Matches2(token.Slash, token.TagEnd):
		// Self-closing element, no children.
		t.cur.Replace(")")
		t.cur.Remove()
	case t.cur.Matches1(token.TagEnd):
		t.cur.Replace("")
		if err := t.emitChildren(); err != nil {
			return err
		}
		// Discard the closing tag's own markers and name.
		for !t.cur.Matches1(token.TagEnd) {
			if t.cur.Kind() == token.EOF {
				return structuralErr(diag.XfmMalformedTag, t.cur.Current().Span,
					"malformed tag terminator")
			}
			t.cur.Remove()
		}
		t.cur.Replace(")")
	default:
		return structuralErr(diag.XfmMalformedTag, t.cur.Current().Span,
			"malformed tag terminator")
	}
	return nil
}

// scanTagIntro consumes the tag-name span: every token up to the first
// position starting the props region or the tag terminator. The boundary is
// the first of (a) two consecutive name tokens, the second starting a
// boolean-shorthand attribute, (b) a brace-open starting an expression or
// spread attribute, or (c) the tag terminator itself.
//
// A single-token name with a lower-case initial denotes a built-in element
// and is rewritten as a quoted string; dotted and upper-case names stay
// identifier expressions and take the generic identifier rewrites.
func (t *Transformer) scanTagIntro() error {
	introEnd := t.cur.Index() + 1
	for {
		if t.cur.KindAt(introEnd-1) == token.JSXName && t.cur.KindAt(introEnd) == token.JSXName {
			break
		}
		k := t.cur.KindAt(introEnd)
		if k == token.LBrace || k == token.TagEnd || k == token.Slash || k == token.EOF {
			break
		}
		introEnd++
	}

	if introEnd == t.cur.Index()+1 && t.cur.Matches1(token.JSXName) {
		if name := t.cur.Current().Text; startsWithLowerCase(name) {
			t.cur.Replace("'" + name + "'")
		}
	}
	for t.cur.Index() < introEnd {
		if t.cur.Kind() == token.EOF {
			break
		}
		if err := t.proc.ProcessToken(); err != nil {
			return err
		}
	}
	return nil
}

func startsWithLowerCase(name string) bool {
	return len(name) > 0 && name[0] >= 'a' && name[0] <= 'z'
}
