package rewrite

import (
	"jsxc/internal/jsx"
	"jsxc/internal/source"
	"jsxc/internal/token"
)

// Pass is the generic token processor for one file: it walks the token
// buffer once, copying everything that is not JSX and handing JSX tag starts
// to the element transformer. The transformer calls back into the pass for
// expressions embedded in tags, so the two are mutually recursive.
//
// All per-file state (line cursor, file-name binding, name allocator, import
// bindings) lives here for exactly one Run; nothing survives across files.
type Pass struct {
	buf      *Buffer
	elements *jsx.Transformer
	fileName *jsx.FileNameBinding
}

// NewPass builds the full rewriting pipeline for one tokenized file.
func NewPass(file *source.File, tokens []token.Token, opts jsx.Options) *Pass {
	buf := NewBuffer(file, tokens)
	names := NewNameAllocator(tokens)
	bindings := ScanImports(tokens)
	fileName := jsx.NewFileNameBinding(file.Path, names)
	lines := source.NewLineCursor(file.Content)

	p := &Pass{buf: buf, fileName: fileName}
	p.elements = jsx.NewTransformer(buf, p, bindings, lines, fileName, opts)
	return p
}

// Run transforms the whole file and returns the rewritten source, prefixed
// by the file-name constant declaration when any element used it. A
// structural error aborts with no output.
func (p *Pass) Run() (string, error) {
	for !p.buf.AtEOF() {
		if err := p.ProcessToken(); err != nil {
			return "", err
		}
	}
	return p.fileName.Prefix() + p.buf.Finish(), nil
}

// ProcessToken applies the non-JSX-specific rewrite to the current token and
// advances. A TagStart token re-enters the JSX transformer, which owns the
// whole element before returning here.
func (p *Pass) ProcessToken() error {
	if p.buf.Kind() == token.TagStart {
		return p.elements.TransformElement()
	}
	p.buf.Copy()
	return nil
}

// ProcessBalancedRegion transforms a delimiter-balanced region's interior:
// tokens are processed until the unmatched closing delimiter is current,
// which is left for the caller. Unbalanced input simply runs to EOF; the
// caller's terminator checks surface the structural error.
func (p *Pass) ProcessBalancedRegion() error {
	depth := 0
	for {
		k := p.buf.Kind()
		switch {
		case k == token.EOF:
			return nil
		case k.IsOpenDelim():
			depth++
			p.buf.Copy()
		case k.IsCloseDelim():
			if depth == 0 {
				return nil
			}
			depth--
			p.buf.Copy()
		default:
			if err := p.ProcessToken(); err != nil {
				return err
			}
		}
	}
}
