package rewrite

import (
	"strings"

	"jsxc/internal/source"
	"jsxc/internal/token"
)

// Buffer walks a token slice once, building the rewritten output as it goes.
// Every consuming operation first flushes the raw inter-token gap (the
// whitespace and comments between the previously consumed token and the
// current one), so bytes outside replaced tokens survive verbatim and
// finalized output is never edited retroactively.
type Buffer struct {
	file    *source.File
	tokens  []token.Token
	idx     int
	emitted uint32 // end offset of the last consumed token
	out     strings.Builder
}

// NewBuffer creates a buffer positioned at the first token.
func NewBuffer(file *source.File, tokens []token.Token) *Buffer {
	b := &Buffer{file: file, tokens: tokens}
	b.out.Grow(len(file.Content) + len(file.Content)/4)
	return b
}

// Index returns the cursor position.
func (b *Buffer) Index() int { return b.idx }

// Kind returns the current token's kind, or EOF past the end.
func (b *Buffer) Kind() token.Kind {
	return b.KindAt(b.idx)
}

// KindAt returns the kind at an absolute index, or EOF out of range.
func (b *Buffer) KindAt(idx int) token.Kind {
	if idx < 0 || idx >= len(b.tokens) {
		return token.EOF
	}
	return b.tokens[idx].Kind
}

// Current returns the current token; past the end it returns a synthetic EOF
// token spanning the end of the file.
func (b *Buffer) Current() token.Token {
	if b.idx >= len(b.tokens) {
		end := uint32(len(b.file.Content))
		return token.Token{
			Kind: token.EOF,
			Span: source.Span{File: b.file.ID, Start: end, End: end},
		}
	}
	return b.tokens[b.idx]
}

// Matches1 reports whether the current token has kind k.
func (b *Buffer) Matches1(k token.Kind) bool {
	return b.Kind() == k
}

// Matches2 reports whether the current and next tokens have kinds k1, k2.
func (b *Buffer) Matches2(k1, k2 token.Kind) bool {
	return b.Kind() == k1 && b.KindAt(b.idx+1) == k2
}

// AtEOF reports whether all significant tokens are consumed.
func (b *Buffer) AtEOF() bool {
	return b.Kind() == token.EOF
}

// flushGap emits the source bytes between the last consumed token and the
// current one.
func (b *Buffer) flushGap() {
	tok := b.Current()
	if tok.Span.Start > b.emitted {
		b.out.Write(b.file.Content[b.emitted:tok.Span.Start])
	}
	b.emitted = tok.Span.End
}

// Copy emits the current token's text unchanged and advances.
func (b *Buffer) Copy() {
	if b.AtEOF() {
		return
	}
	b.flushGap()
	b.out.WriteString(b.tokens[b.idx].Text)
	b.idx++
}

// Replace emits text in place of the current token and advances.
func (b *Buffer) Replace(text string) {
	if b.AtEOF() {
		return
	}
	b.flushGap()
	b.out.WriteString(text)
	b.idx++
}

// Remove consumes the current token, emitting only its leading gap.
func (b *Buffer) Remove() {
	b.Replace("")
}

// AppendCode emits text at the current output position without consuming a
// token.
func (b *Buffer) AppendCode(text string) {
	b.out.WriteString(text)
}

// Finish flushes the trailing bytes after the last consumed token and
// returns the full rewritten text.
func (b *Buffer) Finish() string {
	if int(b.emitted) < len(b.file.Content) {
		b.out.Write(b.file.Content[b.emitted:])
		b.emitted = uint32(len(b.file.Content))
	}
	return b.out.String()
}
