// Package lexer tokenizes JavaScript-with-JSX sources.
//
// The scanner is context sensitive: inside a JSX tag it produces JSXName,
// Equals, Slash, TagEnd and attribute strings; between an opening and a
// closing tag it produces raw JSXText runs; everywhere else it produces
// ordinary JavaScript tokens. Contexts are tracked on an explicit stack so
// that expression containers ({...} in attributes and children, template
// interpolations) nest to arbitrary depth.
//
// The lexer is deliberately lenient. It never fails: bytes it cannot place
// become Invalid tokens and a diagnostic, and every token's Text slices the
// original source, so a downstream pass that copies tokens verbatim
// reproduces the input byte for byte.
package lexer

import (
	"jsxc/internal/diag"
	"jsxc/internal/source"
	"jsxc/internal/token"
)

type ctxKind uint8

const (
	// ctxJS is ordinary JavaScript code: the top level, and the inside of
	// {...} containers and template interpolations.
	ctxJS ctxKind = iota
	// ctxTag is the inside of a JSX tag, between '<' and '>'.
	ctxTag
	// ctxChildren is the region between an opening tag's '>' and the next
	// child tag or expression container.
	ctxChildren
	// ctxTemplate is the literal text of a template, between backticks and
	// around interpolations.
	ctxTemplate
)

type lexContext struct {
	kind ctxKind
	// braceDepth counts unmatched '{' inside a ctxJS context; the '}' that
	// would take it below zero pops the context instead.
	braceDepth int
	// closing marks a ctxTag that started with '</'.
	closing bool
	// sawSlash marks a ctxTag whose previous token was '/'.
	sawSlash bool
}

// Lexer produces the token stream for a single file.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options

	stack []lexContext
	prev  token.Token
	// havePrev is false until the first non-trivia token is produced.
	havePrev bool
}

// New creates a lexer positioned at the start of file.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		stack:  []lexContext{{kind: ctxJS}},
	}
}

// Tokenize scans the whole file and returns its tokens, terminated by a
// single EOF token.
func Tokenize(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	// Most code averages roughly four bytes per token.
	toks := make([]token.Token, 0, len(file.Content)/4+1)
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

// Next returns the next token. After EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	var tok token.Token
	switch lx.top().kind {
	case ctxTag:
		tok = lx.nextTag()
	case ctxChildren:
		tok = lx.nextChild()
	case ctxTemplate:
		tok = lx.scanTemplateChunk(lx.cursor.Off)
	default:
		tok = lx.nextJS()
	}
	if tok.Kind != token.EOF {
		lx.prev = tok
		lx.havePrev = true
	}
	return tok
}

func (lx *Lexer) top() *lexContext {
	return &lx.stack[len(lx.stack)-1]
}

func (lx *Lexer) push(c lexContext) {
	lx.stack = append(lx.stack, c)
}

func (lx *Lexer) pop() {
	if len(lx.stack) > 1 {
		lx.stack = lx.stack[:len(lx.stack)-1]
	}
}

// jsxAllowed reports whether a '<' at the current position starts a tag.
// After a token that completes an expression, '<' is a comparison or shift.
func (lx *Lexer) jsxAllowed() bool {
	return !lx.havePrev || !lx.prev.EndsExpression()
}

// regexAllowed mirrors jsxAllowed for '/' starting a regex literal.
func (lx *Lexer) regexAllowed() bool {
	return !lx.havePrev || !lx.prev.EndsExpression()
}

func (lx *Lexer) make(kind token.Kind, start uint32) token.Token {
	return token.Token{
		Kind: kind,
		Span: source.Span{File: lx.file.ID, Start: start, End: lx.cursor.Off},
		Text: string(lx.file.Content[start:lx.cursor.Off]),
	}
}

func (lx *Lexer) eofToken() token.Token {
	off := lx.cursor.Off
	return token.Token{
		Kind: token.EOF,
		Span: source.Span{File: lx.file.ID, Start: off, End: off},
	}
}

func (lx *Lexer) report(code diag.Code, start uint32, msg string) {
	span := source.Span{File: lx.file.ID, Start: start, End: lx.cursor.Off}
	diag.ReportError(lx.opts.reporter(), code, span, msg)
}

// nextJS scans one token of ordinary JavaScript.
func (lx *Lexer) nextJS() token.Token {
	lx.skipTrivia()
	if lx.cursor.EOF() {
		return lx.eofToken()
	}
	start := lx.cursor.Off
	ch := lx.cursor.Peek()
	switch {
	case isIdentStart(ch) || ch >= runeSelf:
		return lx.scanIdentOrKeyword()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '.' && isDec(lx.cursor.PeekAt(1)):
		return lx.scanNumber()
	case ch == '"' || ch == '\'':
		return lx.scanString()
	case ch == '`':
		lx.cursor.Bump()
		lx.push(lexContext{kind: ctxTemplate})
		return lx.scanTemplateChunk(start)
	}
	switch ch {
	case '(':
		lx.cursor.Bump()
		return lx.make(token.LParen, start)
	case ')':
		lx.cursor.Bump()
		return lx.make(token.RParen, start)
	case '[':
		lx.cursor.Bump()
		return lx.make(token.LBracket, start)
	case ']':
		lx.cursor.Bump()
		return lx.make(token.RBracket, start)
	case '{':
		lx.cursor.Bump()
		lx.top().braceDepth++
		return lx.make(token.LBrace, start)
	case '}':
		lx.cursor.Bump()
		if t := lx.top(); t.braceDepth > 0 {
			t.braceDepth--
		} else {
			lx.pop()
		}
		return lx.make(token.RBrace, start)
	case '<':
		if lx.jsxAllowed() {
			lx.cursor.Bump()
			lx.push(lexContext{kind: ctxTag, closing: lx.cursor.Peek() == '/'})
			return lx.make(token.TagStart, start)
		}
		return lx.scanPunct()
	case '/':
		if lx.regexAllowed() {
			return lx.scanRegex()
		}
		return lx.scanPunct()
	default:
		return lx.scanPunct()
	}
}

// nextTag scans one token inside a JSX tag. Only whitespace separates tag
// tokens; comments are not recognized here.
func (lx *Lexer) nextTag() token.Token {
	for !lx.cursor.EOF() && isWhitespace(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if lx.cursor.EOF() {
		return lx.eofToken()
	}
	start := lx.cursor.Off
	ch := lx.cursor.Peek()
	t := lx.top()
	switch {
	case isIdentStart(ch) || ch >= runeSelf:
		for !lx.cursor.EOF() && (isJSXNameContinue(lx.cursor.Peek()) || lx.cursor.Peek() >= runeSelf) {
			lx.cursor.Bump()
		}
		t.sawSlash = false
		return lx.make(token.JSXName, start)
	case ch == '.':
		lx.cursor.Bump()
		t.sawSlash = false
		return lx.make(token.Punct, start)
	case ch == '=':
		lx.cursor.Bump()
		t.sawSlash = false
		return lx.make(token.Equals, start)
	case ch == '"' || ch == '\'':
		t.sawSlash = false
		return lx.scanJSXString()
	case ch == '{':
		lx.cursor.Bump()
		t.sawSlash = false
		lx.push(lexContext{kind: ctxJS})
		return lx.make(token.LBrace, start)
	case ch == '/':
		lx.cursor.Bump()
		t.sawSlash = true
		return lx.make(token.Slash, start)
	case ch == '>':
		lx.cursor.Bump()
		tok := lx.make(token.TagEnd, start)
		closing, selfClosing := t.closing, t.sawSlash
		lx.pop()
		switch {
		case closing:
			// The closing tag also ends the children region it was
			// scanned from.
			if lx.top().kind == ctxChildren {
				lx.pop()
			}
		case selfClosing:
			// Self-closing tags open no children region.
		default:
			lx.push(lexContext{kind: ctxChildren})
		}
		return tok
	default:
		lx.cursor.Bump()
		lx.report(diag.LexUnknownChar, start, "unexpected character in tag")
		return lx.make(token.Invalid, start)
	}
}

// nextChild scans one token of JSX children: a nested tag start, an
// expression container, or a raw text run up to the next '<' or '{'.
// Whitespace is part of the text run, never skipped.
func (lx *Lexer) nextChild() token.Token {
	if lx.cursor.EOF() {
		return lx.eofToken()
	}
	start := lx.cursor.Off
	switch lx.cursor.Peek() {
	case '<':
		lx.cursor.Bump()
		lx.push(lexContext{kind: ctxTag, closing: lx.cursor.Peek() == '/'})
		return lx.make(token.TagStart, start)
	case '{':
		lx.cursor.Bump()
		lx.push(lexContext{kind: ctxJS})
		return lx.make(token.LBrace, start)
	}
	for !lx.cursor.EOF() {
		if ch := lx.cursor.Peek(); ch == '<' || ch == '{' {
			break
		}
		lx.cursor.Bump()
	}
	return lx.make(token.JSXText, start)
}
