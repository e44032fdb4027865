package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier or expression-like word (this, true, ...).
	Ident
	// Keyword represents a reserved word that cannot end an expression.
	Keyword
	// Number represents a numeric literal.
	Number
	// String represents a single- or double-quoted string literal, quotes included.
	String
	// Template represents a template literal chunk, backticks included on the
	// outer ends. Interpolations interrupt chunks with LBrace/RBrace tokens.
	Template
	// Regex represents a regular expression literal with its flags.
	Regex
	// Punct represents any operator or punctuation not listed separately.
	Punct

	// LParen represents '('.
	LParen
	// RParen represents ')'.
	RParen
	// LBracket represents '['.
	LBracket
	// RBracket represents ']'.
	RBracket
	// LBrace represents '{', or the '${' opening a template interpolation.
	LBrace
	// RBrace represents '}'.
	RBrace

	// TagStart represents the '<' opening a JSX tag (including '</').
	TagStart
	// TagEnd represents the '>' closing a JSX tag.
	TagEnd
	// Slash represents '/' inside a JSX tag.
	Slash
	// JSXName represents a tag or attribute name; hyphens are part of the name.
	JSXName
	// Equals represents '=' between a JSX attribute name and its value.
	Equals
	// JSXText represents a raw text run between JSX tags.
	JSXText
)

var kindNames = [...]string{
	Invalid:  "Invalid",
	EOF:      "EOF",
	Ident:    "Ident",
	Keyword:  "Keyword",
	Number:   "Number",
	String:   "String",
	Template: "Template",
	Regex:    "Regex",
	Punct:    "Punct",
	LParen:   "LParen",
	RParen:   "RParen",
	LBracket: "LBracket",
	RBracket: "RBracket",
	LBrace:   "LBrace",
	RBrace:   "RBrace",
	TagStart: "TagStart",
	TagEnd:   "TagEnd",
	Slash:    "Slash",
	JSXName:  "JSXName",
	Equals:   "Equals",
	JSXText:  "JSXText",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Unknown"
}

// IsOpenDelim reports whether the kind opens a balanced region.
func (k Kind) IsOpenDelim() bool {
	switch k {
	case LParen, LBracket, LBrace:
		return true
	default:
		return false
	}
}

// IsCloseDelim reports whether the kind closes a balanced region.
func (k Kind) IsCloseDelim() bool {
	switch k {
	case RParen, RBracket, RBrace:
		return true
	default:
		return false
	}
}
