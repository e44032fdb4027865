package diag

import (
	"fmt"
)

// Code identifies a diagnostic condition. Ranges are reserved per phase:
// 1000 lexical, 3000 transformation, 4000 I/O.
type Code uint16

const (
	// UnknownCode is the catch-all for unclassified conditions.
	UnknownCode Code = 0

	// Lexical
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexUnterminatedTemplate     Code = 1004
	LexUnterminatedRegex        Code = 1005
	LexUnterminatedJSXString    Code = 1006

	// Transformation (structural JSX errors; both abort the file)
	XfmInfo                 Code = 3000
	XfmMalformedTag         Code = 3001
	XfmUnexpectedChildToken Code = 3002

	// I/O
	IOLoadFileError  Code = 4001
	IOWriteFileError Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown error",

	LexInfo:                     "lexical info",
	LexUnknownChar:              "unknown character",
	LexUnterminatedString:       "unterminated string literal",
	LexUnterminatedBlockComment: "unterminated block comment",
	LexUnterminatedTemplate:     "unterminated template literal",
	LexUnterminatedRegex:        "unterminated regular expression",
	LexUnterminatedJSXString:    "unterminated JSX attribute string",

	XfmInfo:                 "transform info",
	XfmMalformedTag:         "malformed tag terminator",
	XfmUnexpectedChildToken: "unexpected token in children",

	IOLoadFileError:  "failed to load file",
	IOWriteFileError: "failed to write file",
}

// ID returns the short machine-readable identifier, e.g. "XFM3001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("XFM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

// Title returns the human-readable description of the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
