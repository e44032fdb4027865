package jsx

import (
	"jsxc/internal/diag"
	"jsxc/internal/source"
)

// StructuralError is a fatal malformed-input condition. It aborts the whole
// file's transformation: no partial output, no recovery.
type StructuralError struct {
	Code diag.Code
	Span source.Span
	Msg  string
}

func (e *StructuralError) Error() string {
	return e.Msg
}

func structuralErr(code diag.Code, span source.Span, msg string) error {
	return &StructuralError{Code: code, Span: span, Msg: msg}
}
