package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"jsxc/internal/diag"
	"jsxc/internal/source"
)

// Pretty formats diagnostics for terminal output. It walks bag.Items()
// (call bag.Sort() first for stable order) and prints, per diagnostic:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	  <source line>
//	  ^~~~~
//
// followed by the notes in the same location format when opts.ShowNotes is
// set. Diagnostics with a zero span (I/O errors) print the header only.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	sev := d.Severity.String()
	code := d.Code.ID()
	if opts.Color {
		sev = severityColor(d.Severity).Sprint(sev)
		code = color.New(color.Bold).Sprint(code)
	}

	if d.Primary.Empty() && d.Primary.Start == 0 {
		fmt.Fprintf(w, "%s %s: %s\n", sev, code, d.Message)
		return
	}

	start, _ := fs.Resolve(d.Primary)
	path := displayPath(fs, d.Primary.File, opts.PathMode)
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", path, start.Line, start.Col, sev, code, d.Message)
	underlineSpan(w, fs, d.Primary, start, opts)

	if !opts.ShowNotes {
		return
	}
	for _, n := range d.Notes {
		nStart, _ := fs.Resolve(n.Span)
		nPath := displayPath(fs, n.Span.File, opts.PathMode)
		note := "note"
		if opts.Color {
			note = color.New(color.FgCyan).Sprint(note)
		}
		fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", nPath, nStart.Line, nStart.Col, note, n.Msg)
	}
}

// underlineSpan prints the offending source line and a ^~~~ marker under the
// spanned columns. Spans reaching past the line end are clipped to it; the
// marker is sized by display width so wide runes stay aligned.
func underlineSpan(w io.Writer, fs *source.FileSet, span source.Span, start source.LineCol, opts PrettyOpts) {
	file := fs.Get(span.File)
	if file == nil {
		return
	}
	line := file.GetLine(start.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "  %s\n", line)

	col := int(start.Col) - 1
	if col > len(line) {
		col = len(line)
	}
	pad := runewidth.StringWidth(line[:col])

	spanned := int(span.Len())
	if spanned < 1 {
		spanned = 1
	}
	if col+spanned > len(line) {
		spanned = len(line) - col
	}
	width := 1
	if spanned > 0 {
		width = runewidth.StringWidth(line[col : col+spanned])
		if width < 1 {
			width = 1
		}
	}

	marker := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		marker = severityColor(diag.SevError).Sprint(marker)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", pad), marker)
}

func severityColor(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}

func displayPath(fs *source.FileSet, id source.FileID, mode PathMode) string {
	file := fs.Get(id)
	if file == nil {
		return "<unknown>"
	}
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(file.Path); err == nil {
			return abs
		}
	case PathModeRelative:
		if base := fs.BaseDir(); base != "" {
			if rel, err := filepath.Rel(base, file.Path); err == nil {
				return rel
			}
		}
	case PathModeBasename:
		return filepath.Base(file.Path)
	}
	return file.Path
}
