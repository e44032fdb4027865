package diagfmt_test

import (
	"strings"
	"testing"

	"jsxc/internal/diag"
	"jsxc/internal/diagfmt"
	"jsxc/internal/source"
)

func singleDiagBag(fs *source.FileSet, d diag.Diagnostic) *diag.Bag {
	bag := diag.NewBag(0)
	bag.Add(d)
	return bag
}

func TestPrettyHeaderAndUnderline(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("x.jsx", []byte("let a = b;\n"))

	bag := singleDiagBag(fs, diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.LexUnknownChar,
		Message:  "unexpected character",
		Primary:  source.Span{File: id, Start: 8, End: 9},
	})

	var sb strings.Builder
	diagfmt.Pretty(&sb, bag, fs, diagfmt.PrettyOpts{})
	got := sb.String()

	want := "x.jsx:1:9: ERROR LEX1001: unexpected character\n" +
		"  let a = b;\n" +
		"          ^\n"
	if got != want {
		t.Errorf("want:\n%q\ngot:\n%q", want, got)
	}
}

func TestPrettyMultiByteUnderline(t *testing.T) {
	fs := source.NewFileSet()
	// The span covers the three bytes of '世'; the marker must be sized by
	// display width, not byte count.
	id := fs.AddVirtual("w.jsx", []byte("a = 世;\n"))

	bag := singleDiagBag(fs, diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.LexUnknownChar,
		Message:  "bad",
		Primary:  source.Span{File: id, Start: 4, End: 7},
	})

	var sb strings.Builder
	diagfmt.Pretty(&sb, bag, fs, diagfmt.PrettyOpts{})
	lines := strings.Split(sb.String(), "\n")
	if len(lines) < 3 {
		t.Fatalf("got %q", sb.String())
	}
	if lines[2] != "      ^~" {
		t.Errorf("marker line: %q", lines[2])
	}
}

func TestPrettyZeroSpanPrintsHeaderOnly(t *testing.T) {
	fs := source.NewFileSet()
	fs.AddVirtual("x.jsx", []byte("a\n"))

	bag := singleDiagBag(fs, diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.IOLoadFileError,
		Message:  "failed to load file",
	})

	var sb strings.Builder
	diagfmt.Pretty(&sb, bag, fs, diagfmt.PrettyOpts{})
	if got := sb.String(); got != "ERROR IO4001: failed to load file\n" {
		t.Errorf("got %q", got)
	}
}

func TestPrettyNotes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("x.jsx", []byte("let a = b;\n"))

	d := diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.XfmInfo,
		Message:  "top",
		Primary:  source.Span{File: id, Start: 0, End: 3},
		Notes: []diag.Note{
			{Span: source.Span{File: id, Start: 8, End: 9}, Msg: "related"},
		},
	}

	var sb strings.Builder
	diagfmt.Pretty(&sb, singleDiagBag(fs, d), fs, diagfmt.PrettyOpts{ShowNotes: true})
	if !strings.Contains(sb.String(), "x.jsx:1:9: note: related") {
		t.Errorf("notes missing: %q", sb.String())
	}

	sb.Reset()
	diagfmt.Pretty(&sb, singleDiagBag(fs, d), fs, diagfmt.PrettyOpts{})
	if strings.Contains(sb.String(), "related") {
		t.Errorf("notes shown despite ShowNotes=false: %q", sb.String())
	}
}

func TestPrettyBasenamePathMode(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("src/deep/x.jsx", []byte("b\n"))

	bag := singleDiagBag(fs, diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.LexUnknownChar,
		Message:  "bad",
		Primary:  source.Span{File: id, Start: 0, End: 1},
	})

	var sb strings.Builder
	diagfmt.Pretty(&sb, bag, fs, diagfmt.PrettyOpts{PathMode: diagfmt.PathModeBasename})
	if !strings.HasPrefix(sb.String(), "x.jsx:1:1:") {
		t.Errorf("got %q", sb.String())
	}
}
