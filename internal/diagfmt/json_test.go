package diagfmt_test

import (
	"encoding/json"
	"strings"
	"testing"

	"jsxc/internal/diag"
	"jsxc/internal/diagfmt"
	"jsxc/internal/lexer"
	"jsxc/internal/source"
	"jsxc/internal/token"
)

func TestDiagnosticsJSON(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("x.jsx", []byte("let a = b;\n"))

	bag := diag.NewBag(0)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.XfmMalformedTag,
		Message:  "malformed tag terminator",
		Primary:  source.Span{File: id, Start: 8, End: 9},
		Notes: []diag.Note{
			{Span: source.Span{File: id, Start: 0, End: 3}, Msg: "started here"},
		},
	})

	var sb strings.Builder
	err := diagfmt.JSON(&sb, bag, fs, diagfmt.JSONOpts{
		IncludePositions: true,
		IncludeNotes:     true,
	})
	if err != nil {
		t.Fatal(err)
	}

	var out diagfmt.DiagnosticsOutput
	if err := json.Unmarshal([]byte(sb.String()), &out); err != nil {
		t.Fatal(err)
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("got %+v", out)
	}
	d := out.Diagnostics[0]
	if d.Code != "XFM3001" || d.Severity != "ERROR" {
		t.Errorf("got %+v", d)
	}
	if d.Location.StartLine != 1 || d.Location.StartCol != 9 {
		t.Errorf("location %+v", d.Location)
	}
	if len(d.Notes) != 1 || d.Notes[0].Message != "started here" {
		t.Errorf("notes %+v", d.Notes)
	}
}

func TestDiagnosticsJSONMaxTruncatesListingNotCount(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("x.jsx", []byte("ab\n"))

	bag := diag.NewBag(0)
	for i := uint32(0); i < 3; i++ {
		bag.Add(diag.Diagnostic{
			Severity: diag.SevWarning,
			Code:     diag.LexUnknownChar,
			Message:  "w",
			Primary:  source.Span{File: id, Start: i, End: i + 1},
		})
	}

	out := diagfmt.BuildDiagnosticsOutput(bag, fs, diagfmt.JSONOpts{Max: 2})
	if len(out.Diagnostics) != 2 {
		t.Errorf("listing length %d", len(out.Diagnostics))
	}
	if out.Count != 3 {
		t.Errorf("count %d", out.Count)
	}
}

func TestFormatTokensJSON(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("x.jsx", []byte("let a = 1;")))
	toks := lexer.Tokenize(file, lexer.Options{})

	var sb strings.Builder
	if err := diagfmt.FormatTokensJSON(&sb, toks); err != nil {
		t.Fatal(err)
	}

	var out []diagfmt.TokenOutput
	if err := json.Unmarshal([]byte(sb.String()), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 6 {
		t.Fatalf("got %d tokens: %+v", len(out), out)
	}
	if out[0].Kind != token.Keyword.String() || out[0].Text != "let" {
		t.Errorf("first token %+v", out[0])
	}
	if out[len(out)-1].Kind != token.EOF.String() {
		t.Errorf("missing EOF entry: %+v", out[len(out)-1])
	}
}

func TestFormatTokensPretty(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("x.jsx", []byte("a = 1;")))
	toks := lexer.Tokenize(file, lexer.Options{})

	var sb strings.Builder
	if err := diagfmt.FormatTokensPretty(&sb, toks, fs); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(sb.String(), `"a" at 1:1-1:2`) {
		t.Errorf("got %q", sb.String())
	}
}
