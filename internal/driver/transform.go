// Package driver assembles the lexing and rewriting phases into whole-file
// and whole-directory operations for the CLI.
package driver

import (
	"errors"

	"jsxc/internal/diag"
	"jsxc/internal/jsx"
	"jsxc/internal/lexer"
	"jsxc/internal/rewrite"
	"jsxc/internal/source"
)

// TransformOptions configures a transformation run.
type TransformOptions struct {
	// Pragma overrides the element-factory expression. Empty means the
	// default, React.createElement.
	Pragma string
	// Production omits the __self/__source debug props.
	Production bool
	// MaxDiagnostics caps each file's diagnostic bag. Non-positive means
	// diag.DefaultCap.
	MaxDiagnostics int
}

func (o TransformOptions) jsxOptions() jsx.Options {
	return jsx.Options{Pragma: o.Pragma, Production: o.Production}
}

// TransformResult holds one file's transformation outcome. Output is empty
// when the file had a structural error; the error is then in Bag.
type TransformResult struct {
	Path    string
	FileID  source.FileID
	Output  string
	Bag     *diag.Bag
	FileSet *source.FileSet
}

// TransformSource tokenizes and rewrites one already-loaded file,
// accumulating diagnostics into bag. A structural error becomes a
// transform diagnostic and an empty output.
func TransformSource(file *source.File, opts TransformOptions, bag *diag.Bag) string {
	reporter := diag.BagReporter{Bag: bag}
	tokens := lexer.Tokenize(file, lexer.Options{Reporter: reporter})

	out, err := rewrite.NewPass(file, tokens, opts.jsxOptions()).Run()
	if err != nil {
		var serr *jsx.StructuralError
		if errors.As(err, &serr) {
			bag.Add(diag.Diagnostic{
				Severity: diag.SevError,
				Code:     serr.Code,
				Message:  serr.Msg,
				Primary:  serr.Span,
			})
		} else {
			bag.Add(diag.Diagnostic{
				Severity: diag.SevError,
				Code:     diag.XfmInfo,
				Message:  err.Error(),
			})
		}
		return ""
	}
	return out
}

// TransformFile loads and transforms a single file from disk.
func TransformFile(path string, opts TransformOptions) (*TransformResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(opts.MaxDiagnostics)
	output := TransformSource(file, opts, bag)

	return &TransformResult{
		Path:    path,
		FileID:  fileID,
		Output:  output,
		Bag:     bag,
		FileSet: fs,
	}, nil
}
