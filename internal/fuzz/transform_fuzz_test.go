package fuzztests

import (
	"bytes"
	"testing"

	"jsxc/internal/diag"
	"jsxc/internal/driver"
	"jsxc/internal/source"
)

func FuzzTransform(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.jsx", input))

		bag := diag.NewBag(64)
		output := driver.TransformSource(file, driver.TransformOptions{Production: true}, bag)

		// Inputs with no tag start and no lexical damage must reproduce
		// byte for byte.
		if bag.Len() == 0 && !bytes.ContainsRune(file.Content, '<') {
			if output != string(file.Content) {
				t.Fatalf("non-JSX input not preserved:\nin:  %q\nout: %q", file.Content, output)
			}
		}
	})
}
