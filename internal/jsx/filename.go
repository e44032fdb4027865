package jsx

// FileNameBinding is the lazily-materialized, file-scoped constant holding
// the source path, shared by the __source props of every element in one file.
type FileNameBinding struct {
	path  string
	alloc NameAllocator
	ident string
}

// NewFileNameBinding creates an unbound binding for the given source path.
// path may be empty when the source has no known location.
func NewFileNameBinding(path string, alloc NameAllocator) *FileNameBinding {
	return &FileNameBinding{path: path, alloc: alloc}
}

// Identifier returns the binding's identifier, claiming one from the name
// allocator on first use. Idempotent thereafter.
func (b *FileNameBinding) Identifier() string {
	if b.ident == "" {
		b.ident = b.alloc.Claim("_jsxFileName")
	}
	return b.ident
}

// Used reports whether Identifier was ever called.
func (b *FileNameBinding) Used() bool {
	return b.ident != ""
}

// Prefix returns the one-line constant declaration to emit before the
// transformed file body, or "" when the binding was never used or no path is
// known. The declaration deliberately has no trailing newline so the file's
// line numbering is unchanged.
func (b *FileNameBinding) Prefix() string {
	if b.ident == "" || b.path == "" {
		return ""
	}
	return "const " + b.ident + " = " + QuoteStringLiteral(b.path) + ";"
}
