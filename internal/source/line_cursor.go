package source

// LineCursor maps byte offsets to 1-based line numbers lazily. Each query
// scans only the bytes between the previous query offset and the new one, so
// a sequence of non-decreasing queries costs one pass over the file in total.
//
// Precondition: offsets passed to LineNumberAt must be non-decreasing over
// the cursor's lifetime. Querying a smaller offset than a previous call
// yields a stale result; this is not checked at runtime.
type LineCursor struct {
	content []byte
	off     uint32
	line    uint32
}

// NewLineCursor creates a cursor positioned at the start of content.
func NewLineCursor(content []byte) *LineCursor {
	return &LineCursor{content: content, line: 1}
}

// LineNumberAt returns the 1-based line number containing the byte at off.
// Offsets past the end of the content resolve as if clamped to the end.
func (c *LineCursor) LineNumberAt(off uint32) uint32 {
	limit := off
	if n := uint32(len(c.content)); limit > n {
		limit = n
	}
	for c.off < limit {
		if c.content[c.off] == '\n' {
			c.line++
		}
		c.off++
	}
	return c.line
}
