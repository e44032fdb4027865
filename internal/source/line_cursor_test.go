package source_test

import (
	"bytes"
	"testing"

	"jsxc/internal/source"
)

// directLineNumber independently counts newlines before off.
func directLineNumber(content []byte, off int) uint32 {
	if off > len(content) {
		off = len(content)
	}
	return uint32(1 + bytes.Count(content[:off], []byte("\n")))
}

func TestLineCursorMatchesDirectCount(t *testing.T) {
	content := []byte("const a = 1;\nconst b = 2;\n\nfunction f() {\n  return a + b;\n}\n")
	cursor := source.NewLineCursor(content)

	for off := 0; off <= len(content); off += 3 {
		got := cursor.LineNumberAt(uint32(off))
		want := directLineNumber(content, off)
		if got != want {
			t.Fatalf("LineNumberAt(%d) = %d, want %d", off, got, want)
		}
	}
}

func TestLineCursorRepeatedOffset(t *testing.T) {
	content := []byte("a\nb\nc")
	cursor := source.NewLineCursor(content)

	if got := cursor.LineNumberAt(4); got != 3 {
		t.Fatalf("LineNumberAt(4) = %d, want 3", got)
	}
	// Same offset again must be stable.
	if got := cursor.LineNumberAt(4); got != 3 {
		t.Fatalf("repeated LineNumberAt(4) = %d, want 3", got)
	}
}

func TestLineCursorNewlineBelongsToItsLine(t *testing.T) {
	content := []byte("ab\ncd")
	cursor := source.NewLineCursor(content)

	// Offset 2 is the newline terminating line 1.
	if got := cursor.LineNumberAt(2); got != 1 {
		t.Fatalf("LineNumberAt(2) = %d, want 1", got)
	}
	if got := cursor.LineNumberAt(3); got != 2 {
		t.Fatalf("LineNumberAt(3) = %d, want 2", got)
	}
}

func TestLineCursorOffsetPastEnd(t *testing.T) {
	cursor := source.NewLineCursor([]byte("x\ny"))
	if got := cursor.LineNumberAt(100); got != 2 {
		t.Fatalf("LineNumberAt(100) = %d, want 2", got)
	}
}

func TestLineCursorEmptyContent(t *testing.T) {
	cursor := source.NewLineCursor(nil)
	if got := cursor.LineNumberAt(0); got != 1 {
		t.Fatalf("LineNumberAt(0) = %d, want 1", got)
	}
}
