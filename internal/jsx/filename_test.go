package jsx_test

import (
	"testing"

	"jsxc/internal/jsx"
)

// countingAllocator issues seed, seed2, seed3, ... and records claims.
type countingAllocator struct {
	claims []string
}

func (a *countingAllocator) Claim(seed string) string {
	a.claims = append(a.claims, seed)
	if n := len(a.claims); n > 1 {
		return seed + "2"
	}
	return seed
}

func TestFileNameBindingLazyAndIdempotent(t *testing.T) {
	alloc := &countingAllocator{}
	b := jsx.NewFileNameBinding("src/app.jsx", alloc)

	if b.Used() {
		t.Fatal("binding should start unused")
	}
	if got := b.Prefix(); got != "" {
		t.Fatalf("Prefix before use = %q, want empty", got)
	}

	id := b.Identifier()
	if id != "_jsxFileName" {
		t.Fatalf("Identifier = %q, want _jsxFileName", id)
	}
	if again := b.Identifier(); again != id {
		t.Fatalf("second Identifier = %q, want %q", again, id)
	}
	if len(alloc.claims) != 1 {
		t.Fatalf("allocator called %d times, want 1", len(alloc.claims))
	}

	want := `const _jsxFileName = "src/app.jsx";`
	if got := b.Prefix(); got != want {
		t.Fatalf("Prefix = %q, want %q", got, want)
	}
}

func TestFileNameBindingNoPath(t *testing.T) {
	b := jsx.NewFileNameBinding("", &countingAllocator{})
	b.Identifier()
	if got := b.Prefix(); got != "" {
		t.Fatalf("Prefix with unknown path = %q, want empty", got)
	}
}
