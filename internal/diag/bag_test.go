package diag_test

import (
	"testing"

	"jsxc/internal/diag"
	"jsxc/internal/source"
)

func TestBagCap(t *testing.T) {
	bag := diag.NewBag(2)
	for i := 0; i < 3; i++ {
		added := bag.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.XfmMalformedTag})
		if i < 2 && !added {
			t.Fatalf("Add %d: dropped below cap", i)
		}
		if i == 2 && added {
			t.Fatal("Add above cap should be dropped")
		}
	}
	if bag.Len() != 2 {
		t.Fatalf("Len = %d, want 2", bag.Len())
	}
}

func TestBagDefaultCap(t *testing.T) {
	for _, max := range []int{0, -1} {
		bag := diag.NewBag(max)
		if bag.Cap() != diag.DefaultCap {
			t.Errorf("NewBag(%d).Cap() = %d, want %d", max, bag.Cap(), diag.DefaultCap)
		}
		if !bag.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.XfmMalformedTag}) {
			t.Errorf("NewBag(%d) dropped the first diagnostic", max)
		}
	}
	if got := diag.NewBag(1 << 20).Cap(); got != 1<<16-1 {
		t.Errorf("oversized max: Cap() = %d, want %d", got, 1<<16-1)
	}
}

func TestBagMergeCapSaturates(t *testing.T) {
	fill := func(n int) *diag.Bag {
		bag := diag.NewBag(n)
		for i := 0; i < n; i++ {
			bag.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.LexUnknownChar})
		}
		return bag
	}
	a := fill(40000)
	a.Merge(fill(40000))
	if a.Len() != 80000 {
		t.Fatalf("Len = %d, want 80000", a.Len())
	}
	if a.Cap() != 1<<16-1 {
		t.Errorf("Cap = %d, want %d (saturated, not wrapped)", a.Cap(), 1<<16-1)
	}
}

func TestBagHasErrors(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{Severity: diag.SevWarning})
	if bag.HasErrors() {
		t.Error("warning-only bag should not report errors")
	}
	if !bag.HasWarnings() {
		t.Error("expected HasWarnings")
	}
	bag.Add(diag.Diagnostic{Severity: diag.SevError})
	if !bag.HasErrors() {
		t.Error("expected HasErrors after adding an error")
	}
}

func TestBagSortAndDedup(t *testing.T) {
	bag := diag.NewBag(10)
	spanAt := func(start uint32) source.Span {
		return source.Span{Start: start, End: start + 1}
	}
	bag.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.XfmMalformedTag, Primary: spanAt(9)})
	bag.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.LexUnknownChar, Primary: spanAt(2)})
	bag.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.XfmMalformedTag, Primary: spanAt(9)})

	bag.Sort()
	bag.Dedup()

	items := bag.Items()
	if len(items) != 2 {
		t.Fatalf("after dedup: %d items, want 2", len(items))
	}
	if items[0].Primary.Start != 2 || items[1].Primary.Start != 9 {
		t.Errorf("sort order wrong: %v, %v", items[0].Primary, items[1].Primary)
	}
}

func TestCodeID(t *testing.T) {
	tests := []struct {
		code diag.Code
		want string
	}{
		{diag.LexUnknownChar, "LEX1001"},
		{diag.XfmMalformedTag, "XFM3001"},
		{diag.IOLoadFileError, "IO4001"},
		{diag.UnknownCode, "E0000"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.want {
			t.Errorf("Code(%d).ID() = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestBagReporter(t *testing.T) {
	bag := diag.NewBag(5)
	r := diag.BagReporter{Bag: bag}
	diag.ReportError(r, diag.XfmUnexpectedChildToken, source.Span{}, "unexpected token in children")
	if bag.Len() != 1 || !bag.HasErrors() {
		t.Fatalf("reporter did not store diagnostic: len=%d", bag.Len())
	}
}
