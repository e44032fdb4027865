package ui_test

import (
	"strings"
	"testing"

	"jsxc/internal/ui"
)

func TestSummaryRenderPlain(t *testing.T) {
	var sb strings.Builder
	ui.Summary{Transformed: 3, Cached: 1, Failed: 2}.Render(&sb, false)
	got := sb.String()
	want := "6 files: 3 transformed, 1 cached, 2 failed\n"
	if got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestSummaryRenderOmitsZeroBuckets(t *testing.T) {
	var sb strings.Builder
	ui.Summary{Transformed: 2}.Render(&sb, false)
	if got := sb.String(); got != "2 files: 2 transformed\n" {
		t.Errorf("got %q", got)
	}
}

func TestSummaryRenderEmpty(t *testing.T) {
	var sb strings.Builder
	ui.Summary{}.Render(&sb, false)
	if got := sb.String(); got != "0 files: nothing to do\n" {
		t.Errorf("got %q", got)
	}
}

func TestRenderFileLinePads(t *testing.T) {
	var sb strings.Builder
	ui.RenderFileLine(&sb, "a.jsx", "ok", 8, false)
	if got := sb.String(); got != "  a.jsx    ok\n" {
		t.Errorf("got %q", got)
	}
}
