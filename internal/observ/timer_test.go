package observ_test

import (
	"strings"
	"testing"

	"jsxc/internal/observ"
)

func TestTimerSummary(t *testing.T) {
	timer := observ.NewTimer()
	stop := timer.Begin("transform")
	stop("3 files")

	got := timer.Summary()
	if !strings.HasPrefix(got, "timings:\n") {
		t.Errorf("got %q", got)
	}
	if !strings.Contains(got, "transform") || !strings.Contains(got, "// 3 files") {
		t.Errorf("phase line missing: %q", got)
	}
	if !strings.Contains(got, "total") {
		t.Errorf("total line missing: %q", got)
	}
}

func TestTimerEmpty(t *testing.T) {
	got := observ.NewTimer().Summary()
	if !strings.Contains(got, "total") {
		t.Errorf("got %q", got)
	}
}
