// Package ui renders terminal summaries for batch operations.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Summary aggregates the outcome of a directory transform.
type Summary struct {
	Transformed int
	Cached      int
	Failed      int
	Skipped     int
}

var (
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	cacheStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	headerStyle = lipgloss.NewStyle().Bold(true)
)

// Total returns the number of files the summary covers.
func (s Summary) Total() int {
	return s.Transformed + s.Cached + s.Failed + s.Skipped
}

// Render writes a one-line colored summary. With styled false the line is
// plain text, for non-terminal output.
func (s Summary) Render(w io.Writer, styled bool) {
	parts := make([]string, 0, 4)
	add := func(n int, noun string, style lipgloss.Style) {
		if n == 0 {
			return
		}
		text := fmt.Sprintf("%d %s", n, noun)
		if styled {
			text = style.Render(text)
		}
		parts = append(parts, text)
	}
	add(s.Transformed, "transformed", okStyle)
	add(s.Cached, "cached", cacheStyle)
	add(s.Failed, "failed", failStyle)
	add(s.Skipped, "skipped", mutedStyle)
	if len(parts) == 0 {
		parts = append(parts, "nothing to do")
	}

	header := fmt.Sprintf("%d files:", s.Total())
	if styled {
		header = headerStyle.Render(header)
	}
	fmt.Fprintf(w, "%s %s\n", header, strings.Join(parts, ", "))
}

// RenderFileLine writes one per-file status line, padding the path so the
// status column lines up across files.
func RenderFileLine(w io.Writer, path, status string, pathWidth int, styled bool) {
	padded := path + strings.Repeat(" ", max(0, pathWidth-runewidth.StringWidth(path)))
	if styled {
		switch status {
		case "ok":
			status = okStyle.Render(status)
		case "cached":
			status = cacheStyle.Render(status)
		case "failed":
			status = failStyle.Render(status)
		}
	}
	fmt.Fprintf(w, "  %s %s\n", padded, status)
}
