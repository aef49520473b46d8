package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// fitBlock forces s to exactly width columns (ANSI-aware) and height lines.
// Overlong lines end in an ellipsis.
func fitBlock(s string, width, height int) string {
	width = max(width, 0)
	height = max(height, 0)

	lines := strings.Split(s, "\n")
	if height > 0 {
		if len(lines) > height {
			lines = lines[:height]
		}
		for len(lines) < height {
			lines = append(lines, "")
		}
	}
	for i, ln := range lines {
		lines[i] = fitLine(ln, width)
	}
	return strings.Join(lines, "\n")
}

func fitLine(ln string, width int) string {
	w := xansi.StringWidth(ln)
	switch {
	case width <= 0:
		return ""
	case w > width && width == 1:
		ln = xansi.Cut(ln, 0, 1)
	case w > width:
		ln = xansi.Cut(ln, 0, width-1) + "…"
	}
	if w = xansi.StringWidth(ln); w < width {
		ln += strings.Repeat(" ", width-w)
	}
	return ln
}

// truncate cuts a single line to width columns with an ellipsis.
func truncate(s string, width int) string {
	if xansi.StringWidth(s) <= width {
		return s
	}
	if width <= 1 {
		return xansi.Cut(s, 0, max(width, 0))
	}
	return xansi.Cut(s, 0, width-1) + "…"
}

// oneLine collapses newlines so multi-line descriptions fit a list row.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
