package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// renderInputLine draws a text input as a single shaded line of exactly
// bodyW columns.
func renderInputLine(bodyW int, inputView string) string {
	bodyW = max(bodyW, 10)

	inputView = strings.NewReplacer("\n", " ", "\r", " ").Replace(inputView)
	line := lipgloss.PlaceHorizontal(
		bodyW,
		lipgloss.Left,
		" "+inputView+" ",
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(colorInputBg),
	)
	if xansi.StringWidth(line) > bodyW {
		// Reset styles so the cut never bleeds into the next line.
		line = xansi.Cut(line, 0, bodyW) + "\x1b[0m"
	}
	return line
}

// renderField is a labeled input; focused fields get the brand marker.
func renderField(bodyW int, label, inputView string, focused bool, note string) string {
	marker := "  "
	if focused {
		marker = lipgloss.NewStyle().Foreground(colorBrand).Render(glyphSelect()) + " "
	}
	lines := []string{marker + styleLabel().Render(label), "  " + renderInputLine(bodyW-2, inputView)}
	if note != "" {
		lines = append(lines, "  "+note)
	}
	return strings.Join(lines, "\n")
}
