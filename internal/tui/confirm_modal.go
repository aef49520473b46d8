package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// dialog is a blocking message box, the terminal stand-in for a native
// alert. While one is open its screen ignores every other key.
type dialog struct {
	title string
	body  string
	// ok is returned when the dialog is acknowledged; nil just closes it.
	ok tea.Cmd
}

func errorDialog(body string) *dialog {
	return &dialog{title: "Error", body: body}
}

// handleDialogKey reports whether the key was consumed and returns the
// command to run when the dialog was acknowledged.
func handleDialogKey(d **dialog, msg tea.KeyMsg) (bool, tea.Cmd) {
	if *d == nil {
		return false, nil
	}
	switch msg.String() {
	case "enter", "esc", " ":
		cmd := (*d).ok
		*d = nil
		return true, cmd
	}
	return true, nil
}

func modalBodyWidth(width int) int {
	w := min(width-8, 56)
	return max(w, 20)
}

func renderModalBox(width int, title, content string) string {
	bodyW := modalBodyWidth(width)
	head := lipgloss.NewStyle().
		Bold(true).
		Width(bodyW).
		Foreground(colorBrandFg).
		Background(colorBrand).
		Padding(0, 1).
		Render(title)
	body := lipgloss.NewStyle().
		Width(bodyW).
		Padding(1, 1).
		Foreground(colorSurfaceFg).
		Render(content)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCardBorder).
		Render(lipgloss.JoinVertical(lipgloss.Left, head, body))
}

func renderDialog(width int, d *dialog) string {
	btn := lipgloss.NewStyle().
		Padding(0, 2).
		Bold(true).
		Foreground(colorSelectedFg).
		Background(colorSelectedBg).
		Render("OK")
	help := styleMuted().Render("enter: ok")
	content := strings.Join([]string{d.body, "", btn, "", help}, "\n")
	return renderModalBox(width, d.title, content)
}

// overlayDialog centers the dialog over the screen area.
func overlayDialog(width, height int, d *dialog) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, renderDialog(width, d))
}
