package tui

import (
	"fmt"
	"io"
	"strings"

	"lostfound-cli/internal/model"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// itemRow adapts a model.Item to bubbles/list.
type itemRow struct {
	item model.Item
}

func (r itemRow) FilterValue() string { return r.item.Title }

func commentCount(n int) string {
	if n == 1 {
		return "1 comment"
	}
	return fmt.Sprintf("%d comments", n)
}

// cardDelegate renders each item as a three-line card: icon and title,
// description, then date and comment count.
type cardDelegate struct{}

func (cardDelegate) Height() int                             { return 3 }
func (cardDelegate) Spacing() int                            { return 1 }
func (cardDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (cardDelegate) Render(w io.Writer, m list.Model, index int, li list.Item) {
	row, ok := li.(itemRow)
	if !ok {
		return
	}
	width := m.Width()
	if width < 8 {
		return
	}

	selected := index == m.Index()
	gutter := "  "
	title := lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg)
	if selected {
		gutter = lipgloss.NewStyle().Foreground(colorBrand).Render(glyphSelect()) + " "
		title = title.Foreground(colorSelectedFg).Background(colorSelectedBg)
	}
	icon := lipgloss.NewStyle().Foreground(colorBrand).Render(glyphItemType(row.item.Type))

	inner := width - 2
	head := icon + " " + title.Render(truncate(row.item.Title, inner-2))
	desc := styleMuted().Render(truncate(oneLine(row.item.Description), inner))
	meta := truncate(row.item.Date+"  "+glyphComment()+" "+commentCount(len(row.item.Comments)), inner)

	lines := []string{
		gutter + head,
		gutter + desc,
		gutter + lipgloss.NewStyle().Foreground(colorMuted).Render(meta),
	}
	fmt.Fprint(w, strings.Join(lines, "\n"))
}

func newItemList() list.Model {
	l := list.New(nil, cardDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.KeyMap.CursorUp.SetKeys("up", "k", "ctrl+p")
	l.KeyMap.CursorDown.SetKeys("down", "j", "ctrl+n")
	return l
}

func itemRows(items []model.Item) []list.Item {
	out := make([]list.Item, 0, len(items))
	for _, it := range items {
		out = append(out, itemRow{item: it})
	}
	return out
}
