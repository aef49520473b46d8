package tui

import (
	"fmt"
	"strings"

	"lostfound-cli/internal/model"
	"lostfound-cli/internal/nav"
	"lostfound-cli/internal/thread"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// detailScreen shows one item and a comment thread that lives only as long
// as the screen does.
type detailScreen struct {
	env *env
	id  int

	item   model.Item
	thread *thread.Thread

	input  textinput.Model
	vp     viewport.Model
	width  int
	height int
}

func newDetailScreen(e *env, gen int, params nav.Params) *detailScreen {
	d, err := nav.DecodeDetail(params)
	if err != nil {
		e.log.Warn("post detail params", "err", err, "id", d.ID)
	}
	s := &detailScreen{
		env:    e,
		id:     gen,
		item:   d.Item(),
		thread: thread.New(d.Comments, thread.WithClock(e.now), thread.WithMaxLen(e.cfg.Catalog.CommentMax)),
		input:  textinput.New(),
		vp:     viewport.New(80, 20),
		width:  80,
		height: 24,
	}
	s.input.Placeholder = "Add a comment..."
	s.input.CharLimit = s.thread.MaxLen()
	s.input.Prompt = glyphComment() + " "
	s.layout()
	return s
}

func (s *detailScreen) route() nav.Route { return nav.RouteDetail }
func (s *detailScreen) gen() int         { return s.id }

func (s *detailScreen) init() tea.Cmd {
	return s.input.Focus()
}

func (s *detailScreen) update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return cmd
	}

	switch km.String() {
	case "esc":
		return backCmd
	case "enter":
		if c, added := s.thread.Add(s.input.Value()); added {
			s.input.Reset()
			s.vp.GotoTop()
			s.env.log.Info("comment added", "item", s.item.ID, "comment", c.ID, "comments", s.thread.Len())
		}
		return nil
	case "up", "ctrl+p":
		s.vp.LineUp(1)
		return nil
	case "down", "ctrl+n":
		s.vp.LineDown(1)
		return nil
	case "pgup":
		s.vp.ViewUp()
		return nil
	case "pgdown":
		s.vp.ViewDown()
		return nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

func (s *detailScreen) setSize(width, height int) {
	s.width, s.height = width, height
	s.layout()
}

// layout: header, viewport, input, footer.
func (s *detailScreen) layout() {
	s.vp.Width = max(s.width-2, 10)
	s.vp.Height = max(s.height-5, 3)
	s.input.Width = max(s.width-12, 10)
}

func (s *detailScreen) view() string {
	header := styleHeader().Render(fitLine(glyphBack()+"  Post Details", max(s.width-2, 1)))

	// Display dates are relative to now, so the body is rebuilt every frame.
	s.vp.SetContent(s.renderBody(s.vp.Width))

	counter := fmt.Sprintf("%d/%d", len([]rune(s.input.Value())), s.thread.MaxLen())
	input := renderInputLine(max(s.width-2-len(counter)-1, 10), s.input.View()) + " " + styleMuted().Render(counter)
	footer := styleMuted().Render(fitLine(" enter: post  "+glyphArrow()+" up/down: scroll  esc: back", s.width))

	return strings.Join([]string{
		header,
		lipgloss.NewStyle().PaddingLeft(1).Render(fitBlock(s.vp.View(), s.vp.Width, s.vp.Height)),
		"",
		" " + input,
		footer,
	}, "\n")
}

func (s *detailScreen) renderBody(width int) string {
	it := s.item
	icon := lipgloss.NewStyle().Foreground(colorBrand).Render(glyphItemType(it.Type))
	card := []string{
		icon + " " + lipgloss.NewStyle().Bold(true).Render(it.Title),
	}
	if img := strings.TrimSpace(it.Image); img != "" {
		card = append(card, styleMuted().Render(truncate("image: "+img, width)))
	}
	if desc := renderMarkdown(it.Description, width); desc != "" {
		card = append(card, "", desc)
	}
	card = append(card, "", styleMuted().Render(it.Date))

	comments := s.thread.Comments()
	lines := append(card,
		"",
		styleMuted().Render(strings.Repeat(glyphHRule(), width)),
		styleLabel().Render(fmt.Sprintf("Comments (%d)", len(comments))),
		"",
	)
	if len(comments) == 0 {
		lines = append(lines, styleMuted().Render("No comments yet. Be the first to comment!"))
		return strings.Join(lines, "\n")
	}

	now := s.env.now()
	text := lipgloss.NewStyle().Width(max(width-2, 10)).PaddingLeft(2)
	for i, c := range comments {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines,
			glyphBullet()+" "+styleLabel().Render(c.User)+"  "+styleMuted().Render(thread.DisplayDate(c, now)),
			text.Render(c.Text),
		)
	}
	return strings.Join(lines, "\n")
}
