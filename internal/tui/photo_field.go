package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// photoField is a path input resolved through the photo picker. uri and
// err belong to pickedRef; a ref typed since then is unresolved.
type photoField struct {
	input     textinput.Model
	picking   bool
	pickedRef string
	uri       string
	err       string
}

func newPhotoField(placeholder string) photoField {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = ""
	return photoField{input: in}
}

func (p *photoField) ref() string { return strings.TrimSpace(p.input.Value()) }

func (p *photoField) resolved() bool { return !p.picking && p.ref() == p.pickedRef }

// pick starts resolving the current ref. It returns nil when there is
// nothing new to resolve.
func (p *photoField) pick(e *env, gen int) tea.Cmd {
	ref := p.ref()
	if p.resolved() {
		return nil
	}
	p.uri, p.err = "", ""
	if ref == "" {
		p.pickedRef = ""
		p.picking = false
		return nil
	}
	p.picking = true
	picker, ctx := e.picker, e.ctx
	return func() tea.Msg {
		uri, ok, err := picker.Pick(ctx, ref)
		return photoPickedMsg{gen: gen, ref: ref, uri: uri, ok: ok, err: err}
	}
}

// apply records a pick result. It reports false when the result is for a
// ref the user has since replaced.
func (p *photoField) apply(e *env, msg photoPickedMsg) bool {
	if msg.ref != p.ref() {
		return false
	}
	p.picking = false
	p.pickedRef = msg.ref
	switch {
	case msg.err != nil:
		p.err = msg.err.Error()
		e.log.Warn("photo rejected", "ref", msg.ref, "err", msg.err)
	case msg.ok:
		p.uri = msg.uri
	}
	return true
}

func (p *photoField) note(width int, empty string) string {
	switch {
	case p.picking:
		return styleMuted().Render("checking photo...")
	case p.err != "" && p.ref() == p.pickedRef:
		return styleError().Render(truncate(p.err, width))
	case p.uri != "" && p.ref() == p.pickedRef:
		return styleMuted().Render(truncate(p.uri, width))
	default:
		return styleMuted().Render(empty)
	}
}
