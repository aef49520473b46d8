package tui

import (
	"lostfound-cli/internal/listing"
	"lostfound-cli/internal/nav"

	tea "github.com/charmbracelet/bubbletea"
)

type navOp int

const (
	opPush navOp = iota
	opBack
	opReplace
	opNavigate
)

func (o navOp) String() string {
	switch o {
	case opBack:
		return "back"
	case opReplace:
		return "replace"
	case opNavigate:
		return "navigate"
	default:
		return "push"
	}
}

type navigateMsg struct {
	op     navOp
	route  nav.Route
	params nav.Params
}

func navCmd(op navOp, route nav.Route, params nav.Params) tea.Cmd {
	p := params.Clone()
	return func() tea.Msg { return navigateMsg{op: op, route: route, params: p} }
}

func pushCmd(route nav.Route, params nav.Params) tea.Cmd { return navCmd(opPush, route, params) }

func replaceCmd(route nav.Route, params nav.Params) tea.Cmd {
	return navCmd(opReplace, route, params)
}

// navigateCmd returns to an existing instance of route with new params, or
// pushes one.
func navigateCmd(route nav.Route, params nav.Params) tea.Cmd {
	return navCmd(opNavigate, route, params)
}

func backCmd() tea.Msg { return navigateMsg{op: opBack} }

// scopedMsg is a delayed result addressed to one screen generation. The
// router drops it when no screen on the stack owns that generation.
type scopedMsg interface {
	screenGen() int
}

type loadDoneMsg struct {
	gen  int
	snap listing.Snapshot
	err  error
}

type submitDoneMsg struct{ gen int }

type photoPickedMsg struct {
	gen int
	ref string
	uri string
	ok  bool
	err error
}

func (m loadDoneMsg) screenGen() int    { return m.gen }
func (m submitDoneMsg) screenGen() int  { return m.gen }
func (m photoPickedMsg) screenGen() int { return m.gen }

type editorDoneMsg struct {
	gen    int
	path   string
	before string
	err    error
}

func (m editorDoneMsg) screenGen() int { return m.gen }
