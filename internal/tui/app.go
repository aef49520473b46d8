package tui

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"lostfound-cli/internal/config"
	"lostfound-cli/internal/listing"
	"lostfound-cli/internal/nav"
	"lostfound-cli/internal/photo"

	tea "github.com/charmbracelet/bubbletea"
)

// env is what every screen may use besides its own params.
type env struct {
	ctx    context.Context
	cfg    *config.Config
	log    *slog.Logger
	picker photo.Picker
	loader listing.Loader
	now    func() time.Time
}

// screen is one entry on the navigation stack.
type screen interface {
	route() nav.Route
	gen() int
	init() tea.Cmd
	update(msg tea.Msg) tea.Cmd
	view() string
	setSize(width, height int)
}

// renewer is implemented by screens that can take new params in place when
// navigated back to.
type renewer interface {
	renew(gen int, params nav.Params) tea.Cmd
}

// resumer is implemented by screens with work to restart when they become
// the top of the stack again.
type resumer interface {
	resume() tea.Cmd
}

type appModel struct {
	env   *env
	stack []screen

	lastGen int
	width   int
	height  int
}

func newAppModel(e *env, start nav.Route, params nav.Params) appModel {
	m := appModel{env: e}
	m.stack = []screen{m.newScreen(start, params)}
	return m
}

func (m *appModel) nextGen() int {
	m.lastGen++
	return m.lastGen
}

func (m *appModel) newScreen(route nav.Route, params nav.Params) screen {
	gen := m.nextGen()
	var s screen
	switch route {
	case nav.RouteListing:
		s = newListingScreen(m.env, gen, params)
	case nav.RouteCreate:
		s = newCreateScreen(m.env, gen, params)
	case nav.RouteDetail:
		s = newDetailScreen(m.env, gen, params)
	default:
		s = newAuthScreen(m.env, gen, params)
	}
	if m.width > 0 && m.height > 0 {
		s.setSize(m.width, m.height)
	}
	m.env.log.Debug("screen created", "route", string(s.route()), "gen", gen, "params", params.String())
	return s
}

func (m appModel) top() screen {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

func (m appModel) screenByGen(gen int) screen {
	for _, s := range m.stack {
		if s.gen() == gen {
			return s
		}
	}
	return nil
}

func (m appModel) Init() tea.Cmd {
	if top := m.top(); top != nil {
		return top.init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		for _, s := range m.stack {
			s.setSize(m.width, m.height)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case navigateMsg:
		return m.navigate(msg)

	case scopedMsg:
		s := m.screenByGen(msg.screenGen())
		if s == nil {
			m.env.log.Debug("dropping stale message", "msg", fmt.Sprintf("%T", msg), "gen", msg.screenGen())
			return m, nil
		}
		return m, s.update(msg)
	}

	if top := m.top(); top != nil {
		return m, top.update(msg)
	}
	return m, nil
}

func (m appModel) navigate(msg navigateMsg) (tea.Model, tea.Cmd) {
	switch msg.op {
	case opBack:
		if len(m.stack) <= 1 {
			return m, nil
		}
		m.stack = slices.Clip(m.stack[:len(m.stack)-1])
		m.env.log.Debug("navigate", "op", msg.op.String(), "to", string(m.top().route()))
		if r, ok := m.top().(resumer); ok {
			return m, r.resume()
		}
		return m, nil

	case opReplace:
		s := m.newScreen(msg.route, msg.params)
		m.stack = []screen{s}
		m.env.log.Info("navigate", "op", msg.op.String(), "to", string(msg.route))
		return m, s.init()

	case opNavigate:
		for i := len(m.stack) - 1; i >= 0; i-- {
			if m.stack[i].route() != msg.route {
				continue
			}
			r, ok := m.stack[i].(renewer)
			if !ok {
				break
			}
			m.stack = slices.Clip(m.stack[:i+1])
			gen := m.nextGen()
			m.env.log.Debug("navigate", "op", msg.op.String(), "to", string(msg.route), "gen", gen)
			return m, r.renew(gen, msg.params)
		}
	}

	s := m.newScreen(msg.route, msg.params)
	m.stack = append(slices.Clip(m.stack), s)
	m.env.log.Debug("navigate", "op", "push", "to", string(msg.route), "depth", len(m.stack))
	return m, s.init()
}

func (m appModel) View() string {
	if top := m.top(); top != nil {
		return top.view()
	}
	return ""
}
