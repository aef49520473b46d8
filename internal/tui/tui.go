// Package tui is the interactive Lost & Found board.
package tui

import (
	"context"
	"log/slog"
	"time"

	"lostfound-cli/internal/config"
	"lostfound-cli/internal/listing"
	"lostfound-cli/internal/logging"
	"lostfound-cli/internal/nav"
	"lostfound-cli/internal/photo"

	tea "github.com/charmbracelet/bubbletea"
)

type Options struct {
	Config *config.Config
	Logger *slog.Logger
	Picker photo.Picker
	// Start is the first screen; empty means the auth screen.
	Start  nav.Route
	Params nav.Params
}

func newEnv(ctx context.Context, opts Options) *env {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Defaults()
	}
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	var picker photo.Picker = photo.FilePicker{}
	if opts.Picker != nil {
		picker = opts.Picker
	}
	return &env{
		ctx:    ctx,
		cfg:    cfg,
		log:    log,
		picker: picker,
		loader: listing.Loader{Catalog: cfg.Catalog, Seed: listing.DefaultSeed},
		now:    time.Now,
	}
}

func Run(ctx context.Context, opts Options) error {
	e := newEnv(ctx, opts)
	applyColorProfilePreference()
	applyThemePreference(e.cfg.UI.Theme)
	applyGlyphPreference(e.cfg.UI.Glyphs)

	start := opts.Start
	if start == "" {
		start = nav.RouteAuth
	}
	m := newAppModel(e, start, opts.Params)
	e.log.Info("tui started", "start", string(start))
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	e.log.Info("tui stopped")
	return err
}
