// Package logging builds the structured logger shared by the CLI and the TUI.
//
// The terminal belongs to the TUI while it runs, so logs go to a file (or are
// discarded) rather than stderr.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
	slogzerolog "github.com/samber/slog-zerolog/v2"
)

type Options struct {
	// File is appended to; empty means logs are discarded unless Writer is set.
	File      string
	Level     string
	SentryDSN string
	// Writer overrides File (used by tests).
	Writer io.Writer
}

// New returns a logger and a close func that flushes and releases sinks.
func New(opts Options) (*slog.Logger, func() error, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	var closers []func() error
	w := opts.Writer
	if w == nil {
		w = io.Discard
		if p := strings.TrimSpace(opts.File); p != "" {
			f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return nil, nil, fmt.Errorf("open log file: %w", err)
			}
			w = f
			closers = append(closers, f.Close)
		}
	}

	zl := zerolog.New(w).With().Timestamp().Logger()
	handlers := []slog.Handler{
		slogzerolog.Option{Level: level, Logger: &zl}.NewZerologHandler(),
	}

	if dsn := strings.TrimSpace(opts.SentryDSN); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			return nil, nil, fmt.Errorf("init sentry: %w", err)
		}
		handlers = append(handlers, slogsentry.Option{Level: slog.LevelError}.NewSentryHandler())
		closers = append(closers, func() error {
			sentry.Flush(2 * time.Second)
			return nil
		})
	}

	logger := slog.New(slogmulti.Fanout(handlers...))
	closeFn := func() error {
		var errs []error
		for i := len(closers) - 1; i >= 0; i-- {
			errs = append(errs, closers[i]())
		}
		return errors.Join(errs...)
	}
	return logger, closeFn, nil
}

func ParseLevel(s string) (slog.Level, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return slog.LevelInfo, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return lvl, nil
}

// Discard is a logger for code paths (mostly tests) that have nowhere to log.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewSessionID returns an identifier used to correlate log lines of one UI session.
func NewSessionID() string {
	return uuid.NewString()
}

func WithSession(l *slog.Logger, sessionID string) *slog.Logger {
	if l == nil {
		l = Discard()
	}
	return l.With(slog.String("session", sessionID))
}
