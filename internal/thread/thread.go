// Package thread manages the comments of one item while its detail view is open.
package thread

import (
	"fmt"
	"strings"
	"time"

	"lostfound-cli/internal/model"
)

const (
	// LocalUser is the author of every comment written in this session.
	LocalUser = "You"
	// DefaultMaxLen caps comment input, in characters.
	DefaultMaxLen = 200
)

type Thread struct {
	comments []model.Comment
	now      func() time.Time
	maxLen   int
	lastID   int64
}

type Option func(*Thread)

func WithClock(now func() time.Time) Option {
	return func(t *Thread) {
		if now != nil {
			t.now = now
		}
	}
}

func WithMaxLen(n int) Option {
	return func(t *Thread) {
		if n > 0 {
			t.maxLen = n
		}
	}
}

// New starts a thread from a private copy of initial (newest first).
func New(initial []model.Comment, opts ...Option) *Thread {
	t := &Thread{
		comments: append([]model.Comment(nil), initial...),
		now:      time.Now,
		maxLen:   DefaultMaxLen,
	}
	for _, opt := range opts {
		opt(t)
	}
	for _, c := range t.comments {
		if c.ID > t.lastID {
			t.lastID = c.ID
		}
	}
	return t
}

func (t *Thread) MaxLen() int { return t.maxLen }

func (t *Thread) Len() int { return len(t.comments) }

// Comments returns a copy, most recently added first.
func (t *Thread) Comments() []model.Comment {
	return append([]model.Comment(nil), t.comments...)
}

// Add prepends a comment authored by LocalUser. Blank text is a no-op and
// reports false. Text longer than MaxLen is cut to MaxLen characters.
func (t *Thread) Add(text string) (model.Comment, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Comment{}, false
	}
	if r := []rune(text); len(r) > t.maxLen {
		text = strings.TrimSpace(string(r[:t.maxLen]))
	}

	ts := t.now().UnixMilli()
	id := ts
	if id <= t.lastID {
		id = t.lastID + 1
	}
	t.lastID = id

	c := model.Comment{
		ID:        id,
		User:      LocalUser,
		Text:      text,
		Timestamp: ts,
	}
	t.comments = append([]model.Comment{c}, t.comments...)
	return c, true
}

// DisplayDate is computed at render time for comments with a timestamp;
// seed comments show their stored label.
func DisplayDate(c model.Comment, now time.Time) string {
	if c.Timestamp == 0 {
		return c.Date
	}
	diff := now.Sub(time.UnixMilli(c.Timestamp))
	switch {
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff/time.Minute))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff/time.Hour))
	default:
		return time.UnixMilli(c.Timestamp).Local().Format("1/2/2006")
	}
}
