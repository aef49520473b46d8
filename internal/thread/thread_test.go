package thread

import (
	"strings"
	"testing"
	"time"

	"lostfound-cli/internal/model"
)

func fixedClock(t0 time.Time) func() time.Time {
	return func() time.Time { return t0 }
}

func TestAdd_PrependsNewestFirst(t *testing.T) {
	t.Parallel()

	s1 := model.Comment{ID: 1, User: "John", Text: "I think I saw this at the cafeteria", Date: "1 day ago"}
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	th := New([]model.Comment{s1}, WithClock(fixedClock(now)))

	c1, ok := th.Add("first")
	if !ok {
		t.Fatalf("expected first comment to be added")
	}
	c2, ok := th.Add("second")
	if !ok {
		t.Fatalf("expected second comment to be added")
	}

	got := th.Comments()
	if len(got) != 3 {
		t.Fatalf("expected 3 comments, got %d", len(got))
	}
	if got[0] != c2 || got[1] != c1 || got[2] != s1 {
		t.Fatalf("expected [C2, C1, S1], got %#v", got)
	}
	if c1.User != LocalUser || c1.Timestamp != now.UnixMilli() {
		t.Fatalf("unexpected comment fields: %#v", c1)
	}
	// Same millisecond: ids still unique.
	if c1.ID == c2.ID {
		t.Fatalf("expected unique ids, both %d", c1.ID)
	}
}

func TestAdd_BlankIsNoOp(t *testing.T) {
	t.Parallel()

	seed := []model.Comment{{ID: 1, User: "Sarah", Text: "Is this still available?", Date: "2 hours ago"}}
	th := New(seed)

	for _, in := range []string{"", "   ", "\n\t "} {
		if _, ok := th.Add(in); ok {
			t.Fatalf("expected Add(%q) to be a no-op", in)
		}
	}
	got := th.Comments()
	if len(got) != 1 || got[0] != seed[0] {
		t.Fatalf("expected comments unchanged, got %#v", got)
	}
}

func TestAdd_TrimsAndCapsLength(t *testing.T) {
	t.Parallel()

	th := New(nil, WithMaxLen(10))
	c, ok := th.Add("  hello  ")
	if !ok || c.Text != "hello" {
		t.Fatalf("expected trimmed text, got %q", c.Text)
	}

	c, _ = th.Add(strings.Repeat("é", 15))
	if n := len([]rune(c.Text)); n != 10 {
		t.Fatalf("expected text capped at 10 runes, got %d", n)
	}

	if New(nil).MaxLen() != DefaultMaxLen {
		t.Fatalf("expected default max length %d", DefaultMaxLen)
	}
}

func TestNew_CopiesInitial(t *testing.T) {
	t.Parallel()

	seed := []model.Comment{{ID: 1, User: "John", Text: "a"}}
	th := New(seed)
	th.Add("b")
	if len(seed) != 1 || seed[0].Text != "a" {
		t.Fatalf("thread mutated caller's slice: %#v", seed)
	}
	out := th.Comments()
	out[0].Text = "mutated"
	if th.Comments()[0].Text != "b" {
		t.Fatalf("Comments() must return a copy")
	}
}

func TestDisplayDate_Buckets(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.Local)
	at := func(d time.Duration) model.Comment {
		return model.Comment{ID: 1, Text: "x", Timestamp: now.Add(-d).UnixMilli()}
	}

	tests := []struct {
		name string
		c    model.Comment
		want string
	}{
		{name: "seconds", c: at(30 * time.Second), want: "Just now"},
		{name: "minutes", c: at(5*time.Minute + 10*time.Second), want: "5m ago"},
		{name: "just under an hour", c: at(59 * time.Minute), want: "59m ago"},
		{name: "hours", c: at(3*time.Hour + time.Minute), want: "3h ago"},
		{name: "days", c: at(48 * time.Hour), want: "5/8/2024"},
		{name: "seed keeps stored label", c: model.Comment{ID: 1, Text: "x", Date: "1 day ago"}, want: "1 day ago"},
	}
	for _, tt := range tests {
		if got := DisplayDate(tt.c, now); got != tt.want {
			t.Fatalf("%s: DisplayDate = %q, want %q", tt.name, got, tt.want)
		}
	}
}
