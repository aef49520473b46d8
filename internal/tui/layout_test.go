package tui

import (
	"strings"
	"testing"

	xansi "github.com/charmbracelet/x/ansi"
)

func TestFitBlock(t *testing.T) {
	t.Parallel()

	got := fitBlock("short\na much longer line here\nthird\nfourth", 10, 3)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines; got %d", len(lines))
	}
	for i, ln := range lines {
		if w := xansi.StringWidth(ln); w != 10 {
			t.Fatalf("line %d: expected width 10; got %d (%q)", i, w, ln)
		}
	}
	if !strings.HasSuffix(lines[1], "…") {
		t.Fatalf("expected ellipsis on overlong line; got %q", lines[1])
	}

	padded := strings.Split(fitBlock("x", 2, 3), "\n")
	if len(padded) != 3 || padded[2] != "  " {
		t.Fatalf("expected blank padding lines; got %q", padded)
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in    string
		width int
		want  string
	}{
		{in: "wallet", width: 10, want: "wallet"},
		{in: "wallet", width: 4, want: "wal…"},
		{in: "wallet", width: 1, want: "w"},
		{in: "wallet", width: 0, want: ""},
		{in: "ééééé", width: 3, want: "éé…"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Fatalf("truncate(%q, %d) = %q; want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestOneLine(t *testing.T) {
	t.Parallel()

	if got := oneLine("House keys\n  with blue\tkeychain "); got != "House keys with blue keychain" {
		t.Fatalf("unexpected: %q", got)
	}
}

func TestDarkFromColorFGBG(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		dark   bool
		wantOK bool
	}{
		{in: "15;0", dark: true, wantOK: true},
		{in: "0;15", dark: false, wantOK: true},
		{in: "0;default;7", dark: false, wantOK: true},
		{in: "", wantOK: false},
		{in: "x", wantOK: false},
	}
	for _, tt := range tests {
		dark, ok := darkFromColorFGBG(tt.in)
		if ok != tt.wantOK || (ok && dark != tt.dark) {
			t.Fatalf("darkFromColorFGBG(%q) = %v, %v", tt.in, dark, ok)
		}
	}
}
