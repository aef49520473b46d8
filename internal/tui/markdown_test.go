package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
)

func TestMarkdownStyle_FollowsBackground(t *testing.T) {
	old := lipgloss.HasDarkBackground()
	t.Cleanup(func() { lipgloss.SetHasDarkBackground(old) })

	applyThemePreference("light")
	if got := markdownStyle(); got != "light" {
		t.Fatalf("expected light; got %q", got)
	}
	applyThemePreference("dark")
	if got := markdownStyle(); got != "dark" {
		t.Fatalf("expected dark; got %q", got)
	}
}

func TestMarkdownStyleConfig_DropsDocumentMargins(t *testing.T) {
	for _, style := range []string{"dark", "light"} {
		got := markdownStyleConfig(style)
		if got.Document.Margin == nil || *got.Document.Margin != 0 {
			t.Fatalf("%s: expected zero document margin", style)
		}
		if got.Paragraph.Margin == nil || *got.Paragraph.Margin != 0 {
			t.Fatalf("%s: expected zero paragraph margin", style)
		}
	}
	// The shared defaults must not be mutated.
	if m := styles.DarkStyleConfig.Document.Margin; m != nil && *m == 0 {
		t.Fatalf("glamour default style was modified")
	}
}

func TestRenderMarkdown(t *testing.T) {
	if got := renderMarkdown("   ", 40); got != "" {
		t.Fatalf("expected empty output for blank input; got %q", got)
	}
	got := plain(renderMarkdown("Black **leather** wallet", 40))
	if !strings.Contains(got, "leather") || strings.Contains(got, "**") {
		t.Fatalf("expected rendered emphasis; got %q", got)
	}
	if strings.HasPrefix(got, "\n") || strings.HasSuffix(got, "\n") {
		t.Fatalf("expected trimmed output; got %q", got)
	}
}
