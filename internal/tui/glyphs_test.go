package tui

import (
	"testing"

	"lostfound-cli/internal/model"
)

func TestGlyphs_FromPreference(t *testing.T) {
	t.Cleanup(func() { setGlyphs(glyphSetUnicode) })

	setGlyphs(glyphSetASCII)
	applyGlyphPreference("")
	if got := glyphs(); got != glyphSetUnicode {
		t.Fatalf("expected unicode glyphs by default; got %v", got)
	}

	applyGlyphPreference("ASCII")
	if got := glyphs(); got != glyphSetASCII {
		t.Fatalf("expected ascii glyphs; got %v", got)
	}
	if got := glyphItemType(model.ItemTypeWallet); got != "$" {
		t.Fatalf("expected ascii wallet glyph; got %q", got)
	}

	// Unknown values keep the current set.
	applyGlyphPreference("bogus")
	if got := glyphs(); got != glyphSetASCII {
		t.Fatalf("expected unknown to be ignored; got %v", got)
	}

	applyGlyphPreference("unicode")
	if got := glyphItemType(model.ItemType("umbrella")); got == "" {
		t.Fatalf("expected a fallback glyph for unknown item types")
	}
}
