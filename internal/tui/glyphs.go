package tui

import (
	"strings"
	"sync"

	"lostfound-cli/internal/model"
)

// Unicode or ASCII affordances, for fonts that render some symbols poorly.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

func applyGlyphPreference(v string) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "unicode", "utf8":
		setGlyphs(glyphSetUnicode)
	case "ascii":
		setGlyphs(glyphSetASCII)
	}
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	defer glyphsMu.RUnlock()
	return currentGlyphs
}

func pick(unicode, ascii string) string {
	if glyphs() == glyphSetASCII {
		return ascii
	}
	return unicode
}

// glyphItemType is the card icon. Unknown types get the help glyph.
func glyphItemType(t model.ItemType) string {
	switch t {
	case model.ItemTypeWallet:
		return pick("¤", "$")
	case model.ItemTypeKey:
		return pick("⚷", "k")
	case model.ItemTypePhone:
		return pick("☎", "p")
	case model.ItemTypeBag:
		return pick("◍", "b")
	default:
		return pick("?", "?")
	}
}

func glyphMenu() string    { return pick("≡", "=") }
func glyphSearch() string  { return pick("⌕", "/") }
func glyphBack() string    { return pick("←", "<-") }
func glyphArrow() string   { return pick("→", "->") }
func glyphBullet() string  { return pick("•", "*") }
func glyphComment() string { return pick("✉", "#") }
func glyphSelect() string  { return pick("▌", ">") }
func glyphHRule() string   { return pick("─", "-") }
