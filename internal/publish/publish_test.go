package publish

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lostfound-cli/internal/config"
	"lostfound-cli/internal/listing"
	"lostfound-cli/internal/model"
	"lostfound-cli/internal/nav"
)

func TestRenderItemMarkdown_IncludesDescriptionAndComments(t *testing.T) {
	t.Parallel()

	it := model.Item{
		ID:          1,
		Title:       "Found Phone",
		Description: "iPhone 13 with **black** case",
		Date:        "3 hours ago",
		Type:        model.ItemTypePhone,
		Comments: []model.Comment{
			{ID: 1, User: "Sarah", Text: "Is this still available?", Date: "2 hours ago"},
		},
	}
	md := RenderItemMarkdown(model.CategoryFound, it)
	for _, want := range []string{
		"# Found Phone",
		"- Ref: found-1",
		"- Board: Found Items",
		"- Type: phone",
		"## Description",
		"iPhone 13 with **black** case",
		"## Comments (1)",
		"### Sarah (2 hours ago)",
		"Is this still available?",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("expected %q in markdown:\n%s", want, md)
		}
	}
}

func TestRenderIndexMarkdown_EmptyBoard(t *testing.T) {
	t.Parallel()

	md := RenderIndexMarkdown(listing.Snapshot{})
	if !strings.Contains(md, "No lost items found") || !strings.Contains(md, "No found items found") {
		t.Fatalf("expected empty states:\n%s", md)
	}
}

func TestWriteBoard_WritesIndexAndItemsAndRespectsOverwrite(t *testing.T) {
	t.Parallel()

	cat := config.Defaults().Catalog
	snap, err := listing.Build(nav.DraftParams{Title: "Scarf", Description: "Green wool", Category: model.CategoryLost}, cat)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	dir := t.TempDir()
	res, err := WriteBoard(snap, dir, WriteOptions{})
	if err != nil {
		t.Fatalf("WriteBoard: %v", err)
	}
	if len(res.Written) != 6 {
		t.Fatalf("expected index + 5 items, got %d: %v", len(res.Written), res.Written)
	}

	index, err := os.ReadFile(filepath.Join(dir, "index.md"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	if !strings.Contains(string(index), "[Scarf](items/lost-3.md) (Just now)") {
		t.Fatalf("expected draft link in index:\n%s", index)
	}
	if _, err := os.Stat(filepath.Join(dir, "items", "found-2.md")); err != nil {
		t.Fatalf("expected found-2.md: %v", err)
	}

	if _, err := WriteBoard(snap, dir, WriteOptions{}); err == nil || !strings.Contains(err.Error(), "file exists") {
		t.Fatalf("expected overwrite protection, got %v", err)
	}
	if _, err := WriteBoard(snap, dir, WriteOptions{Overwrite: true}); err != nil {
		t.Fatalf("WriteBoard overwrite: %v", err)
	}
}

func TestWriteBoard_MissingTarget(t *testing.T) {
	t.Parallel()

	if _, err := WriteBoard(listing.Snapshot{}, "  ", WriteOptions{}); err == nil {
		t.Fatalf("expected error for missing target")
	}
}
