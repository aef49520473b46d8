package publish

import (
	"bytes"
	"fmt"
	"strings"

	"lostfound-cli/internal/listing"
	"lostfound-cli/internal/model"
)

// RenderItemMarkdown renders one post with its comments, newest first.
func RenderItemMarkdown(cat model.Category, it model.Item) string {
	var buf bytes.Buffer
	writeLn := func(s string) {
		buf.WriteString(s)
		buf.WriteString("\n")
	}

	writeLn("# " + strings.TrimSpace(it.Title))
	writeLn("")
	writeLn("- Ref: " + listing.Ref(cat, it.ID))
	writeLn("- Board: " + cat.Label())
	if it.Type != "" {
		writeLn("- Type: " + string(it.Type))
	}
	if d := strings.TrimSpace(it.Date); d != "" {
		writeLn("- Posted: " + d)
	}
	if img := strings.TrimSpace(it.Image); img != "" {
		writeLn("")
		writeLn("![" + strings.TrimSpace(it.Title) + "](" + img + ")")
	}

	if desc := strings.TrimSpace(it.Description); desc != "" {
		writeLn("")
		writeLn("## Description")
		writeLn("")
		writeLn(desc)
	}

	if len(it.Comments) > 0 {
		writeLn("")
		writeLn(fmt.Sprintf("## Comments (%d)", len(it.Comments)))
		writeLn("")
		for _, c := range it.Comments {
			head := "### " + strings.TrimSpace(c.User)
			if d := strings.TrimSpace(c.Date); d != "" {
				head += " (" + d + ")"
			}
			writeLn(head)
			writeLn("")
			writeLn(strings.TrimSpace(c.Text))
			writeLn("")
		}
	}
	return buf.String()
}

// RenderIndexMarkdown lists both boards with links to the item pages.
func RenderIndexMarkdown(snap listing.Snapshot) string {
	var buf bytes.Buffer
	buf.WriteString("# Lost & Found\n")
	for _, cat := range []model.Category{model.CategoryLost, model.CategoryFound} {
		buf.WriteString("\n## " + cat.Label() + "\n\n")
		items := snap.Items(cat)
		if len(items) == 0 {
			fmt.Fprintf(&buf, "No %s items found\n", cat)
			continue
		}
		for _, it := range items {
			ref := listing.Ref(cat, it.ID)
			fmt.Fprintf(&buf, "- [%s](items/%s.md) (%s)\n", strings.TrimSpace(it.Title), ref, strings.TrimSpace(it.Date))
		}
	}
	return buf.String()
}
