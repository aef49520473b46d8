package listing

import (
	"strings"

	"lostfound-cli/internal/model"
)

// Filter keeps items whose title or description contains query,
// case-insensitively. An empty query returns items unchanged. Order is preserved.
func Filter(items []model.Item, query string) []model.Item {
	if query == "" {
		return items
	}
	q := strings.ToLower(query)
	out := make([]model.Item, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Title), q) || strings.Contains(strings.ToLower(it.Description), q) {
			out = append(out, it)
		}
	}
	return out
}
