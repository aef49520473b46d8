// Package publish exports a board snapshot as a tree of markdown files.
package publish

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"lostfound-cli/internal/listing"
	"lostfound-cli/internal/model"
)

type WriteOptions struct {
	Overwrite bool
}

type WriteResult struct {
	Written []string `json:"written"`
}

// WriteBoard writes <toDir>/index.md and one <toDir>/items/<ref>.md per item.
// It stops at the first error; files already written are reported.
func WriteBoard(snap listing.Snapshot, toDir string, opt WriteOptions) (WriteResult, error) {
	toDir = strings.TrimSpace(toDir)
	if toDir == "" {
		return WriteResult{}, errors.New("missing --to")
	}
	toDir = filepath.Clean(toDir)

	itemsDir := filepath.Join(toDir, "items")
	if err := os.MkdirAll(itemsDir, 0o755); err != nil {
		return WriteResult{}, err
	}

	var res WriteResult
	indexPath := filepath.Join(toDir, "index.md")
	if err := writeFile(indexPath, []byte(RenderIndexMarkdown(snap)), opt.Overwrite); err != nil {
		return res, err
	}
	res.Written = append(res.Written, indexPath)

	for _, cat := range []model.Category{model.CategoryLost, model.CategoryFound} {
		for _, it := range snap.Items(cat) {
			p := filepath.Join(itemsDir, listing.Ref(cat, it.ID)+".md")
			if err := writeFile(p, []byte(RenderItemMarkdown(cat, it)), opt.Overwrite); err != nil {
				return res, err
			}
			res.Written = append(res.Written, p)
		}
	}
	return res, nil
}

func writeFile(path string, b []byte, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return errors.New("file exists (use --overwrite): " + path)
		}
	}
	return os.WriteFile(path, b, 0o644)
}
