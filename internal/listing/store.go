// Package listing builds the lost/found board a listing screen renders.
//
// A Snapshot is rebuilt from scratch (seed + at most one forwarded draft) every
// time the listing receives new navigation params; nothing here outlives the
// screen that asked for it.
package listing

import (
	"encoding/json"
	"fmt"
	"strings"

	"lostfound-cli/internal/config"
	"lostfound-cli/internal/model"
	"lostfound-cli/internal/nav"
)

// DraftDate is the display label given to a freshly merged draft.
const DraftDate = "Just now"

// Snapshot is an immutable view of both categories. Accessors return copies.
type Snapshot struct {
	lost  []model.Item
	found []model.Item
}

func (s Snapshot) Items(cat model.Category) []model.Item {
	src := s.lost
	if cat == model.CategoryFound {
		src = s.found
	}
	out := make([]model.Item, 0, len(src))
	for _, it := range src {
		out = append(out, it.Clone())
	}
	return out
}

func (s Snapshot) Len(cat model.Category) int {
	if cat == model.CategoryFound {
		return len(s.found)
	}
	return len(s.lost)
}

func (s Snapshot) Find(cat model.Category, id int) (model.Item, bool) {
	src := s.lost
	if cat == model.CategoryFound {
		src = s.found
	}
	for _, it := range src {
		if it.ID == id {
			return it.Clone(), true
		}
	}
	return model.Item{}, false
}

func (s Snapshot) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string][]model.Item{
		string(model.CategoryLost):  s.Items(model.CategoryLost),
		string(model.CategoryFound): s.Items(model.CategoryFound),
	})
}

// SeedFunc supplies the sample items a board starts with.
type SeedFunc func() (lost, found []model.Item)

// DefaultSeed is the fixed sample data: two items per category.
func DefaultSeed() (lost, found []model.Item) {
	return seedLost(), seedFound()
}

type Loader struct {
	Catalog config.Catalog
	Seed    SeedFunc
}

// Build populates a snapshot from the default seed plus the forwarded draft.
func Build(draft nav.DraftParams, catalog config.Catalog) (Snapshot, error) {
	return Loader{Catalog: catalog}.Load(draft)
}

// Load never panics: a failure while populating is returned as an error
// together with an empty snapshot.
func (l Loader) Load(draft nav.DraftParams) (snap Snapshot, err error) {
	defer func() {
		if r := recover(); r != nil {
			snap = Snapshot{}
			err = fmt.Errorf("populate listing: %v", r)
		}
	}()

	seed := l.Seed
	if seed == nil {
		seed = DefaultSeed
	}
	lost, found := seed()
	lost = cloneItems(lost)
	found = cloneItems(found)

	if draft.HasDraft() {
		// Routed to exactly one category: found only when asked for.
		cat := model.ParseCategory(string(draft.Category))
		if cat == model.CategoryFound {
			found = append(found, l.draftItem(draft, cat, nextID(found)))
		} else {
			lost = append(lost, l.draftItem(draft, cat, nextID(lost)))
		}
	}

	if err := checkIDs(model.CategoryLost, lost); err != nil {
		return Snapshot{}, err
	}
	if err := checkIDs(model.CategoryFound, found); err != nil {
		return Snapshot{}, err
	}
	return Snapshot{lost: lost, found: found}, nil
}

func (l Loader) draftItem(d nav.DraftParams, cat model.Category, id int) model.Item {
	image := d.Image
	if strings.TrimSpace(image) == "" {
		image = l.Catalog.PlaceholderImage(cat)
	}
	typ := model.ParseItemType(string(d.ItemType))
	if typ == "" {
		typ = l.Catalog.DefaultType(cat)
	}
	return model.Item{
		ID:          id,
		Title:       d.Title,
		Description: d.Description,
		Date:        DraftDate,
		Image:       image,
		Type:        typ,
	}
}

// nextID numbers each category independently: one past the highest id in use.
func nextID(items []model.Item) int {
	maxID := 0
	for _, it := range items {
		if it.ID > maxID {
			maxID = it.ID
		}
	}
	return maxID + 1
}

func checkIDs(cat model.Category, items []model.Item) error {
	seen := make(map[int]struct{}, len(items))
	for _, it := range items {
		if _, dup := seen[it.ID]; dup {
			return fmt.Errorf("populate listing: duplicate %s item id %d", cat, it.ID)
		}
		seen[it.ID] = struct{}{}
	}
	return nil
}

func cloneItems(items []model.Item) []model.Item {
	out := make([]model.Item, 0, len(items))
	for _, it := range items {
		out = append(out, it.Clone())
	}
	return out
}
