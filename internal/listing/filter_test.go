package listing

import (
	"strings"
	"testing"

	"lostfound-cli/internal/config"
	"lostfound-cli/internal/model"
	"lostfound-cli/internal/nav"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_EmptyQueryIsIdentity(t *testing.T) {
	t.Parallel()

	snap, err := Build(nav.DraftParams{}, config.Defaults().Catalog)
	require.NoError(t, err)
	items := snap.Items(model.CategoryLost)

	got := Filter(items, "")
	assert.Equal(t, items, got)
	// Same backing array: no copy, no reordering.
	assert.Same(t, &items[0], &got[0])
}

func TestFilter_CaseInsensitiveTitleOrDescription(t *testing.T) {
	t.Parallel()

	snap, err := Build(nav.DraftParams{}, config.Defaults().Catalog)
	require.NoError(t, err)

	tests := []struct {
		name  string
		cat   model.Category
		query string
		want  []string
	}{
		{name: "title match", cat: model.CategoryLost, query: "WALLET", want: []string{"Lost Wallet"}},
		{name: "description match", cat: model.CategoryLost, query: "keychain", want: []string{"Lost Keys"}},
		{name: "shared prefix keeps order", cat: model.CategoryLost, query: "lost", want: []string{"Lost Wallet", "Lost Keys"}},
		{name: "substring inside word", cat: model.CategoryFound, query: "ackpa", want: []string{"Found Backpack"}},
		{name: "black matches description", cat: model.CategoryFound, query: "Black", want: []string{"Found Phone"}},
		{name: "no match", cat: model.CategoryFound, query: "umbrella", want: []string{}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, titles(Filter(snap.Items(tt.cat), tt.query)))
		})
	}
}

func TestFilter_IsOrderPreservingExactSubsequence(t *testing.T) {
	t.Parallel()

	f := gofakeit.New(42)
	for round := 0; round < 40; round++ {
		n := f.Number(0, 25)
		items := make([]model.Item, 0, n)
		for i := 0; i < n; i++ {
			items = append(items, model.Item{
				ID:          i + 1,
				Title:       f.Adjective() + " " + f.Noun(),
				Description: f.Sentence(f.Number(2, 8)),
			})
		}
		query := f.RandomString([]string{"a", "E", "an", "The", "ing", f.Noun(), ""})

		got := Filter(items, query)

		// Every kept item matches, and appears in original relative order.
		q := strings.ToLower(query)
		next := 0
		for _, it := range got {
			assert.True(t, strings.Contains(strings.ToLower(it.Title), q) || strings.Contains(strings.ToLower(it.Description), q))
			for next < len(items) && items[next].ID != it.ID {
				next++
			}
			require.Less(t, next, len(items), "filtered item %d out of order", it.ID)
			next++
		}

		// Every matching item is kept.
		want := 0
		for _, it := range items {
			if strings.Contains(strings.ToLower(it.Title), q) || strings.Contains(strings.ToLower(it.Description), q) {
				want++
			}
		}
		assert.Len(t, got, want)
	}
}
