package cli

import (
	"errors"
	"strings"

	"lostfound-cli/internal/config"
	"lostfound-cli/internal/listing"
	"lostfound-cli/internal/model"
	"lostfound-cli/internal/nav"

	"github.com/spf13/cobra"
)

type itemOut struct {
	Ref string `json:"ref"`
	model.Item
}

func itemsOut(cat model.Category, items []model.Item) []itemOut {
	out := make([]itemOut, 0, len(items))
	for _, it := range items {
		out = append(out, itemOut{Ref: listing.Ref(cat, it.ID), Item: it})
	}
	return out
}

// draftFlags are the create-form fields a listing can be built with.
type draftFlags struct {
	title       string
	description string
	category    string
	image       string
	itemType    string
}

func (f *draftFlags) register(cmd *cobra.Command, prefix string) {
	cmd.Flags().StringVar(&f.title, prefix+"title", "", "Post title")
	cmd.Flags().StringVar(&f.description, prefix+"description", "", "Post description")
	cmd.Flags().StringVar(&f.category, prefix+"category", string(model.CategoryLost), "Board (lost|found)")
	cmd.Flags().StringVar(&f.image, prefix+"image", "", "Photo URI (default: placeholder)")
	cmd.Flags().StringVar(&f.itemType, prefix+"type", "", "Item type (wallet|key|phone|bag; default per board)")
}

func (f draftFlags) set() bool {
	return f.title != "" || f.description != ""
}

func (f draftFlags) draft(cfg *config.Config) (nav.DraftParams, error) {
	cats, err := parseCategory(f.category)
	if err != nil || len(cats) != 1 {
		return nav.DraftParams{}, errors.New("invalid post category (want lost or found): " + f.category)
	}
	if t := strings.TrimSpace(f.itemType); t != "" && !model.ItemType(t).Valid() {
		return nav.DraftParams{}, errors.New("invalid item type: " + t)
	}
	return nav.NewDraft(f.title, f.description, f.image, cats[0], model.ItemType(f.itemType), nowFunc(), cfg.Catalog.DraftImage)
}

func parseCategory(s string) ([]model.Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return []model.Category{model.CategoryLost, model.CategoryFound}, nil
	case string(model.CategoryLost):
		return []model.Category{model.CategoryLost}, nil
	case string(model.CategoryFound):
		return []model.Category{model.CategoryFound}, nil
	default:
		return nil, errors.New("invalid --category (want lost or found): " + s)
	}
}

func newItemsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "Item commands",
	}

	cmd.AddCommand(newItemsListCmd(app))
	cmd.AddCommand(newItemsShowCmd(app))
	cmd.AddCommand(newItemsSearchCmd(app))

	return cmd
}

func loadSnapshot(app *App, df draftFlags) (listing.Snapshot, error) {
	cfg, err := loadConfig(app)
	if err != nil {
		return listing.Snapshot{}, err
	}
	var draft nav.DraftParams
	if df.set() {
		if draft, err = df.draft(cfg); err != nil {
			return listing.Snapshot{}, err
		}
	}
	return listing.Loader{Catalog: cfg.Catalog}.Load(draft)
}

func newItemsListCmd(app *App) *cobra.Command {
	var category string
	var query string
	var df draftFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the board (optionally with a new post merged in)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cats, err := parseCategory(category)
			if err != nil {
				return writeErr(cmd, err)
			}
			snap, err := loadSnapshot(app, df)
			if err != nil {
				return writeErr(cmd, err)
			}
			data := map[string]any{}
			for _, cat := range cats {
				data[string(cat)] = itemsOut(cat, listing.Filter(snap.Items(cat), query))
			}
			return writeOut(cmd, app, data)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only this board (lost|found)")
	cmd.Flags().StringVar(&query, "query", "", "Keep items whose title or description contains this text")
	df.register(cmd, "draft-")

	return cmd
}

func newItemsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <lost-N|found-N>",
		Short: "Show one item with its comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, id, err := listing.ParseRef(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			snap, err := loadSnapshot(app, draftFlags{})
			if err != nil {
				return writeErr(cmd, err)
			}
			it, ok := snap.Find(cat, id)
			if !ok {
				return writeErr(cmd, errNotFound("item", listing.Ref(cat, id)))
			}
			return writeOut(cmd, app, itemOut{Ref: listing.Ref(cat, id), Item: it})
		},
	}
}

func newItemsSearchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search titles and descriptions on both boards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSnapshot(app, draftFlags{})
			if err != nil {
				return writeErr(cmd, err)
			}
			q := args[0]
			return writeOut(cmd, app, map[string]any{
				"query":                     q,
				string(model.CategoryLost):  itemsOut(model.CategoryLost, listing.Filter(snap.Items(model.CategoryLost), q)),
				string(model.CategoryFound): itemsOut(model.CategoryFound, listing.Filter(snap.Items(model.CategoryFound), q)),
			})
		},
	}
}
