package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"ui": map[string]any{
					"loadDelay":   cfg.UI.LoadDelay.String(),
					"submitDelay": cfg.UI.SubmitDelay.String(),
					"glyphs":      cfg.UI.Glyphs,
					"theme":       cfg.UI.Theme,
				},
				"catalog": map[string]any{
					"lostImage":  cfg.Catalog.LostImage,
					"foundImage": cfg.Catalog.FoundImage,
					"draftImage": cfg.Catalog.DraftImage,
					"lostType":   cfg.Catalog.LostType,
					"foundType":  cfg.Catalog.FoundType,
					"commentMax": cfg.Catalog.CommentMax,
				},
				"log": map[string]any{
					"file":   cfg.Log.File,
					"level":  cfg.Log.Level,
					"sentry": strings.TrimSpace(cfg.Log.SentryDSN) != "",
				},
			})
		},
	}
}
