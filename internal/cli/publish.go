package cli

import (
	"lostfound-cli/internal/publish"

	"github.com/spf13/cobra"
)

func newPublishCmd(app *App) *cobra.Command {
	var to string
	var overwrite bool
	var df draftFlags

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Write the board as markdown files (index.md + items/<ref>.md)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSnapshot(app, df)
			if err != nil {
				return writeErr(cmd, err)
			}
			res, err := publish.WriteBoard(snap, to, publish.WriteOptions{Overwrite: overwrite})
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, res)
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Target directory")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace existing files")
	df.register(cmd, "draft-")

	return cmd
}
