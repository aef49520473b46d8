package cli

import (
	"fmt"
	"time"

	"lostfound-cli/internal/listing"
	"lostfound-cli/internal/nav"

	"github.com/spf13/cobra"
)

var nowFunc = time.Now

func newParamsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Inspect the params screens pass to each other",
	}

	cmd.AddCommand(newParamsEncodeDraftCmd(app))
	cmd.AddCommand(newParamsEncodeDetailCmd(app))
	cmd.AddCommand(newParamsDecodeCommentsCmd(app))

	return cmd
}

func newParamsEncodeDraftCmd(app *App) *cobra.Command {
	var df draftFlags

	cmd := &cobra.Command{
		Use:   "encode-draft",
		Short: "Print the params the report form hands to the board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			d, err := df.draft(cfg)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, d.Encode())
		},
	}
	df.register(cmd, "")

	return cmd
}

func newParamsEncodeDetailCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "encode-detail <lost-N|found-N>",
		Short: "Print the params the board hands to the post details screen",
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
			return writeOut(cmd, app, nav.DetailFromItem(it).Encode())
		},
	}
}

func newParamsDecodeCommentsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "decode-comments <blob>",
		Short: "Decode a comments param; malformed input decodes to an empty list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			comments, err := nav.DecodeComments(args[0])
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning:", err)
			}
			return writeOut(cmd, app, comments)
		},
	}
}
