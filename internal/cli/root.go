package cli

import (
	"fmt"
	"os"
	"strings"

	"lostfound-cli/internal/config"
	"lostfound-cli/internal/format"
	"lostfound-cli/internal/logging"
	"lostfound-cli/internal/nav"
	"lostfound-cli/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	ConfigPath string
	PrettyJSON bool
	Format     string
	SkipAuth   bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "lostfound",
		Short:        "Lost & Found board for the terminal",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive board
  lostfound

  # Scriptable commands
  lostfound items list --category found
  lostfound items search keys

  # Direct item lookup (shortcut for: lostfound items show lost-2)
  lostfound lost-2
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, app)
		},
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", envOr("LOSTFOUND_CONFIG", ""), "Config file (yaml, json, toml or .env); the environment overrides it")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("LOSTFOUND_FORMAT", "json"), "Output format (json|edn)")
	cmd.Flags().BoolVar(&app.SkipAuth, "skip-auth", false, "Open the board directly instead of the login screen")

	cmd.AddCommand(newItemsCmd(app))
	cmd.AddCommand(newParamsCmd(app))
	cmd.AddCommand(newPublishCmd(app))
	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func runTUI(cmd *cobra.Command, app *App) error {
	cfg, err := loadConfig(app)
	if err != nil {
		return writeErr(cmd, err)
	}
	log, closeLog, err := logging.New(logging.Options{
		File:      cfg.Log.File,
		Level:     cfg.Log.Level,
		SentryDSN: cfg.Log.SentryDSN,
	})
	if err != nil {
		return writeErr(cmd, err)
	}
	defer func() { _ = closeLog() }()

	opts := tui.Options{
		Config: cfg,
		Logger: logging.WithSession(log, logging.NewSessionID()),
	}
	if app.SkipAuth {
		opts.Start = nav.RouteListing
	}
	if err := tui.Run(cmd.Context(), opts); err != nil {
		log.Error("tui exited", "err", err)
		return writeErr(cmd, err)
	}
	return nil
}

func loadConfig(app *App) (*config.Config, error) {
	return config.Load(app.ConfigPath)
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	f, err := format.Parse(app.Format)
	if err != nil {
		return writeErr(cmd, err)
	}
	return format.Write(cmd.OutOrStdout(), map[string]any{"data": v}, f, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
