package main

import (
	"context"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"lostfound-cli/internal/cli"
	"lostfound-cli/internal/listing"
)

// Persistent flags that take a separate value.
var valueFlags = []string{"--config", "--format"}

func isItemRef(s string) bool {
	_, _, err := listing.ParseRef(s)
	return err == nil
}

// rewriteItemRefArgs makes `lostfound lost-2` work like
// `lostfound items show lost-2`. Cobra treats the first positional token as a
// subcommand, so argv is rewritten before parsing. Flags may come first.
func rewriteItemRefArgs(argv []string) []string {
	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		switch {
		case a == "":
			continue
		case a == "--":
			return argv
		case strings.HasPrefix(a, "-"):
			if !strings.Contains(a, "=") && slices.Contains(valueFlags, a) {
				i++
			}
			continue
		}

		if !isItemRef(a) {
			return argv
		}
		out := make([]string, 0, len(argv)+2)
		out = append(out, argv[:i]...)
		out = append(out, "items", "show")
		return append(out, argv[i:]...)
	}
	return argv
}

func main() {
	os.Args = rewriteItemRefArgs(os.Args)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := cli.NewRootCmd()
	cmd.SetArgs(os.Args[1:])
	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
