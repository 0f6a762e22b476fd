package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/vango-go/overridable/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "overridable",
		Short: "Preview and inspect component overrides",
		Long: `overridable renders a demo component tree whose extension points are
resolved against an override manifest.

Overrides are declared in overridable.toml (or overridable.json):

  [[overrides]]
  id = "Card.header"
  preset = "text"
  params = { text = "Sale!" }

Use "serve" to browse the result, "render" to write it to a file and
"list" to see which identifiers are overridden.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Configuration file (default: overridable.toml or overridable.json in the working directory)")

	rootCmd.AddCommand(
		serveCmd(&configPath),
		renderCmd(&configPath),
		listCmd(&configPath),
		initCmd(),
		versionCmd(),
	)

	return rootCmd
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}
