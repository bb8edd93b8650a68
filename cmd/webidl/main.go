package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/teranos/webidl/am"
	"github.com/teranos/webidl/cmd/webidl/commands"
	"github.com/teranos/webidl/errors"
	"github.com/teranos/webidl/logger"
)

var rootCmd = &cobra.Command{
	Use:   "webidl",
	Short: "webidl - IDL type normalization and overload expansion",
	Long: `webidl - IDL type normalization and overload expansion.

Resolves the type expressions of a declaration document into canonical
types, flattens unions, and expands every operation into the monomorphic
signatures a binding generator emits.

Available commands:
  expand  - Lower every operation into binding signatures
  flatten - Show the union-free alternatives of a typedef
  config  - Show and edit configuration
  version - Show version information

Examples:
  webidl expand dom.yaml                  # Table of generated bindings
  webidl expand dom.yaml --format json    # Machine-readable output
  webidl expand dom.yaml --watch          # Re-run whenever the document changes
  webidl flatten dom.yaml NodeOrString    # Alternatives of one typedef
  webidl config show --sources            # Where each setting comes from`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := am.Load()
		if err != nil {
			return errors.Wrap(err, "failed to load config")
		}

		// Flags add to what the config asks for
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("log-json")
		if cfg.Log.Verbosity > verbosity {
			verbosity = cfg.Log.Verbosity
		}

		if err := logger.Initialize(jsonLogs || cfg.Log.JSON, verbosity); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	// Add global flags
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase log verbosity (-v info, -vv debug)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Emit logs as JSON")

	// Add commands
	rootCmd.AddCommand(commands.ExpandCmd)
	rootCmd.AddCommand(commands.FlattenCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintf(os.Stderr, "hint: %s\n", hint)
		}
		os.Exit(1)
	}
}
