package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/teranos/webidl/am"
	"github.com/teranos/webidl/errors"
	"github.com/teranos/webidl/idl/document"
	"github.com/teranos/webidl/idl/overload"
	"github.com/teranos/webidl/idl/report"
	"github.com/teranos/webidl/logger"
)

// ExpandCmd lowers every operation of a document
var ExpandCmd = &cobra.Command{
	Use:   "expand <document>",
	Short: "Lower every operation into binding signatures",
	Long: `Resolve every operation of a declaration document, expand union and
optional arguments, and list the binding signatures that would be generated.

Operations with unresolvable types are reported and skipped; signatures with
no Rust representation are reported and dropped.`,
	Args: cobra.ExactArgs(1),
	RunE: runExpand,
}

var (
	expandFormat  string
	expandWorkers int
	expandWatch   bool
)

func init() {
	ExpandCmd.Flags().StringVarP(&expandFormat, "format", "f", "", "Output format: table, json, yaml (default from config)")
	ExpandCmd.Flags().IntVarP(&expandWorkers, "workers", "w", 0, "Concurrent lowering workers (default from config)")
	ExpandCmd.Flags().BoolVar(&expandWatch, "watch", false, "Re-run whenever the document changes")
}

// ExpandOptions controls one expansion run
type ExpandOptions struct {
	Format  report.Format
	Workers int
}

func runExpand(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	opts := ExpandOptions{Workers: cfg.Expand.Workers}
	if cmd.Flags().Changed("workers") {
		if expandWorkers < 0 {
			return errors.Newf("--workers must be >= 0, got %d", expandWorkers)
		}
		opts.Workers = expandWorkers
	}
	format := cfg.Expand.Format
	if expandFormat != "" {
		format = expandFormat
	}
	if opts.Format, err = report.ParseFormat(format); err != nil {
		return err
	}

	path := args[0]
	out := cmd.OutOrStdout()
	ctx := cmd.Context()

	doc, err := document.Load(path)
	if err != nil {
		return err
	}
	if err := Expand(ctx, out, doc, opts); err != nil {
		return err
	}
	if !expandWatch {
		return nil
	}

	watcher := document.NewWatcher(path, cfg.Watch.Debounce(), logger.ComponentLogger("watch"))
	return watcher.Run(ctx, func(doc *document.Document) error {
		fmt.Fprintln(out)
		return Expand(ctx, out, doc, opts)
	})
}

// Expand lowers every operation of doc and writes the report to w
func Expand(ctx context.Context, w io.Writer, doc *document.Document, opts ExpandOptions) error {
	table, err := doc.Symbols()
	if err != nil {
		return errors.Wrap(err, "failed to build symbol table")
	}

	lowerer := overload.NewLowerer(table, logger.ComponentLogger("lower"), opts.Workers)
	results, err := lowerer.LowerAll(ctx, doc.Operations)
	if err != nil {
		return err
	}

	return report.Write(w, report.Build(doc.Path, results), opts.Format)
}
