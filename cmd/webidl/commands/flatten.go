package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/teranos/webidl/errors"
	"github.com/teranos/webidl/idl/document"
	"github.com/teranos/webidl/idl/report"
	"github.com/teranos/webidl/idl/resolve"
	"github.com/teranos/webidl/logger"
)

// FlattenCmd shows the alternatives of a typedef
var FlattenCmd = &cobra.Command{
	Use:   "flatten <document> <typedef>",
	Short: "Show the union-free alternatives of a typedef",
	Long: `Resolve a typedef and list every union-free alternative it flattens to,
with its descriptive name and Rust argument and return types.`,
	Args: cobra.ExactArgs(2),
	RunE: runFlatten,
}

var flattenFormat string

func init() {
	FlattenCmd.Flags().StringVarP(&flattenFormat, "format", "f", "table", "Output format: table, json, yaml")
}

func runFlatten(cmd *cobra.Command, args []string) error {
	format, err := report.ParseFormat(flattenFormat)
	if err != nil {
		return err
	}

	doc, err := document.Load(args[0])
	if err != nil {
		return err
	}
	return Flatten(cmd.OutOrStdout(), doc, args[1], format)
}

// Flatten resolves the named typedef of doc and writes its alternatives to w
func Flatten(w io.Writer, doc *document.Document, name string, format report.Format) error {
	node, ok := doc.Typedef(name)
	if !ok {
		return errors.WithHint(errors.NewUnresolvedTypeError(name), "flatten takes the name of a typedef")
	}

	table, err := doc.Symbols()
	if err != nil {
		return errors.Wrap(err, "failed to build symbol table")
	}

	t, err := resolve.New(table, logger.ComponentLogger("resolve")).Resolve(node)
	if err != nil {
		return errors.Wrapf(err, "typedef %s", name)
	}

	return report.WriteAlternatives(w, report.BuildAlternatives(name, t), format)
}
