package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/teranos/webidl/am"
	"github.com/teranos/webidl/errors"
	"github.com/teranos/webidl/idl/document"
	"github.com/teranos/webidl/idl/report"
)

const domDocument = `format: "1.0"
interfaces: [Node, Element]
dictionaries: [ScrollToOptions]
typedefs:
  NodeOrString: {union: [Node, DOMString]}
  Headers: {record: [ByteString, ByteString]}
operations:
  - interface: Node
    name: appendChild
    return: Node
    arguments:
      - {name: node, type: Node}
  - interface: Element
    name: scrollTo
    arguments:
      - {name: options, type: ScrollToOptions, optional: true}
  - interface: Element
    name: scrollTo
    arguments:
      - {name: x, type: unrestricted double}
      - {name: y, type: unrestricted double}
  - interface: Element
    name: prepend
    arguments:
      - {name: nodes, type: NodeOrString}
  - interface: Element
    name: attach
    arguments:
      - {name: gadget, type: Gadget}
`

func init() {
	pterm.DisableColor()
}

func loadDOM(t *testing.T) *document.Document {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(domDocument), 0o644))
	doc, err := document.Load(path)
	require.NoError(t, err)
	return doc
}

func TestExpand_JSON(t *testing.T) {
	doc := loadDOM(t)

	var buf bytes.Buffer
	require.NoError(t, Expand(context.Background(), &buf, doc, ExpandOptions{Format: report.FormatJSON, Workers: 2}))

	var r report.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &r))
	require.Len(t, r.Operations, 5)

	var bindings []string
	for _, op := range r.Operations {
		for _, sig := range op.Signatures {
			bindings = append(bindings, sig.Binding)
		}
	}
	assert.Equal(t, []string{
		"append_child",
		"scroll_to",
		"scroll_to_with_options",
		"scroll_to_with_x_and_y",
		"prepend_with_node",
		"prepend_with_dom_str",
	}, bindings)

	assert.Contains(t, r.Operations[4].Error, "unresolved type")
	assert.Equal(t, report.Summary{Operations: 5, Signatures: 6, SkippedOperations: 1}, r.Summary)
}

func TestExpand_Table(t *testing.T) {
	doc := loadDOM(t)

	var buf bytes.Buffer
	require.NoError(t, Expand(context.Background(), &buf, doc, ExpandOptions{Format: report.FormatTable}))

	assert.Contains(t, buf.String(), "prepend_with_dom_str")
	assert.Contains(t, buf.String(), "skipped Element.attach")
}

func TestExpand_Cancelled(t *testing.T) {
	doc := loadDOM(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := Expand(ctx, &buf, doc, ExpandOptions{Format: report.FormatJSON, Workers: 1})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}

func TestFlatten(t *testing.T) {
	doc := loadDOM(t)

	var buf bytes.Buffer
	require.NoError(t, Flatten(&buf, doc, "NodeOrString", report.FormatJSON))

	var a report.Alternatives
	require.NoError(t, json.Unmarshal(buf.Bytes(), &a))
	assert.Equal(t, "(Node or DOMString)", a.Type)
	require.Len(t, a.Alternatives, 2)
	assert.Equal(t, "node", a.Alternatives[0].Name)
	assert.Equal(t, "&str", a.Alternatives[1].RustArg)
}

func TestFlatten_Record(t *testing.T) {
	doc := loadDOM(t)

	var buf bytes.Buffer
	require.NoError(t, Flatten(&buf, doc, "Headers", report.FormatYAML))

	var a report.Alternatives
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &a))
	require.Len(t, a.Alternatives, 1)
	assert.Equal(t, "record_from_byte_str_to_byte_str", a.Alternatives[0].Name)
	assert.Empty(t, a.Alternatives[0].RustArg)
}

func TestFlatten_UnknownTypedef(t *testing.T) {
	doc := loadDOM(t)

	err := Flatten(&bytes.Buffer{}, doc, "Node", report.FormatTable)
	require.Error(t, err)
	assert.True(t, errors.IsUnresolvedTypeError(err))
	assert.NotEmpty(t, errors.GetAllHints(err))
}

func TestWriteConfig(t *testing.T) {
	cfg := &am.Config{
		Log:    am.LogConfig{Verbosity: 1},
		Expand: am.ExpandConfig{Workers: 3, Format: "yaml"},
		Watch:  am.WatchConfig{DebounceMS: 250},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteConfig(&buf, cfg, "toml"))
	var fromTOML am.Config
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &fromTOML))
	assert.Equal(t, *cfg, fromTOML)

	buf.Reset()
	require.NoError(t, WriteConfig(&buf, cfg, "yaml"))
	var fromYAML am.Config
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &fromYAML))
	assert.Equal(t, *cfg, fromYAML)

	buf.Reset()
	require.NoError(t, WriteConfig(&buf, cfg, "json"))
	var fromJSON am.Config
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fromJSON))
	assert.Equal(t, *cfg, fromJSON)

	assert.Error(t, WriteConfig(&buf, cfg, "ini"))
}

func TestWriteSources(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSources(&buf, []am.SettingInfo{
		{Key: "expand.workers", Value: 4, Source: am.SourceEnvironment, SourcePath: "WEBIDL_EXPAND_WORKERS"},
		{Key: "watch.debounce_ms", Value: 500, Source: am.SourceDefault, SourcePath: "built-in default"},
	}))

	out := buf.String()
	assert.Contains(t, out, "WEBIDL_EXPAND_WORKERS")
	assert.Contains(t, out, "watch.debounce_ms")
	assert.Contains(t, out, "environment")
}

func TestVersionCmd_JSON(t *testing.T) {
	var buf bytes.Buffer
	VersionCmd.SetOut(&buf)
	VersionCmd.SetArgs([]string{"--json"})
	t.Cleanup(func() {
		VersionCmd.SetOut(nil)
		VersionCmd.SetArgs(nil)
		_ = VersionCmd.Flags().Set("json", "false")
	})

	require.NoError(t, VersionCmd.Execute())

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, document.SupportedFormats, got["document_formats"])
	assert.Contains(t, got, "commit_hash")
}
