// Package document decodes declaration documents: pre-parsed IDL
// declarations written as YAML or TOML. A document names the interfaces,
// dictionaries and enums in scope, gives typedef right-hand sides, and lists
// the operations to lower.
//
//	format: "1.0"
//	interfaces: [Node]
//	typedefs:
//	  NodeOrString: {union: [Node, DOMString]}
//	operations:
//	  - interface: Node
//	    name: appendChild
//	    return: Node
//	    arguments:
//	      - {name: node, type: NodeOrString}
package document

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/teranos/webidl/errors"
	"github.com/teranos/webidl/idl/ast"
	"github.com/teranos/webidl/idl/symbols"
	"github.com/teranos/webidl/logger"
)

// Syntax is the serialization a document is written in.
type Syntax int

const (
	YAML Syntax = iota
	TOML
)

func (s Syntax) String() string {
	if s == TOML {
		return "toml"
	}
	return "yaml"
}

// SyntaxFromPath picks the syntax from the file extension.
func SyntaxFromPath(path string) (Syntax, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return 0, errors.WithHint(
			errors.NewInvalidDocumentError("unrecognized document extension %q", filepath.Ext(path)),
			"use .yaml, .yml or .toml")
	}
}

// Typedef is one `typedef <Type> <Name>;` declaration.
type Typedef struct {
	Name string
	Type ast.Type
}

// Document is a decoded declaration document.
type Document struct {
	// Path is set by Load.
	Path         string
	Format       *semver.Version
	Interfaces   []string
	Dictionaries []string
	Enums        []string
	// Typedefs are sorted by name.
	Typedefs   []Typedef
	Operations []ast.Operation
}

type rawDocument struct {
	Format       string                 `yaml:"format" toml:"format"`
	Interfaces   []string               `yaml:"interfaces" toml:"interfaces"`
	Dictionaries []string               `yaml:"dictionaries" toml:"dictionaries"`
	Enums        []string               `yaml:"enums" toml:"enums"`
	Typedefs     map[string]interface{} `yaml:"typedefs" toml:"typedefs"`
	Operations   []rawOperation         `yaml:"operations" toml:"operations"`
}

type rawOperation struct {
	Interface string        `yaml:"interface" toml:"interface"`
	Name      string        `yaml:"name" toml:"name"`
	Static    bool          `yaml:"static" toml:"static"`
	Return    interface{}   `yaml:"return" toml:"return"`
	Arguments []rawArgument `yaml:"arguments" toml:"arguments"`
}

type rawArgument struct {
	Name     string      `yaml:"name" toml:"name"`
	Type     interface{} `yaml:"type" toml:"type"`
	Optional bool        `yaml:"optional" toml:"optional"`
}

// Load reads and decodes the document at path.
func Load(path string) (*Document, error) {
	syntax, err := SyntaxFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read document %s", path)
	}
	doc, err := Decode(data, syntax)
	if err != nil {
		return nil, errors.Wrapf(err, "document %s", path)
	}
	doc.Path = path

	logger.Debugw("loaded document",
		logger.FieldFile, path,
		logger.FieldFormat, doc.Format.String(),
		logger.FieldCount, len(doc.Operations))
	return doc, nil
}

// Decode decodes a document from data.
func Decode(data []byte, syntax Syntax) (*Document, error) {
	var raw rawDocument
	switch syntax {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&raw); err != nil {
			if err == io.EOF {
				return nil, errors.NewInvalidDocumentError("empty document")
			}
			return nil, errors.Mark(errors.Wrap(err, "failed to parse yaml"), errors.ErrInvalidDocument)
		}
	case TOML:
		md, err := toml.Decode(string(data), &raw)
		if err != nil {
			return nil, errors.Mark(errors.Wrap(err, "failed to parse toml"), errors.ErrInvalidDocument)
		}
		if unknown := unknownTOMLKeys(md); len(unknown) > 0 {
			return nil, errors.NewInvalidDocumentError("unknown keys %v", unknown)
		}
	default:
		return nil, errors.AssertionFailedf("unknown document syntax %d", int(syntax))
	}
	return raw.convert()
}

// unknownTOMLKeys lists keys the decoder did not consume. Keys below a type
// expression are decoded into interface{} values and never count.
func unknownTOMLKeys(md toml.MetaData) []string {
	var out []string
	for _, key := range md.Undecoded() {
		if insideTypeExpression(key) {
			continue
		}
		out = append(out, key.String())
	}
	return out
}

func insideTypeExpression(key toml.Key) bool {
	if len(key) > 2 && key[0] == "typedefs" {
		return true
	}
	for _, part := range key[:len(key)-1] {
		if part == "type" || part == "return" {
			return true
		}
	}
	return false
}

func (raw *rawDocument) convert() (*Document, error) {
	format, err := checkFormat(raw.Format)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Format:       format,
		Interfaces:   raw.Interfaces,
		Dictionaries: raw.Dictionaries,
		Enums:        raw.Enums,
	}
	for _, names := range [][]string{raw.Interfaces, raw.Dictionaries, raw.Enums} {
		for _, name := range names {
			if name == "" || !isIdentifier(name) {
				return nil, errors.NewInvalidDocumentError("invalid declaration name %q", name)
			}
		}
	}

	names := make([]string, 0, len(raw.Typedefs))
	for name := range raw.Typedefs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if name == "" || !isIdentifier(name) {
			return nil, errors.NewInvalidDocumentError("invalid typedef name %q", name)
		}
		t, err := ParseType(raw.Typedefs[name])
		if err != nil {
			return nil, errors.Wrapf(err, "typedef %s", name)
		}
		doc.Typedefs = append(doc.Typedefs, Typedef{Name: name, Type: t})
	}

	declared := make(map[string]bool, len(raw.Interfaces))
	for _, name := range raw.Interfaces {
		declared[name] = true
	}
	for i, rop := range raw.Operations {
		op, err := rop.convert(declared)
		if err != nil {
			return nil, errors.Wrapf(err, "operations[%d]", i)
		}
		doc.Operations = append(doc.Operations, op)
	}
	return doc, nil
}

func (raw rawOperation) convert(interfaces map[string]bool) (ast.Operation, error) {
	if raw.Name == "" {
		return ast.Operation{}, errors.NewInvalidDocumentError("operation has no name")
	}
	if !interfaces[raw.Interface] {
		return ast.Operation{}, errors.WithHint(
			errors.NewInvalidDocumentError("operation %s is declared on unknown interface %q", raw.Name, raw.Interface),
			"list the interface under interfaces")
	}

	op := ast.Operation{Interface: raw.Interface, Name: raw.Name, Static: raw.Static}
	if raw.Return != nil {
		ret, err := ParseType(raw.Return)
		if err != nil {
			return ast.Operation{}, errors.Wrapf(err, "%s.%s return", raw.Interface, raw.Name)
		}
		op.Return = ret
	}

	for _, rarg := range raw.Arguments {
		if rarg.Name == "" {
			return ast.Operation{}, errors.NewInvalidDocumentError("%s.%s has an unnamed argument", raw.Interface, raw.Name)
		}
		t, err := ParseType(rarg.Type)
		if err != nil {
			return ast.Operation{}, errors.Wrapf(err, "%s.%s argument %q", raw.Interface, raw.Name, rarg.Name)
		}
		op.Arguments = append(op.Arguments, ast.Argument{Name: rarg.Name, Type: t, Optional: rarg.Optional})
	}
	return op, nil
}

// Typedef returns the right-hand side of the named typedef.
func (d *Document) Typedef(name string) (ast.Type, bool) {
	i := sort.Search(len(d.Typedefs), func(i int) bool { return d.Typedefs[i].Name >= name })
	if i < len(d.Typedefs) && d.Typedefs[i].Name == name {
		return d.Typedefs[i].Type, true
	}
	return nil, false
}

// Symbols builds the first-pass record of the document's declarations.
func (d *Document) Symbols() (*symbols.Record, error) {
	record := symbols.NewRecord()
	for _, name := range d.Interfaces {
		if err := record.AddInterface(name); err != nil {
			return nil, err
		}
	}
	for _, name := range d.Dictionaries {
		if err := record.AddDictionary(name); err != nil {
			return nil, err
		}
	}
	for _, name := range d.Enums {
		if err := record.AddEnum(name); err != nil {
			return nil, err
		}
	}
	for _, td := range d.Typedefs {
		if err := record.AddTypedef(td.Name, td.Type); err != nil {
			return nil, err
		}
	}
	return record, nil
}
