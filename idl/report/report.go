// Package report renders the outcome of a lowering pass, and the flattened
// alternatives of a single type, as a console table, JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"

	"github.com/teranos/webidl/errors"
	"github.com/teranos/webidl/idl/idltype"
	"github.com/teranos/webidl/idl/overload"
)

// Format is an output format.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Formats lists the accepted format names.
func Formats() []string {
	return []string{string(FormatTable), string(FormatJSON), string(FormatYAML)}
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", errors.WithHintf(errors.Newf("unknown output format %q", s),
			"use one of: %s", strings.Join(Formats(), ", "))
	}
}

// Report is the serializable form of a lowering pass.
type Report struct {
	Document   string      `json:"document,omitempty" yaml:"document,omitempty"`
	Operations []Operation `json:"operations" yaml:"operations"`
	Summary    Summary     `json:"summary" yaml:"summary"`
}

// Operation is one lowered operation.
type Operation struct {
	Interface  string      `json:"interface" yaml:"interface"`
	Name       string      `json:"name" yaml:"name"`
	Static     bool        `json:"static,omitempty" yaml:"static,omitempty"`
	Return     string      `json:"return,omitempty" yaml:"return,omitempty"`
	Signatures []Signature `json:"signatures,omitempty" yaml:"signatures,omitempty"`
	Skipped    []Skipped   `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Error      string      `json:"error,omitempty" yaml:"error,omitempty"`
}

// Signature is one generated binding.
type Signature struct {
	Binding string  `json:"binding" yaml:"binding"`
	Params  []Param `json:"params" yaml:"params"`
	Return  string  `json:"return,omitempty" yaml:"return,omitempty"`
}

// Param is one binding parameter.
type Param struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
	Rust string `json:"rust" yaml:"rust"`
}

// Skipped is a binding that was not generated.
type Skipped struct {
	Binding string `json:"binding" yaml:"binding"`
	Reason  string `json:"reason" yaml:"reason"`
}

// Summary totals a pass.
type Summary struct {
	Operations        int `json:"operations" yaml:"operations"`
	Signatures        int `json:"signatures" yaml:"signatures"`
	SkippedOperations int `json:"skipped_operations" yaml:"skipped_operations"`
	SkippedSignatures int `json:"skipped_signatures" yaml:"skipped_signatures"`
}

// Build converts lowering results into a Report.
func Build(document string, results []overload.Result) Report {
	r := Report{Document: document, Operations: make([]Operation, 0, len(results))}
	for _, res := range results {
		op := Operation{
			Interface: res.Interface,
			Name:      res.Operation,
			Static:    res.Static,
		}
		if res.ReturnType != nil {
			op.Return = idltype.String(res.ReturnType)
		}
		if res.Err != nil {
			op.Error = res.Err.Error()
		}
		for _, sig := range res.Signatures {
			s := Signature{Binding: sig.Binding, Params: make([]Param, len(sig.Params)), Return: sig.Return}
			for i, p := range sig.Params {
				s.Params[i] = Param{Name: p.Name, Type: idltype.String(p.Type), Rust: p.Rust}
			}
			op.Signatures = append(op.Signatures, s)
		}
		for _, skip := range res.Skipped {
			op.Skipped = append(op.Skipped, Skipped{Binding: skip.Binding, Reason: skip.Reason.Error()})
		}
		r.Operations = append(r.Operations, op)
	}

	stats := overload.Summarize(results)
	r.Summary = Summary{
		Operations:        stats.Operations,
		Signatures:        stats.Signatures,
		SkippedOperations: stats.SkippedOperations,
		SkippedSignatures: stats.SkippedSignatures,
	}
	return r
}

// Write renders r to w.
func Write(w io.Writer, r Report, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, r)
	case FormatYAML:
		return writeYAML(w, r)
	case FormatTable:
		return writeReportTable(w, r)
	default:
		return errors.Newf("unknown output format %q", format)
	}
}

func writeReportTable(w io.Writer, r Report) error {
	data := pterm.TableData{{"Interface", "Binding", "Parameters", "Returns"}}
	for _, op := range r.Operations {
		for _, sig := range op.Signatures {
			params := make([]string, len(sig.Params))
			for i, p := range sig.Params {
				params[i] = p.Name + ": " + p.Rust
			}
			data = append(data, []string{op.Interface, sig.Binding, strings.Join(params, ", "), sig.Return})
		}
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "failed to render table")
	}
	if _, err := fmt.Fprintln(w, table); err != nil {
		return err
	}

	for _, op := range r.Operations {
		if op.Error != "" {
			fmt.Fprintf(w, "%s %s.%s: %s\n", pterm.Yellow("skipped"), op.Interface, op.Name, op.Error)
		}
		for _, skip := range op.Skipped {
			fmt.Fprintf(w, "%s %s: %s\n", pterm.Yellow("skipped"), skip.Binding, skip.Reason)
		}
	}

	_, err = fmt.Fprintf(w, "%s operations, %s signatures, %s skipped\n",
		strconv.Itoa(r.Summary.Operations),
		pterm.LightGreen(strconv.Itoa(r.Summary.Signatures)),
		strconv.Itoa(r.Summary.SkippedOperations+r.Summary.SkippedSignatures))
	return err
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "failed to encode json")
	}
	return nil
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "failed to encode yaml")
	}
	return errors.Wrap(enc.Close(), "failed to encode yaml")
}
