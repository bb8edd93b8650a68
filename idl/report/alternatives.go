package report

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/teranos/webidl/errors"
	"github.com/teranos/webidl/idl/idltype"
)

// Alternatives lists the union-free alternatives of one type.
type Alternatives struct {
	Name         string        `json:"name" yaml:"name"`
	Type         string        `json:"type" yaml:"type"`
	Alternatives []Alternative `json:"alternatives" yaml:"alternatives"`
}

// Alternative is one flattened type with its descriptive name and Rust
// tokens. The Rust fields are empty when the type has no mapping.
type Alternative struct {
	Type       string `json:"type" yaml:"type"`
	Name       string `json:"name" yaml:"name"`
	RustArg    string `json:"rust_argument,omitempty" yaml:"rust_argument,omitempty"`
	RustReturn string `json:"rust_return,omitempty" yaml:"rust_return,omitempty"`
}

// BuildAlternatives flattens t.
func BuildAlternatives(name string, t idltype.Type) Alternatives {
	flat := idltype.Flatten(t)
	a := Alternatives{Name: name, Type: idltype.String(t), Alternatives: make([]Alternative, len(flat))}
	for i, alt := range flat {
		arg, _ := idltype.RustType(alt, idltype.ArgumentPosition)
		ret, _ := idltype.RustType(alt, idltype.ReturnPosition)
		a.Alternatives[i] = Alternative{
			Type:       idltype.String(alt),
			Name:       idltype.TypeName(alt),
			RustArg:    arg,
			RustReturn: ret,
		}
	}
	return a
}

// WriteAlternatives renders a to w.
func WriteAlternatives(w io.Writer, a Alternatives, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, a)
	case FormatYAML:
		return writeYAML(w, a)
	case FormatTable:
		data := pterm.TableData{{"Type", "Name", "Argument", "Return"}}
		for _, alt := range a.Alternatives {
			data = append(data, []string{alt.Type, alt.Name, orDash(alt.RustArg), orDash(alt.RustReturn)})
		}
		table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return errors.Wrap(err, "failed to render table")
		}
		_, err = fmt.Fprintf(w, "%s = %s\n%s\n", a.Name, a.Type, table)
		return err
	default:
		return errors.Newf("unknown output format %q", format)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
