// Package symbols is the first-pass record of every named IDL declaration:
// typedefs with their right-hand side, and the sets of interface, dictionary
// and enum names. Type resolution only ever reads it.
package symbols

import (
	"sort"

	"github.com/teranos/webidl/errors"
	"github.com/teranos/webidl/idl/ast"
)

// Kind is the declaration kind a name was registered under.
type Kind int

const (
	KindUnknown Kind = iota
	KindTypedef
	KindInterface
	KindDictionary
	KindEnum
)

func (k Kind) String() string {
	switch k {
	case KindTypedef:
		return "typedef"
	case KindInterface:
		return "interface"
	case KindDictionary:
		return "dictionary"
	case KindEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// Record collects declarations discovered by the first pass.
// It is not safe for concurrent writes; once populated it may be shared
// read-only across goroutines.
type Record struct {
	typedefs     map[string]ast.Type
	interfaces   map[string]struct{}
	dictionaries map[string]struct{}
	enums        map[string]struct{}
}

// NewRecord returns an empty Record.
func NewRecord() *Record {
	return &Record{
		typedefs:     make(map[string]ast.Type),
		interfaces:   make(map[string]struct{}),
		dictionaries: make(map[string]struct{}),
		enums:        make(map[string]struct{}),
	}
}

// AddTypedef registers `typedef <t> <name>;`.
func (r *Record) AddTypedef(name string, t ast.Type) error {
	if t == nil {
		return errors.Newf("typedef %q has no type", name)
	}
	if err := r.checkFree(name); err != nil {
		return err
	}
	r.typedefs[name] = t
	return nil
}

// AddInterface registers an interface name.
func (r *Record) AddInterface(name string) error {
	return r.addName(r.interfaces, name)
}

// AddDictionary registers a dictionary name.
func (r *Record) AddDictionary(name string) error {
	return r.addName(r.dictionaries, name)
}

// AddEnum registers an enum name.
func (r *Record) AddEnum(name string) error {
	return r.addName(r.enums, name)
}

func (r *Record) addName(set map[string]struct{}, name string) error {
	if err := r.checkFree(name); err != nil {
		return err
	}
	set[name] = struct{}{}
	return nil
}

func (r *Record) checkFree(name string) error {
	if name == "" {
		return errors.New("empty declaration name")
	}
	if kind := r.KindOf(name); kind != KindUnknown {
		return errors.Wrapf(errors.ErrDuplicateDefinition, "%q already declared as %s", name, kind)
	}
	return nil
}

// LookupTypedef returns the right-hand side of a typedef.
func (r *Record) LookupTypedef(name string) (ast.Type, bool) {
	t, ok := r.typedefs[name]
	return t, ok
}

// IsInterface reports whether name is a known interface.
func (r *Record) IsInterface(name string) bool {
	_, ok := r.interfaces[name]
	return ok
}

// IsDictionary reports whether name is a known dictionary.
func (r *Record) IsDictionary(name string) bool {
	_, ok := r.dictionaries[name]
	return ok
}

// IsEnum reports whether name is a known enum.
func (r *Record) IsEnum(name string) bool {
	_, ok := r.enums[name]
	return ok
}

// KindOf returns the kind name was registered under, or KindUnknown.
func (r *Record) KindOf(name string) Kind {
	switch {
	case r.typedefs[name] != nil:
		return KindTypedef
	case r.IsInterface(name):
		return KindInterface
	case r.IsDictionary(name):
		return KindDictionary
	case r.IsEnum(name):
		return KindEnum
	default:
		return KindUnknown
	}
}

// Names returns every declared name, sorted.
func (r *Record) Names() []string {
	names := make([]string, 0, r.Len())
	for name := range r.typedefs {
		names = append(names, name)
	}
	for _, set := range []map[string]struct{}{r.interfaces, r.dictionaries, r.enums} {
		for name := range set {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Len returns the number of declared names.
func (r *Record) Len() int {
	return len(r.typedefs) + len(r.interfaces) + len(r.dictionaries) + len(r.enums)
}
