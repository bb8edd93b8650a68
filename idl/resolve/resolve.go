// Package resolve converts parser type expressions into canonical idltype
// values, expanding typedefs and classifying identifiers through the symbol
// table.
package resolve

import (
	"go.uber.org/zap"

	"github.com/teranos/webidl/errors"
	"github.com/teranos/webidl/idl/ast"
	"github.com/teranos/webidl/idl/idltype"
	"github.com/teranos/webidl/logger"
)

// SymbolTable is the read-only view of the first pass the resolver needs.
type SymbolTable interface {
	LookupTypedef(name string) (ast.Type, bool)
	IsInterface(name string) bool
	IsDictionary(name string) bool
	IsEnum(name string) bool
}

// Resolver resolves type expressions against a symbol table.
// It holds no mutable state and may be shared between goroutines.
type Resolver struct {
	Symbols SymbolTable
	Logger  *zap.SugaredLogger
}

// New creates a Resolver. A nil logger falls back to the global logger.
func New(symbols SymbolTable, log *zap.SugaredLogger) *Resolver {
	return &Resolver{Symbols: symbols, Logger: log}
}

var integerTypes = map[ast.IntegerWidth][2]idltype.Primitive{
	ast.Short:    {idltype.Short, idltype.UnsignedShort},
	ast.Long:     {idltype.Long, idltype.UnsignedLong},
	ast.LongLong: {idltype.LongLong, idltype.UnsignedLongLong},
}

var stringTypes = map[ast.StringKind]idltype.Primitive{
	ast.ByteString: idltype.ByteString,
	ast.DOMString:  idltype.DOMString,
	ast.USVString:  idltype.USVString,
}

var keywordTypes = map[ast.Keyword]idltype.Primitive{
	ast.Boolean:           idltype.Boolean,
	ast.Byte:              idltype.Byte,
	ast.Octet:             idltype.Octet,
	ast.Object:            idltype.Object,
	ast.Symbol:            idltype.Symbol,
	ast.Error:             idltype.Error,
	ast.Any:               idltype.Any,
	ast.Void:              idltype.Void,
	ast.ArrayBuffer:       idltype.ArrayBuffer,
	ast.DataView:          idltype.DataView,
	ast.Int8Array:         idltype.Int8Array,
	ast.Int16Array:        idltype.Int16Array,
	ast.Int32Array:        idltype.Int32Array,
	ast.Uint8Array:        idltype.Uint8Array,
	ast.Uint16Array:       idltype.Uint16Array,
	ast.Uint32Array:       idltype.Uint32Array,
	ast.Uint8ClampedArray: idltype.Uint8ClampedArray,
	ast.Float32Array:      idltype.Float32Array,
	ast.Float64Array:      idltype.Float64Array,
}

// Resolve converts t into its canonical form.
//
// An identifier that is not a typedef, interface, dictionary or enum fails
// the whole expression with an error wrapping errors.ErrUnresolvedType and
// logs a warning; the caller is expected to skip the enclosing declaration.
// A typedef that expands into itself fails with errors.ErrTypedefCycle.
func (r *Resolver) Resolve(t ast.Type) (idltype.Type, error) {
	return r.resolve(t, nil)
}

// ResolveArguments resolves every argument of an operation, keeping order
// and optionality. It fails on the first argument that cannot be resolved.
func (r *Resolver) ResolveArguments(args []ast.Argument) ([]idltype.Argument, error) {
	out := make([]idltype.Argument, 0, len(args))
	for _, arg := range args {
		t, err := r.Resolve(arg.Type)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %q", arg.Name)
		}
		out = append(out, idltype.Argument{Type: t, Optional: arg.Optional})
	}
	return out, nil
}

// expanding holds the typedef names currently being expanded, innermost last.
func (r *Resolver) resolve(t ast.Type, expanding []string) (idltype.Type, error) {
	switch t := t.(type) {
	case ast.Integer:
		pair, ok := integerTypes[t.Width]
		if !ok {
			return nil, errors.AssertionFailedf("unknown integer width %d", int(t.Width))
		}
		if t.Unsigned {
			return pair[1], nil
		}
		return pair[0], nil

	case ast.FloatingPoint:
		switch {
		case t.Double && t.Unrestricted:
			return idltype.UnrestrictedDouble, nil
		case t.Double:
			return idltype.Double, nil
		case t.Unrestricted:
			return idltype.UnrestrictedFloat, nil
		default:
			return idltype.Float, nil
		}

	case ast.String:
		p, ok := stringTypes[t.Kind]
		if !ok {
			return nil, errors.AssertionFailedf("unknown string kind %d", int(t.Kind))
		}
		return p, nil

	case ast.Keyword:
		p, ok := keywordTypes[t]
		if !ok {
			return nil, errors.AssertionFailedf("unknown keyword %d", int(t))
		}
		return p, nil

	case ast.MayBeNull:
		inner, err := r.resolve(t.Type, expanding)
		if err != nil {
			return nil, err
		}
		if t.QMark {
			return idltype.Nullable{Inner: inner}, nil
		}
		return inner, nil

	case ast.Sequence:
		elem, err := r.resolve(t.Elem, expanding)
		if err != nil {
			return nil, err
		}
		return idltype.Sequence{Elem: elem}, nil

	case ast.FrozenArray:
		elem, err := r.resolve(t.Elem, expanding)
		if err != nil {
			return nil, err
		}
		return idltype.FrozenArray{Elem: elem}, nil

	case ast.Promise:
		result, err := r.resolve(t.Result, expanding)
		if err != nil {
			return nil, err
		}
		return idltype.Promise{Result: result}, nil

	case ast.Record:
		if t.Key == nil || t.Value == nil {
			return nil, errors.AssertionFailedf("record requires both key and value types")
		}
		key, err := r.resolve(t.Key, expanding)
		if err != nil {
			return nil, err
		}
		value, err := r.resolve(t.Value, expanding)
		if err != nil {
			return nil, err
		}
		return idltype.Record{Key: key, Value: value}, nil

	case ast.Union:
		if len(t.Members) == 0 {
			return nil, errors.AssertionFailedf("union without members")
		}
		members := make([]idltype.Type, 0, len(t.Members))
		for _, member := range t.Members {
			m, err := r.resolve(member, expanding)
			if err != nil {
				return nil, err
			}
			members = append(members, m)
		}
		return idltype.Union{Members: members}, nil

	case ast.Attributed:
		return r.resolve(t.Type, expanding)

	case ast.Identifier:
		return r.resolveIdentifier(t.Name, expanding)

	default:
		return nil, errors.AssertionFailedf("unexpected type node %T", t)
	}
}

// resolveIdentifier applies the lookup order typedef, interface, dictionary,
// enum.
func (r *Resolver) resolveIdentifier(name string, expanding []string) (idltype.Type, error) {
	if rhs, ok := r.Symbols.LookupTypedef(name); ok {
		for _, outer := range expanding {
			if outer == name {
				err := errors.Wrapf(errors.ErrTypedefCycle, "%q", name)
				r.log().Warnw("typedef expands into itself",
					logger.FieldType, name,
					"chain", append(expanding, name))
				return nil, err
			}
		}
		t, err := r.resolve(rhs, append(expanding[:len(expanding):len(expanding)], name))
		if err != nil {
			return nil, errors.Wrapf(err, "typedef %q", name)
		}
		return t, nil
	}

	switch {
	case r.Symbols.IsInterface(name):
		return idltype.Interface{Name: name}, nil
	case r.Symbols.IsDictionary(name):
		return idltype.Dictionary{Name: name}, nil
	case r.Symbols.IsEnum(name):
		return idltype.Enum{Name: name}, nil
	}

	r.log().Warnw("unrecognized type", logger.FieldType, name)
	return nil, errors.NewUnresolvedTypeError(name)
}

func (r *Resolver) log() *zap.SugaredLogger {
	return logger.OrGlobal(r.Logger)
}
