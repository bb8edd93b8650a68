package document

import (
	"sort"
	"strings"
	"unicode"

	"github.com/teranos/webidl/errors"
	"github.com/teranos/webidl/idl/ast"
)

// builtinTypes maps every built-in spelling to its node. Multi-word
// spellings use single spaces; input whitespace is collapsed before lookup.
var builtinTypes = func() map[string]ast.Type {
	m := map[string]ast.Type{
		"short":               ast.Integer{Width: ast.Short},
		"unsigned short":      ast.Integer{Width: ast.Short, Unsigned: true},
		"long":                ast.Integer{Width: ast.Long},
		"unsigned long":       ast.Integer{Width: ast.Long, Unsigned: true},
		"long long":           ast.Integer{Width: ast.LongLong},
		"unsigned long long":  ast.Integer{Width: ast.LongLong, Unsigned: true},
		"float":               ast.FloatingPoint{},
		"unrestricted float":  ast.FloatingPoint{Unrestricted: true},
		"double":              ast.FloatingPoint{Double: true},
		"unrestricted double": ast.FloatingPoint{Double: true, Unrestricted: true},
		"ByteString":          ast.String{Kind: ast.ByteString},
		"DOMString":           ast.String{Kind: ast.DOMString},
		"USVString":           ast.String{Kind: ast.USVString},
	}
	for _, k := range ast.Keywords() {
		m[k.String()] = k
	}
	return m
}()

// Generic constructors accepted as single-key maps.
const (
	keySequence    = "sequence"
	keyFrozenArray = "frozen_array"
	keyPromise     = "promise"
	keyNullable    = "nullable"
	keyUnion       = "union"
	keyRecord      = "record"
)

// ParseType decodes one type expression as produced by the YAML or TOML
// decoders: a string naming a built-in type or an identifier, or a
// single-key map wrapping a generic, union or nullable type.
func ParseType(raw interface{}) (ast.Type, error) {
	switch v := raw.(type) {
	case string:
		return ParseTypeString(v)
	case map[string]interface{}:
		return parseTypeMap(v)
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(v))
		for k, val := range v {
			key, ok := k.(string)
			if !ok {
				return nil, errors.NewInvalidDocumentError("type key %v is not a string", k)
			}
			m[key] = val
		}
		return parseTypeMap(m)
	case nil:
		return nil, errors.NewInvalidDocumentError("missing type")
	default:
		return nil, errors.NewInvalidDocumentError("type must be a string or a map, got %T", raw)
	}
}

// ParseTypeString decodes the string form of a type expression:
//
//	unsigned long long
//	Node?
//	[Clamp, EnforceRange] octet
func ParseTypeString(s string) (ast.Type, error) {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "[") {
		end := strings.IndexByte(s, ']')
		if end < 0 {
			return nil, errors.NewInvalidDocumentError("unterminated extended attribute list in %q", s)
		}
		var attrs []string
		for _, a := range strings.Split(s[1:end], ",") {
			if a = strings.TrimSpace(a); a != "" {
				attrs = append(attrs, a)
			}
		}
		inner, err := ParseTypeString(s[end+1:])
		if err != nil {
			return nil, err
		}
		return ast.Attributed{Attributes: attrs, Type: inner}, nil
	}

	nullable := strings.HasSuffix(s, "?")
	if nullable {
		s = strings.TrimSpace(strings.TrimSuffix(s, "?"))
	}

	t, err := parseName(s)
	if err != nil {
		return nil, err
	}
	if nullable {
		return ast.MayBeNull{Type: t, QMark: true}, nil
	}
	return t, nil
}

func parseName(s string) (ast.Type, error) {
	normalized := strings.Join(strings.Fields(s), " ")
	if normalized == "" {
		return nil, errors.NewInvalidDocumentError("empty type name")
	}
	if t, ok := builtinTypes[normalized]; ok {
		return t, nil
	}
	if !isIdentifier(normalized) {
		return nil, errors.NewInvalidDocumentError("%q is neither a built-in type nor an identifier", s)
	}
	return ast.Identifier{Name: normalized}, nil
}

func isIdentifier(s string) bool {
	for i, r := range s {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && (r == '-' || unicode.IsDigit(r)):
		default:
			return false
		}
	}
	return true
}

func parseTypeMap(m map[string]interface{}) (ast.Type, error) {
	if len(m) != 1 {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return nil, errors.NewInvalidDocumentError("type map must have exactly one key, got %v", keys)
	}

	var key string
	var val interface{}
	for k, v := range m {
		key, val = k, v
	}

	switch key {
	case keySequence:
		elem, err := nested(key, val)
		if err != nil {
			return nil, err
		}
		return ast.Sequence{Elem: elem}, nil
	case keyFrozenArray:
		elem, err := nested(key, val)
		if err != nil {
			return nil, err
		}
		return ast.FrozenArray{Elem: elem}, nil
	case keyPromise:
		result, err := nested(key, val)
		if err != nil {
			return nil, err
		}
		return ast.Promise{Result: result}, nil
	case keyNullable:
		inner, err := nested(key, val)
		if err != nil {
			return nil, err
		}
		return ast.MayBeNull{Type: inner, QMark: true}, nil
	case keyUnion:
		members, err := nestedList(key, val)
		if err != nil {
			return nil, err
		}
		if len(members) == 0 {
			return nil, errors.NewInvalidDocumentError("union needs at least one member")
		}
		return ast.Union{Members: members}, nil
	case keyRecord:
		params, err := nestedList(key, val)
		if err != nil {
			return nil, err
		}
		if len(params) != 2 {
			return nil, errors.NewInvalidDocumentError("record expects 2 type arguments, got %d", len(params))
		}
		return ast.Record{Key: params[0], Value: params[1]}, nil
	default:
		return nil, errors.NewInvalidDocumentError("unknown type constructor %q", key)
	}
}

func nested(key string, val interface{}) (ast.Type, error) {
	t, err := ParseType(val)
	if err != nil {
		return nil, errors.Wrap(err, key)
	}
	return t, nil
}

func nestedList(key string, val interface{}) ([]ast.Type, error) {
	list, ok := val.([]interface{})
	if !ok {
		return nil, errors.NewInvalidDocumentError("%s expects a list, got %T", key, val)
	}
	out := make([]ast.Type, len(list))
	for i, item := range list {
		t, err := ParseType(item)
		if err != nil {
			return nil, errors.Wrapf(err, "%s[%d]", key, i)
		}
		out[i] = t
	}
	return out, nil
}
