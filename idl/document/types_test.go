package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/webidl/errors"
	"github.com/teranos/webidl/idl/ast"
)

func TestParseTypeString(t *testing.T) {
	tests := []struct {
		in   string
		want ast.Type
	}{
		{"boolean", ast.Boolean},
		{"short", ast.Integer{Width: ast.Short}},
		{"unsigned  long   long", ast.Integer{Width: ast.LongLong, Unsigned: true}},
		{"unrestricted double", ast.FloatingPoint{Double: true, Unrestricted: true}},
		{"float", ast.FloatingPoint{}},
		{"USVString", ast.String{Kind: ast.USVString}},
		{"Uint8ClampedArray", ast.Uint8ClampedArray},
		{"Error", ast.Error},
		{"void", ast.Void},
		{"Node", ast.Identifier{Name: "Node"}},
		{"Node?", ast.MayBeNull{Type: ast.Identifier{Name: "Node"}, QMark: true}},
		{" long ? ", ast.MayBeNull{Type: ast.Integer{Width: ast.Long}, QMark: true}},
		{"[Clamp] octet", ast.Attributed{Attributes: []string{"Clamp"}, Type: ast.Octet}},
		{"[Clamp, EnforceRange] long?", ast.Attributed{
			Attributes: []string{"Clamp", "EnforceRange"},
			Type:       ast.MayBeNull{Type: ast.Integer{Width: ast.Long}, QMark: true},
		}},
		{"WebGL2RenderingContext", ast.Identifier{Name: "WebGL2RenderingContext"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTypeString(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTypeString_Invalid(t *testing.T) {
	for _, in := range []string{"", "?", "unsigned lng", "[Clamp octet", "2d", "a.b"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseTypeString(in)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidDocumentError(err))
		})
	}
}

func TestParseType_Maps(t *testing.T) {
	long := ast.Integer{Width: ast.Long}

	tests := []struct {
		name string
		raw  interface{}
		want ast.Type
	}{
		{"sequence", map[string]interface{}{"sequence": "long"}, ast.Sequence{Elem: long}},
		{"frozen array", map[string]interface{}{"frozen_array": "DOMString"}, ast.FrozenArray{Elem: ast.String{Kind: ast.DOMString}}},
		{"promise", map[string]interface{}{"promise": "void"}, ast.Promise{Result: ast.Void}},
		{"nullable", map[string]interface{}{"nullable": map[string]interface{}{"sequence": "long"}},
			ast.MayBeNull{Type: ast.Sequence{Elem: long}, QMark: true}},
		{"union", map[string]interface{}{"union": []interface{}{"short", "long"}},
			ast.Union{Members: []ast.Type{ast.Integer{Width: ast.Short}, long}}},
		{"record", map[string]interface{}{"record": []interface{}{"DOMString", "Node"}},
			ast.Record{Key: ast.String{Kind: ast.DOMString}, Value: ast.Identifier{Name: "Node"}}},
		{"non-string keys", map[interface{}]interface{}{"sequence": "long"}, ast.Sequence{Elem: long}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseType(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseType_InvalidMaps(t *testing.T) {
	tests := []struct {
		name    string
		raw     interface{}
		message string
	}{
		{"missing", nil, "missing type"},
		{"number", 42, "string or a map"},
		{"two keys", map[string]interface{}{"sequence": "long", "promise": "long"}, "exactly one key"},
		{"unknown constructor", map[string]interface{}{"observable": "long"}, `unknown type constructor "observable"`},
		{"union not a list", map[string]interface{}{"union": "long"}, "union expects a list"},
		{"empty union", map[string]interface{}{"union": []interface{}{}}, "at least one member"},
		{"record arity", map[string]interface{}{"record": []interface{}{"DOMString"}}, "record expects 2 type arguments, got 1"},
		{"nested error", map[string]interface{}{"sequence": map[string]interface{}{"union": []interface{}{"long", 3}}}, "sequence: union[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseType(tt.raw)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidDocumentError(err))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
