package idltype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeName(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{Boolean, "bool"},
		{UnsignedLong, "u32"},
		{UnrestrictedFloat, "unrestricted_f32"},
		{USVString, "usv_str"},
		{Uint8ClampedArray, "u8_clamped_array"},
		{Interface{Name: "XMLHttpRequest"}, "xml_http_request"},
		{Dictionary{Name: "EventInit"}, "event_init"},
		{Enum{Name: "ScrollBehavior"}, "scroll_behavior"},
		{Nullable{Inner: DOMString}, "opt_dom_str"},
		{Nullable{Inner: Sequence{Elem: Long}}, "opt_i32_sequence"},
		{FrozenArray{Elem: Interface{Name: "Node"}}, "node_frozen_array"},
		{Promise{Result: Void}, "void_promise"},
		{Record{Key: DOMString, Value: Interface{Name: "Node"}}, "record_from_dom_str_to_node"},
		{Union{Members: []Type{Short, Long, Any}}, "union_of_i16_and_i32_and_any"},
		{
			Record{Key: ByteString, Value: Union{Members: []Type{Object, Sequence{Elem: Octet}}}},
			"record_from_byte_str_to_union_of_object_and_u8_sequence",
		},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, TypeName(tt.typ))
		})
	}
}

func TestTypeName_EveryPrimitiveHasAName(t *testing.T) {
	seen := map[string]Primitive{}
	for _, p := range Primitives() {
		name := TypeName(p)
		require.NotEmpty(t, name, p.String())
		if other, dup := seen[name]; dup {
			t.Errorf("%s and %s both render as %q", p, other, name)
		}
		seen[name] = p
	}
	assert.Len(t, seen, int(numPrimitives))
}

func TestTypeName_DistinctTypesRenderDistinctly(t *testing.T) {
	node := Interface{Name: "Node"}
	types := []Type{
		Boolean, Byte, Octet, Short, UnsignedShort, Long, UnsignedLong,
		LongLong, UnsignedLongLong, Float, UnrestrictedFloat, Double,
		UnrestrictedDouble, DOMString, ByteString, USVString, Object, Any,
		node,
		Dictionary{Name: "EventInit"},
		Enum{Name: "ScrollBehavior"},
		Nullable{Inner: node},
		Nullable{Inner: Nullable{Inner: node}},
		Sequence{Elem: node},
		FrozenArray{Elem: node},
		Promise{Result: node},
		Sequence{Elem: Sequence{Elem: node}},
		Nullable{Inner: Sequence{Elem: Long}},
		Record{Key: DOMString, Value: Long},
		Record{Key: Long, Value: DOMString},
		Record{Key: DOMString, Value: Record{Key: DOMString, Value: Long}},
		Union{Members: []Type{Short, Long}},
		Union{Members: []Type{Long, Short}},
		Union{Members: []Type{Union{Members: []Type{Short, Long}}, Any}},
		Union{Members: []Type{Short, Union{Members: []Type{Long, Any}}}},
		Sequence{Elem: Union{Members: []Type{Short, Long}}},
		Union{Members: []Type{Sequence{Elem: Short}, Long}},
		Int8Array, Uint8Array, Float64Array, ArrayBuffer, DataView,
	}

	seen := map[string]Type{}
	for _, typ := range types {
		name := TypeName(typ)
		if other, dup := seen[name]; dup {
			t.Errorf("%s and %s both render as %q", String(typ), String(other), name)
		}
		seen[name] = typ
	}
	assert.GreaterOrEqual(t, len(seen), 20)
}

func TestTypeName_UnknownVariantPanics(t *testing.T) {
	assert.Panics(t, func() { TypeName(nil) })
	assert.Panics(t, func() { TypeName(Primitive(-1)) })
}
