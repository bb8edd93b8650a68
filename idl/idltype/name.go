package idltype

import (
	"strings"

	"github.com/teranos/webidl/errors"
	"github.com/teranos/webidl/idl/util"
)

var primitiveTypeNames = [numPrimitives]string{
	Boolean:            "bool",
	Byte:               "i8",
	Octet:              "u8",
	Short:              "i16",
	UnsignedShort:      "u16",
	Long:               "i32",
	UnsignedLong:       "u32",
	LongLong:           "i64",
	UnsignedLongLong:   "u64",
	Float:              "f32",
	UnrestrictedFloat:  "unrestricted_f32",
	Double:             "f64",
	UnrestrictedDouble: "unrestricted_f64",
	DOMString:          "dom_str",
	ByteString:         "byte_str",
	USVString:          "usv_str",
	Object:             "object",
	Symbol:             "symbol",
	Error:              "error",

	ArrayBuffer:       "array_buffer",
	DataView:          "data_view",
	Int8Array:         "i8_array",
	Uint8Array:        "u8_array",
	Uint8ClampedArray: "u8_clamped_array",
	Int16Array:        "i16_array",
	Uint16Array:       "u16_array",
	Int32Array:        "i32_array",
	Uint32Array:       "u32_array",
	Float32Array:      "f32_array",
	Float64Array:      "f64_array",

	Any:  "any",
	Void: "void",
}

// TypeName returns the snake case descriptive name of t, used to build
// identifiers for generated overloads.
//
//	Nullable{Sequence{Long}}              -> "opt_i32_sequence"
//	Record{DOMString, Interface{"Node"}}  -> "record_from_dom_str_to_node"
//	Union{Short, Long}                    -> "union_of_i16_and_i32"
func TypeName(t Type) string {
	var sb strings.Builder
	AppendTypeName(&sb, t)
	return sb.String()
}

// AppendTypeName writes the descriptive name of t to sb.
func AppendTypeName(sb *strings.Builder, t Type) {
	switch t := t.(type) {
	case Primitive:
		if t < 0 || t >= numPrimitives {
			panic(errors.AssertionFailedf("idltype: unknown primitive %d", int(t)))
		}
		sb.WriteString(primitiveTypeNames[t])

	case Interface:
		sb.WriteString(util.ToSnakeCase(t.Name))
	case Dictionary:
		sb.WriteString(util.ToSnakeCase(t.Name))
	case Enum:
		sb.WriteString(util.ToSnakeCase(t.Name))

	case Nullable:
		sb.WriteString("opt_")
		AppendTypeName(sb, t.Inner)
	case FrozenArray:
		AppendTypeName(sb, t.Elem)
		sb.WriteString("_frozen_array")
	case Sequence:
		AppendTypeName(sb, t.Elem)
		sb.WriteString("_sequence")
	case Promise:
		AppendTypeName(sb, t.Result)
		sb.WriteString("_promise")
	case Record:
		sb.WriteString("record_from_")
		AppendTypeName(sb, t.Key)
		sb.WriteString("_to_")
		AppendTypeName(sb, t.Value)
	case Union:
		sb.WriteString("union_of_")
		for i, member := range t.Members {
			if i > 0 {
				sb.WriteString("_and_")
			}
			AppendTypeName(sb, member)
		}

	default:
		panic(errors.AssertionFailedf("idltype: unknown type variant %T", t))
	}
}
