package idltype

import (
	"fmt"
	"strings"
)

var primitiveIDLNames = [numPrimitives]string{
	Boolean:            "boolean",
	Byte:               "byte",
	Octet:              "octet",
	Short:              "short",
	UnsignedShort:      "unsigned short",
	Long:               "long",
	UnsignedLong:       "unsigned long",
	LongLong:           "long long",
	UnsignedLongLong:   "unsigned long long",
	Float:              "float",
	UnrestrictedFloat:  "unrestricted float",
	Double:             "double",
	UnrestrictedDouble: "unrestricted double",
	DOMString:          "DOMString",
	ByteString:         "ByteString",
	USVString:          "USVString",
	Object:             "object",
	Symbol:             "symbol",
	Error:              "Error",

	ArrayBuffer:       "ArrayBuffer",
	DataView:          "DataView",
	Int8Array:         "Int8Array",
	Uint8Array:        "Uint8Array",
	Uint8ClampedArray: "Uint8ClampedArray",
	Int16Array:        "Int16Array",
	Uint16Array:       "Uint16Array",
	Int32Array:        "Int32Array",
	Uint32Array:       "Uint32Array",
	Float32Array:      "Float32Array",
	Float64Array:      "Float64Array",

	Any:  "any",
	Void: "void",
}

// String returns the IDL spelling of the primitive.
func (p Primitive) String() string {
	if p < 0 || p >= numPrimitives {
		return fmt.Sprintf("Primitive(%d)", int(p))
	}
	return primitiveIDLNames[p]
}

// String renders t in IDL syntax, e.g. "sequence<(short or long)>?".
func String(t Type) string {
	var sb strings.Builder
	writeIDL(&sb, t)
	return sb.String()
}

func writeIDL(sb *strings.Builder, t Type) {
	switch t := t.(type) {
	case Primitive:
		sb.WriteString(t.String())
	case Interface:
		sb.WriteString(t.Name)
	case Dictionary:
		sb.WriteString(t.Name)
	case Enum:
		sb.WriteString(t.Name)
	case Nullable:
		writeIDL(sb, t.Inner)
		sb.WriteByte('?')
	case FrozenArray:
		sb.WriteString("FrozenArray<")
		writeIDL(sb, t.Elem)
		sb.WriteByte('>')
	case Sequence:
		sb.WriteString("sequence<")
		writeIDL(sb, t.Elem)
		sb.WriteByte('>')
	case Promise:
		sb.WriteString("Promise<")
		writeIDL(sb, t.Result)
		sb.WriteByte('>')
	case Record:
		sb.WriteString("record<")
		writeIDL(sb, t.Key)
		sb.WriteString(", ")
		writeIDL(sb, t.Value)
		sb.WriteByte('>')
	case Union:
		sb.WriteByte('(')
		for i, member := range t.Members {
			if i > 0 {
				sb.WriteString(" or ")
			}
			writeIDL(sb, member)
		}
		sb.WriteByte(')')
	default:
		fmt.Fprintf(sb, "%T", t)
	}
}

// Strings renders every type in ts.
func Strings(ts []Type) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = String(t)
	}
	return out
}
