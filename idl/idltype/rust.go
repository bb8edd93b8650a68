package idltype

import (
	"github.com/teranos/webidl/errors"
	"github.com/teranos/webidl/idl/util"
)

// Position is where a type is used in a generated binding.
type Position int

const (
	// ArgumentPosition borrows: strings, buffers and interfaces become references.
	ArgumentPosition Position = iota
	// ReturnPosition owns: strings and buffers are returned by value.
	ReturnPosition
)

func (p Position) String() string {
	if p == ReturnPosition {
		return "return"
	}
	return "argument"
}

// RustScalars maps scalar primitives to Rust types. The unrestricted float
// variants share the representation of their restricted counterparts.
var RustScalars = map[Primitive]string{
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
	UnrestrictedFloat:  "f32",
	Double:             "f64",
	UnrestrictedDouble: "f64",
	Object:             "::js_sys::Object",
	ArrayBuffer:        "::js_sys::ArrayBuffer",
	Any:                "::wasm_bindgen::JsValue",
}

// RustTypedArrays maps typed array views to their element type.
var RustTypedArrays = map[Primitive]string{
	Int8Array:         "i8",
	Uint8Array:        "u8",
	Uint8ClampedArray: "u8",
	Int16Array:        "i16",
	Uint16Array:       "u16",
	Int32Array:        "i32",
	Uint32Array:       "u32",
	Float32Array:      "f32",
	Float64Array:      "f64",
}

// RustType returns the Rust type used for t at pos. The boolean is false
// when t has no direct representation (sequence, frozen array, promise,
// record, union, symbol, error, DataView and void); callers decide whether
// that drops the declaration.
func RustType(t Type, pos Position) (string, bool) {
	switch t := t.(type) {
	case Primitive:
		if t.IsString() {
			if pos == ArgumentPosition {
				return "&str", true
			}
			return "String", true
		}
		if scalar, ok := RustScalars[t]; ok {
			return scalar, true
		}
		if elem, ok := RustTypedArrays[t]; ok {
			return rustArray(elem, pos), true
		}
		if t < 0 || t >= numPrimitives {
			panic(errors.AssertionFailedf("idltype: unknown primitive %d", int(t)))
		}
		return "", false

	case Interface:
		name := util.ToRustTypeName(t.Name)
		if pos == ArgumentPosition {
			return "&" + name, true
		}
		return name, true
	case Dictionary:
		return util.ToRustTypeName(t.Name), true
	case Enum:
		return util.ToRustTypeName(t.Name), true

	case Nullable:
		inner, ok := RustType(t.Inner, pos)
		if !ok {
			return "", false
		}
		return "Option<" + inner + ">", true

	case FrozenArray, Sequence, Promise, Record, Union:
		return "", false

	default:
		panic(errors.AssertionFailedf("idltype: unknown type variant %T", t))
	}
}

func rustArray(elem string, pos Position) string {
	if pos == ArgumentPosition {
		return "&[" + elem + "]"
	}
	return "Vec<" + elem + ">"
}
