// Package ast defines the IDL type-expression nodes handed over by the parser.
//
// Every grammar production that can appear in a type position has a node:
// single and union types, the nullable marker, generic wrappers, integer and
// floating point markers, string kinds, and identifiers. Return and const
// types reuse the same nodes (`void` is a Keyword).
package ast

// Type is implemented by every type-expression node.
type Type interface {
	typeNode()
}

// IntegerWidth selects short, long or long long.
type IntegerWidth int

const (
	Short IntegerWidth = iota
	Long
	LongLong
)

// Integer is `[unsigned] short|long|long long`.
type Integer struct {
	Width    IntegerWidth
	Unsigned bool
}

func (Integer) typeNode() {}

// FloatingPoint is `[unrestricted] float|double`.
type FloatingPoint struct {
	Double       bool
	Unrestricted bool
}

func (FloatingPoint) typeNode() {}

// StringKind selects one of the three IDL string types.
type StringKind int

const (
	ByteString StringKind = iota
	DOMString
	USVString
)

// String is `ByteString`, `DOMString` or `USVString`.
type String struct {
	Kind StringKind
}

func (String) typeNode() {}

// Keyword is any remaining built-in type spelled as a single keyword.
type Keyword int

const (
	Boolean Keyword = iota
	Byte
	Octet
	Object
	Symbol
	Error
	Any
	Void
	ArrayBuffer
	DataView
	Int8Array
	Int16Array
	Int32Array
	Uint8Array
	Uint16Array
	Uint32Array
	Uint8ClampedArray
	Float32Array
	Float64Array
)

var keywordNames = [...]string{
	Boolean:           "boolean",
	Byte:              "byte",
	Octet:             "octet",
	Object:            "object",
	Symbol:            "symbol",
	Error:             "Error",
	Any:               "any",
	Void:              "void",
	ArrayBuffer:       "ArrayBuffer",
	DataView:          "DataView",
	Int8Array:         "Int8Array",
	Int16Array:        "Int16Array",
	Int32Array:        "Int32Array",
	Uint8Array:        "Uint8Array",
	Uint16Array:       "Uint16Array",
	Uint32Array:       "Uint32Array",
	Uint8ClampedArray: "Uint8ClampedArray",
	Float32Array:      "Float32Array",
	Float64Array:      "Float64Array",
}

// Keywords lists every Keyword in declaration order.
func Keywords() []Keyword {
	out := make([]Keyword, len(keywordNames))
	for i := range keywordNames {
		out[i] = Keyword(i)
	}
	return out
}

// String returns the IDL spelling of the keyword.
func (k Keyword) String() string {
	if k < 0 || int(k) >= len(keywordNames) {
		return "keyword(?)"
	}
	return keywordNames[k]
}

func (Keyword) typeNode() {}

// MayBeNull wraps a type that may carry a trailing `?`.
// The wrapper is present whether or not the marker was written.
type MayBeNull struct {
	Type  Type
	QMark bool
}

func (MayBeNull) typeNode() {}

// Sequence is `sequence<T>`.
type Sequence struct {
	Elem Type
}

func (Sequence) typeNode() {}

// FrozenArray is `FrozenArray<T>`.
type FrozenArray struct {
	Elem Type
}

func (FrozenArray) typeNode() {}

// Promise is `Promise<T>`; T may be void.
type Promise struct {
	Result Type
}

func (Promise) typeNode() {}

// Record is `record<K, V>`.
type Record struct {
	Key   Type
	Value Type
}

func (Record) typeNode() {}

// Union is `(A or B or ...)`. Members keep source order.
type Union struct {
	Members []Type
}

func (Union) typeNode() {}

// Identifier is a reference to a typedef, interface, dictionary or enum.
type Identifier struct {
	Name string
}

func (Identifier) typeNode() {}

// Attributed is a type preceded by extended attributes, e.g. `[Clamp] octet`.
type Attributed struct {
	Attributes []string
	Type       Type
}

func (Attributed) typeNode() {}

// Argument is one formal parameter of an operation.
type Argument struct {
	Name     string
	Type     Type
	Optional bool
}

// Operation is a regular or static operation declared on an interface.
type Operation struct {
	Interface string
	Name      string
	Static    bool
	Return    Type
	Arguments []Argument
}
