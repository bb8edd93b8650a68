// Package idltype is the canonical, resolved representation of IDL types.
//
// Type is a closed sum: Primitive for every built-in leaf, Interface,
// Dictionary and Enum for named leaves, and Nullable, FrozenArray, Sequence,
// Promise, Record and Union for the parametric constructs. Values are
// immutable once built; every operation in this package is a pure function
// implemented as a type switch over the variants.
package idltype

// Type is a canonical IDL type.
type Type interface {
	isType()
}

// Primitive is a built-in leaf type. Each constant is itself a Type.
type Primitive int

const (
	Boolean Primitive = iota
	Byte
	Octet
	Short
	UnsignedShort
	Long
	UnsignedLong
	LongLong
	UnsignedLongLong
	Float
	UnrestrictedFloat
	Double
	UnrestrictedDouble
	DOMString
	ByteString
	USVString
	Object
	Symbol
	Error

	ArrayBuffer
	DataView
	Int8Array
	Uint8Array
	Uint8ClampedArray
	Int16Array
	Uint16Array
	Int32Array
	Uint32Array
	Float32Array
	Float64Array

	Any
	Void

	numPrimitives
)

func (Primitive) isType() {}

// Primitives lists every Primitive in declaration order.
func Primitives() []Primitive {
	out := make([]Primitive, 0, numPrimitives)
	for p := Boolean; p < numPrimitives; p++ {
		out = append(out, p)
	}
	return out
}

// IsBufferView reports whether p is ArrayBuffer, DataView or a typed array.
func (p Primitive) IsBufferView() bool {
	return p >= ArrayBuffer && p <= Float64Array
}

// IsString reports whether p is one of the three string types.
func (p Primitive) IsString() bool {
	return p == DOMString || p == ByteString || p == USVString
}

// Interface references an interface by its source name.
type Interface struct {
	Name string
}

func (Interface) isType() {}

// Dictionary references a dictionary by its source name.
type Dictionary struct {
	Name string
}

func (Dictionary) isType() {}

// Enum references an enum by its source name.
type Enum struct {
	Name string
}

func (Enum) isType() {}

// Nullable is `T?`.
type Nullable struct {
	Inner Type
}

func (Nullable) isType() {}

// FrozenArray is `FrozenArray<T>`.
type FrozenArray struct {
	Elem Type
}

func (FrozenArray) isType() {}

// Sequence is `sequence<T>`.
type Sequence struct {
	Elem Type
}

func (Sequence) isType() {}

// Promise is `Promise<T>`.
type Promise struct {
	Result Type
}

func (Promise) isType() {}

// Record is `record<K, V>`.
type Record struct {
	Key   Type
	Value Type
}

func (Record) isType() {}

// Union is `(A or B or ...)`. Member order is significant for flattening.
type Union struct {
	Members []Type
}

func (Union) isType() {}

// Argument is one formal parameter prior to expansion.
type Argument struct {
	Type     Type
	Optional bool
}
