package idltype

import "github.com/teranos/webidl/errors"

// Flatten expands t into the ordered list of union-free types it stands for.
//
// It follows the WebIDL "flattened union member types" rule and additionally
// distributes unions found inside generic positions:
//
//	Nullable{Union{A, B}}                 -> [Nullable{A}, Nullable{B}]
//	Record{Union{A, B}, Union{X, Y}}      -> [Record{A, X}, Record{A, Y}, Record{B, X}, Record{B, Y}]
//	Union{A, Union{B, Sequence{Union{C, D}}}} -> [A, B, Sequence{C}, Sequence{D}]
//
// The result is never empty for a well-formed type.
func Flatten(t Type) []Type {
	switch t := t.(type) {
	case Nullable:
		return rewrap(Flatten(t.Inner), func(inner Type) Type { return Nullable{Inner: inner} })
	case FrozenArray:
		return rewrap(Flatten(t.Elem), func(elem Type) Type { return FrozenArray{Elem: elem} })
	case Sequence:
		return rewrap(Flatten(t.Elem), func(elem Type) Type { return Sequence{Elem: elem} })
	case Promise:
		return rewrap(Flatten(t.Result), func(result Type) Type { return Promise{Result: result} })

	case Record:
		keys := Flatten(t.Key)
		values := Flatten(t.Value)
		out := make([]Type, 0, len(keys)*len(values))
		for _, key := range keys {
			for _, value := range values {
				out = append(out, Record{Key: key, Value: value})
			}
		}
		return out

	case Union:
		var out []Type
		for _, member := range t.Members {
			out = append(out, Flatten(member)...)
		}
		return out

	case Primitive, Interface, Dictionary, Enum:
		return []Type{t}

	default:
		panic(errors.AssertionFailedf("idltype: unknown type variant %T", t))
	}
}

func rewrap(alternatives []Type, wrap func(Type) Type) []Type {
	out := make([]Type, len(alternatives))
	for i, alt := range alternatives {
		out[i] = wrap(alt)
	}
	return out
}

// ContainsUnion reports whether a Union appears anywhere inside t.
func ContainsUnion(t Type) bool {
	switch t := t.(type) {
	case Union:
		return true
	case Nullable:
		return ContainsUnion(t.Inner)
	case FrozenArray:
		return ContainsUnion(t.Elem)
	case Sequence:
		return ContainsUnion(t.Elem)
	case Promise:
		return ContainsUnion(t.Result)
	case Record:
		return ContainsUnion(t.Key) || ContainsUnion(t.Value)
	default:
		return false
	}
}
