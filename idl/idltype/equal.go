package idltype

// Equal reports whether a and b are structurally identical, including union
// member order.
func Equal(a, b Type) bool {
	switch a := a.(type) {
	case Primitive, Interface, Dictionary, Enum:
		return a == b
	case Nullable:
		b, ok := b.(Nullable)
		return ok && Equal(a.Inner, b.Inner)
	case FrozenArray:
		b, ok := b.(FrozenArray)
		return ok && Equal(a.Elem, b.Elem)
	case Sequence:
		b, ok := b.(Sequence)
		return ok && Equal(a.Elem, b.Elem)
	case Promise:
		b, ok := b.(Promise)
		return ok && Equal(a.Result, b.Result)
	case Record:
		b, ok := b.(Record)
		return ok && Equal(a.Key, b.Key) && Equal(a.Value, b.Value)
	case Union:
		b, ok := b.(Union)
		if !ok || len(a.Members) != len(b.Members) {
			return false
		}
		for i := range a.Members {
			if !Equal(a.Members[i], b.Members[i]) {
				return false
			}
		}
		return true
	default:
		return a == nil && b == nil
	}
}
