package idltype

// ExpandArguments turns a parameter list into every concrete argument type
// list a caller can produce. No result contains a union, and every optional
// argument contributes the shorter call that stops just before it.
//
// Results are ordered shortest first: all truncated signatures in the order
// they were discovered, followed by the full-length ones. Within a length the
// leftmost argument varies slowest and each argument follows its Flatten order.
//
// An empty parameter list yields a single empty signature.
func ExpandArguments(args []Argument) [][]Type {
	if len(args) == 0 {
		return [][]Type{{}}
	}

	var truncated [][]Type
	if args[0].Optional {
		truncated = append(truncated, []Type{})
	}

	var complete [][]Type
	for _, alt := range Flatten(args[0].Type) {
		complete = append(complete, []Type{alt})
	}

	for _, arg := range args[1:] {
		alternatives := Flatten(arg.Type)
		next := make([][]Type, 0, len(complete)*len(alternatives))
		for _, prefix := range complete {
			if arg.Optional {
				truncated = append(truncated, prefix)
			}
			for _, alt := range alternatives {
				next = append(next, extend(prefix, alt))
			}
		}
		complete = next
	}

	return append(truncated, complete...)
}

// extend returns prefix followed by t in a fresh backing array.
func extend(prefix []Type, t Type) []Type {
	out := make([]Type, len(prefix), len(prefix)+1)
	copy(out, prefix)
	return append(out, t)
}
