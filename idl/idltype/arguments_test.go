package idltype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandArguments_NoOptionals(t *testing.T) {
	got := ExpandArguments([]Argument{
		{Type: Union{Members: []Type{Short, Long}}},
	})

	assert.Equal(t, [][]Type{{Short}, {Long}}, got)
}

func TestExpandArguments_TrailingOptionals(t *testing.T) {
	got := ExpandArguments([]Argument{
		{Type: Union{Members: []Type{Short, Long}}},
		{Type: Union{Members: []Type{Sequence{Elem: Union{Members: []Type{Byte, Octet}}}, LongLong}}, Optional: true},
		{Type: DOMString, Optional: true},
	})

	want := [][]Type{
		{Short},
		{Long},
		{Short, Sequence{Elem: Byte}},
		{Short, Sequence{Elem: Octet}},
		{Short, LongLong},
		{Long, Sequence{Elem: Byte}},
		{Long, Sequence{Elem: Octet}},
		{Long, LongLong},
		{Short, Sequence{Elem: Byte}, DOMString},
		{Short, Sequence{Elem: Octet}, DOMString},
		{Short, LongLong, DOMString},
		{Long, Sequence{Elem: Byte}, DOMString},
		{Long, Sequence{Elem: Octet}, DOMString},
		{Long, LongLong, DOMString},
	}

	require.Len(t, got, 14)
	assert.Equal(t, want, got)
	for _, signature := range got {
		for _, arg := range signature {
			assert.False(t, ContainsUnion(arg))
		}
	}
}

func TestExpandArguments_Empty(t *testing.T) {
	got := ExpandArguments(nil)

	require.Len(t, got, 1)
	assert.Empty(t, got[0])
}

func TestExpandArguments_FirstArgumentOptional(t *testing.T) {
	got := ExpandArguments([]Argument{
		{Type: Union{Members: []Type{Boolean, Dictionary{Name: "Options"}}}, Optional: true},
	})

	assert.Equal(t, [][]Type{
		{},
		{Boolean},
		{Dictionary{Name: "Options"}},
	}, got)
}

func TestExpandArguments_AllOptional(t *testing.T) {
	got := ExpandArguments([]Argument{
		{Type: Long, Optional: true},
		{Type: DOMString, Optional: true},
	})

	assert.Equal(t, [][]Type{
		{},
		{Long},
		{Long, DOMString},
	}, got)
}

func TestExpandArguments_NonTrailingOptional(t *testing.T) {
	// An optional argument followed by a required one still truncates just
	// before the optional argument.
	got := ExpandArguments([]Argument{
		{Type: Long},
		{Type: Boolean, Optional: true},
		{Type: DOMString},
	})

	assert.Equal(t, [][]Type{
		{Long},
		{Long, Boolean, DOMString},
	}, got)
}

func TestExpandArguments_SignaturesDoNotAlias(t *testing.T) {
	got := ExpandArguments([]Argument{
		{Type: Long},
		{Type: Union{Members: []Type{Short, Byte}}, Optional: true},
	})
	require.Len(t, got, 3)

	got[1][0] = Octet

	assert.Equal(t, []Type{Long}, got[0])
	assert.Equal(t, []Type{Long, Byte}, got[2])
}
