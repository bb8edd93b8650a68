package symbols

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/webidl/errors"
	"github.com/teranos/webidl/idl/ast"
)

func newTestRecord(t *testing.T) *Record {
	t.Helper()
	r := NewRecord()
	require.NoError(t, r.AddInterface("Node"))
	require.NoError(t, r.AddDictionary("EventInit"))
	require.NoError(t, r.AddEnum("ScrollBehavior"))
	require.NoError(t, r.AddTypedef("NodeOrString", ast.Union{Members: []ast.Type{
		ast.Identifier{Name: "Node"},
		ast.String{Kind: ast.DOMString},
	}}))
	return r
}

func TestRecord_Membership(t *testing.T) {
	r := newTestRecord(t)

	assert.True(t, r.IsInterface("Node"))
	assert.False(t, r.IsInterface("EventInit"))
	assert.True(t, r.IsDictionary("EventInit"))
	assert.True(t, r.IsEnum("ScrollBehavior"))
	assert.False(t, r.IsEnum("Missing"))

	td, ok := r.LookupTypedef("NodeOrString")
	require.True(t, ok)
	assert.IsType(t, ast.Union{}, td)

	_, ok = r.LookupTypedef("Node")
	assert.False(t, ok)
}

func TestRecord_KindOf(t *testing.T) {
	r := newTestRecord(t)

	tests := []struct {
		name string
		want Kind
	}{
		{"NodeOrString", KindTypedef},
		{"Node", KindInterface},
		{"EventInit", KindDictionary},
		{"ScrollBehavior", KindEnum},
		{"Missing", KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.KindOf(tt.name))
		})
	}
}

func TestRecord_DuplicateDefinition(t *testing.T) {
	r := newTestRecord(t)

	err := r.AddDictionary("Node")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrDuplicateDefinition))
	assert.Contains(t, err.Error(), "interface")

	err = r.AddTypedef("ScrollBehavior", ast.Any)
	assert.True(t, errors.Is(err, errors.ErrDuplicateDefinition))

	assert.False(t, r.IsDictionary("Node"))
}

func TestRecord_InvalidDeclarations(t *testing.T) {
	r := NewRecord()

	assert.Error(t, r.AddInterface(""))
	assert.Error(t, r.AddTypedef("Empty", nil))
	assert.Equal(t, 0, r.Len())
}

func TestRecord_Names(t *testing.T) {
	r := newTestRecord(t)

	assert.Equal(t, []string{"EventInit", "Node", "NodeOrString", "ScrollBehavior"}, r.Names())
	assert.Equal(t, 4, r.Len())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "typedef", KindTypedef.String())
	assert.Equal(t, "enum", KindEnum.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
