package idltype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	node := Interface{Name: "Node"}
	tests := []struct {
		name string
		a, b Type
		want bool
	}{
		{"same primitive", Long, Long, true},
		{"different primitive", Long, Short, false},
		{"same interface", node, Interface{Name: "Node"}, true},
		{"interface vs dictionary", node, Dictionary{Name: "Node"}, false},
		{"nullable", Nullable{Inner: node}, Nullable{Inner: node}, true},
		{"nullable vs sequence", Nullable{Inner: node}, Sequence{Elem: node}, false},
		{"record", Record{Key: DOMString, Value: Long}, Record{Key: DOMString, Value: Long}, true},
		{"record swapped", Record{Key: DOMString, Value: Long}, Record{Key: Long, Value: DOMString}, false},
		{"union", Union{Members: []Type{Long, node}}, Union{Members: []Type{Long, node}}, true},
		{"union order", Union{Members: []Type{Long, node}}, Union{Members: []Type{node, Long}}, false},
		{"union arity", Union{Members: []Type{Long}}, Union{Members: []Type{Long, Long}}, false},
		{"union vs leaf", Union{Members: []Type{Long}}, Long, false},
		{"leaf vs union", Long, Union{Members: []Type{Long}}, false},
		{"nil", nil, nil, true},
		{"nil vs leaf", nil, Long, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
			assert.Equal(t, tt.want, Equal(tt.b, tt.a))
		})
	}
}
