package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeName(t *testing.T) {
	named := Node{ElementID: "42", Props: map[string]any{"name": "APT29"}}
	assert.Equal(t, "APT29", named.Name())

	unnamed := Node{ElementID: "42", Props: map[string]any{}}
	assert.Equal(t, "42", unnamed.Name(), "falls back to element ID")
}

func TestRelationshipRelType(t *testing.T) {
	discriminated := Relationship{Type: "ATTACK_REL", Props: map[string]any{"rel_type": "mitigates"}}
	assert.Equal(t, "mitigates", discriminated.RelType())

	bare := Relationship{Type: "IN_TACTIC", Props: map[string]any{}}
	assert.Equal(t, "IN_TACTIC", bare.RelType(), "falls back to relationship type")
}

func TestPathString(t *testing.T) {
	assert.Equal(t, "", Path{}.String())

	single := Path{Nodes: []Node{{Props: map[string]any{"name": "APT29"}}}}
	assert.Equal(t, "APT29", single.String())
	assert.Equal(t, 0, single.Hops())
}
