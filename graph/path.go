package graph

import (
	"fmt"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
)

// Node is one node along a Path.
type Node struct {
	// ElementID is the database's element identifier for the node.
	ElementID string

	// Labels are the node's labels (e.g., "Attack").
	Labels []string

	// Props are the node's properties.
	Props map[string]any
}

// Name returns the node's name property, falling back to the element ID
// for nodes without one.
func (n Node) Name() string {
	if s, ok := n.Props["name"].(string); ok && s != "" {
		return s
	}
	return n.ElementID
}

// Relationship is one relationship along a Path.
type Relationship struct {
	ElementID      string
	StartElementID string
	EndElementID   string

	// Type is the relationship type (e.g., "ATTACK_REL").
	Type string

	// Props are the relationship's properties; for generic ATT&CK
	// relations this includes the rel_type discriminator.
	Props map[string]any
}

// RelType returns the rel_type discriminator property, falling back to
// the relationship type when absent.
func (r Relationship) RelType() string {
	if s, ok := r.Props["rel_type"].(string); ok && s != "" {
		return s
	}
	return r.Type
}

// Path is a relational path between two nodes, preserved from the
// database without flattening. Nodes has one more element than
// Relationships; Relationships[i] connects Nodes[i] and Nodes[i+1],
// though not necessarily in that direction (shortest-path search is
// undirected).
type Path struct {
	Nodes         []Node
	Relationships []Relationship
}

// Hops returns the number of relationships along the path.
func (p Path) Hops() int {
	return len(p.Relationships)
}

// String renders the path as "A -[uses]- B -[mitigates]- C" for display.
func (p Path) String() string {
	if len(p.Nodes) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(p.Nodes[0].Name())
	for i, rel := range p.Relationships {
		if i+1 >= len(p.Nodes) {
			break
		}
		fmt.Fprintf(&b, " -[%s]- %s", rel.RelType(), p.Nodes[i+1].Name())
	}
	return b.String()
}

func nodeFromDB(n dbtype.Node) Node {
	return Node{
		ElementID: n.ElementId,
		Labels:    append([]string(nil), n.Labels...),
		Props:     n.Props,
	}
}

func relationshipFromDB(r dbtype.Relationship) Relationship {
	return Relationship{
		ElementID:      r.ElementId,
		StartElementID: r.StartElementId,
		EndElementID:   r.EndElementId,
		Type:           r.Type,
		Props:          r.Props,
	}
}

func pathFromDB(p dbtype.Path) Path {
	out := Path{
		Nodes:         make([]Node, 0, len(p.Nodes)),
		Relationships: make([]Relationship, 0, len(p.Relationships)),
	}
	for _, n := range p.Nodes {
		out.Nodes = append(out.Nodes, nodeFromDB(n))
	}
	for _, r := range p.Relationships {
		out.Relationships = append(out.Relationships, relationshipFromDB(r))
	}
	return out
}
