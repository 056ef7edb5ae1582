package catalog

import "context"

// Graph statistics: whole-graph counts and splits.

const (
	nodeCountCypher = `
MATCH (n:Attack)
RETURN count(n) AS nodes`

	relationshipCountCypher = `
MATCH ()-[r:ATTACK_REL]->()
RETURN count(r) AS relationships`

	objectTypesCypher = `
MATCH (n:Attack)
RETURN n.stix_type AS type, count(*) AS n
ORDER BY n DESC`

	relationshipTypesCypher = `
MATCH ()-[r:ATTACK_REL]->()
RETURN r.rel_type AS rel_type, count(*) AS n
ORDER BY n DESC`

	tacticTechniqueCountsCypher = `
MATCH (tac:Attack {stix_type:'x-mitre-tactic'})<-[:IN_TACTIC]-(tech:Attack {stix_type:'attack-pattern'})
RETURN tac.shortname AS tactic, count(tech) AS techniques
ORDER BY techniques DESC`

	activeInactiveCypher = `
MATCH (t:Attack {stix_type:'attack-pattern'})
RETURN
  sum(CASE WHEN coalesce(t.deprecated,false) OR coalesce(t.revoked,false) THEN 1 ELSE 0 END) AS inactive,
  sum(CASE WHEN NOT coalesce(t.deprecated,false) AND NOT coalesce(t.revoked,false) THEN 1 ELSE 0 END) AS active`
)

// GraphCounts holds the whole-graph entity and relation totals.
type GraphCounts struct {
	Nodes         int64
	Relationships int64
}

// Counts returns the total number of ATT&CK entities and generic
// relations in the graph. An empty graph yields zero counts, not an
// error.
func (c *Catalog) Counts(ctx context.Context) (GraphCounts, error) {
	var counts GraphCounts

	nodes, err := c.run(ctx, "catalog.Counts.nodes", nodeCountCypher, nil)
	if err != nil {
		return GraphCounts{}, err
	}
	if !nodes.Empty() {
		counts.Nodes = nodes.Rows[0].AsInt64("nodes")
	}

	rels, err := c.run(ctx, "catalog.Counts.relationships", relationshipCountCypher, nil)
	if err != nil {
		return GraphCounts{}, err
	}
	if !rels.Empty() {
		counts.Relationships = rels.Rows[0].AsInt64("relationships")
	}

	return counts, nil
}

// TypeCount is one entity type with its entity count.
type TypeCount struct {
	Type  string
	Count int64
}

// ObjectTypes returns per-stix_type entity counts, ordered descending by
// count. The per-type counts sum to the node total from Counts.
func (c *Catalog) ObjectTypes(ctx context.Context) ([]TypeCount, error) {
	table, err := c.run(ctx, "catalog.ObjectTypes", objectTypesCypher, nil)
	if err != nil {
		return nil, err
	}
	rows := make([]TypeCount, 0, table.Len())
	for _, rec := range table.Rows {
		rows = append(rows, TypeCount{
			Type:  rec.AsString("type"),
			Count: rec.AsInt64("n"),
		})
	}
	return rows, nil
}

// RelTypeCount is one relation type with its relation count.
type RelTypeCount struct {
	RelType string
	Count   int64
}

// RelationshipTypes returns per-rel_type relation counts, ordered
// descending by count.
func (c *Catalog) RelationshipTypes(ctx context.Context) ([]RelTypeCount, error) {
	table, err := c.run(ctx, "catalog.RelationshipTypes", relationshipTypesCypher, nil)
	if err != nil {
		return nil, err
	}
	rows := make([]RelTypeCount, 0, table.Len())
	for _, rec := range table.Rows {
		rows = append(rows, RelTypeCount{
			RelType: rec.AsString("rel_type"),
			Count:   rec.AsInt64("n"),
		})
	}
	return rows, nil
}

// TacticTechniqueCount is one tactic with the number of techniques that
// belong to it.
type TacticTechniqueCount struct {
	Tactic     string
	Techniques int64
}

// TacticTechniqueCounts returns, for each tactic, the number of
// techniques linked to it via the structural tactic-membership relation,
// ordered descending by technique count.
func (c *Catalog) TacticTechniqueCounts(ctx context.Context) ([]TacticTechniqueCount, error) {
	table, err := c.run(ctx, "catalog.TacticTechniqueCounts", tacticTechniqueCountsCypher, nil)
	if err != nil {
		return nil, err
	}
	rows := make([]TacticTechniqueCount, 0, table.Len())
	for _, rec := range table.Rows {
		rows = append(rows, TacticTechniqueCount{
			Tactic:     rec.AsString("tactic"),
			Techniques: rec.AsInt64("techniques"),
		})
	}
	return rows, nil
}

// ActivitySplit is the active/inactive technique split. A technique is
// inactive when deprecated or revoked; absent flags count as false.
type ActivitySplit struct {
	Active   int64
	Inactive int64
}

// ActiveInactive returns the active/inactive technique split in a single
// row.
func (c *Catalog) ActiveInactive(ctx context.Context) (ActivitySplit, error) {
	table, err := c.run(ctx, "catalog.ActiveInactive", activeInactiveCypher, nil)
	if err != nil {
		return ActivitySplit{}, err
	}
	if table.Empty() {
		return ActivitySplit{}, nil
	}
	return ActivitySplit{
		Active:   table.Rows[0].AsInt64("active"),
		Inactive: table.Rows[0].AsInt64("inactive"),
	}, nil
}
