package catalog

import "context"

// softwarePivotCypher pivots from a software name to the groups that
// use it and the techniques it enables. Both joins are optional so a
// software item unknown to any group, or with no technique links, still
// yields a row.
const softwarePivotCypher = `
WITH toLower($software) AS q
MATCH (s:Attack) WHERE s.stix_type IN ['tool','malware'] AND toLower(s.name) CONTAINS q
OPTIONAL MATCH (g:Attack {stix_type:'intrusion-set'})-[:ATTACK_REL {rel_type:'uses'}]->(s)
OPTIONAL MATCH (s)-[:ATTACK_REL {rel_type:'uses'}]->(tech:Attack {stix_type:'attack-pattern'})
RETURN s.name AS software, collect(DISTINCT g.name) AS groups, collect(DISTINCT tech.name)[0..25] AS techniques`

// SoftwarePivot is one matched software item with the distinct groups
// using it and a bounded sample of the techniques it enables.
type SoftwarePivot struct {
	Software   string
	Groups     []string
	Techniques []string
}

// SoftwarePivot lists, for tools and malware whose name contains the
// filter, the distinct groups using each and up to 25 distinct
// techniques each enables.
func (c *Catalog) SoftwarePivot(ctx context.Context, software string) ([]SoftwarePivot, error) {
	table, err := c.run(ctx, "catalog.SoftwarePivot", softwarePivotCypher, map[string]any{
		"software": orDefault(software, c.defaults.Software),
	})
	if err != nil {
		return nil, err
	}
	rows := make([]SoftwarePivot, 0, table.Len())
	for _, rec := range table.Rows {
		rows = append(rows, SoftwarePivot{
			Software:   rec.AsString("software"),
			Groups:     rec.AsStringList("groups"),
			Techniques: rec.AsStringList("techniques"),
		})
	}
	return rows, nil
}
