package catalog

import (
	"context"

	"github.com/attackkg/attackkg/graph"
)

// Actor analysis: what a group uses, who uses a technique, and how two
// groups connect. Group and technique filters are case-insensitive
// substring matches on the name property; several entities matching one
// filter is intentional fan-out.

const (
	groupTechniquesCypher = `
WITH toLower($group) AS g
MATCH (grp:Attack {stix_type:'intrusion-set'})
WHERE toLower(grp.name) CONTAINS g
MATCH (grp)-[:ATTACK_REL {rel_type:'uses'}]->(tech:Attack {stix_type:'attack-pattern'})
OPTIONAL MATCH (tech)-[:IN_TACTIC]->(tac:Attack {stix_type:'x-mitre-tactic'})
RETURN tac.shortname AS tactic, tech.name AS technique
ORDER BY tactic, technique
LIMIT 150`

	groupSoftwareCypher = `
WITH toLower($group) AS g
MATCH (grp:Attack {stix_type:'intrusion-set'})
WHERE toLower(grp.name) CONTAINS g
MATCH (grp)-[:ATTACK_REL {rel_type:'uses'}]->(s:Attack)
WHERE s.stix_type IN ['tool','malware']
RETURN s.stix_type AS kind, s.name AS software
ORDER BY kind, software
LIMIT 100`

	techniquesViaSoftwareCypher = `
WITH toLower($group) AS g
MATCH (grp:Attack {stix_type:'intrusion-set'})
WHERE toLower(grp.name) CONTAINS g
MATCH (grp)-[:ATTACK_REL {rel_type:'uses'}]->(s:Attack)
WHERE s.stix_type IN ['tool','malware']
MATCH (s)-[:ATTACK_REL {rel_type:'uses'}]->(tech:Attack {stix_type:'attack-pattern'})
WITH s, collect(DISTINCT tech.name) AS techniques
RETURN s.name AS software, techniques
ORDER BY size(techniques) DESC
LIMIT 20`

	techniqueUsersCypher = `
WITH toLower($technique) AS t
MATCH (tech:Attack {stix_type:'attack-pattern'})
WHERE toLower(tech.name) CONTAINS t
MATCH (grp:Attack {stix_type:'intrusion-set'})-[:ATTACK_REL {rel_type:'uses'}]->(tech)
RETURN tech.name AS technique, collect(DISTINCT grp.name) AS groups
LIMIT 10`

	topGroupsCypher = `
MATCH (g:Attack {stix_type:'intrusion-set'})-[:ATTACK_REL {rel_type:'uses'}]->(t:Attack {stix_type:'attack-pattern'})
RETURN g.name AS group, count(DISTINCT t) AS techniques
ORDER BY techniques DESC LIMIT 20`

	groupConnectionCypher = `
MATCH (a:Attack {stix_type:'intrusion-set'}), (b:Attack {stix_type:'intrusion-set'})
WHERE toLower(a.name) CONTAINS toLower($first) AND toLower(b.name) CONTAINS toLower($second)
MATCH p = shortestPath((a)-[:ATTACK_REL*..6]-(b))
RETURN p`
)

// GroupTechnique is one technique used by a matched group, with the
// tactic it belongs to (empty when the technique has no tactic link).
type GroupTechnique struct {
	Tactic    string
	Technique string
}

// GroupTechniques lists the techniques used by groups whose name
// contains the filter, joined to their tactics where present, ordered by
// tactic then technique and capped at 150 rows. An empty filter uses the
// default group.
func (c *Catalog) GroupTechniques(ctx context.Context, group string) ([]GroupTechnique, error) {
	table, err := c.run(ctx, "catalog.GroupTechniques", groupTechniquesCypher, map[string]any{
		"group": orDefault(group, c.defaults.Group),
	})
	if err != nil {
		return nil, err
	}
	rows := make([]GroupTechnique, 0, table.Len())
	for _, rec := range table.Rows {
		rows = append(rows, GroupTechnique{
			Tactic:    rec.AsString("tactic"),
			Technique: rec.AsString("technique"),
		})
	}
	return rows, nil
}

// GroupSoftware is one software item used by a matched group; Kind is
// "tool" or "malware".
type GroupSoftware struct {
	Kind string
	Name string
}

// GroupSoftware lists the tools and malware used by groups whose name
// contains the filter, ordered by kind then name and capped at 100 rows.
func (c *Catalog) GroupSoftware(ctx context.Context, group string) ([]GroupSoftware, error) {
	table, err := c.run(ctx, "catalog.GroupSoftware", groupSoftwareCypher, map[string]any{
		"group": orDefault(group, c.defaults.Group),
	})
	if err != nil {
		return nil, err
	}
	rows := make([]GroupSoftware, 0, table.Len())
	for _, rec := range table.Rows {
		rows = append(rows, GroupSoftware{
			Kind: rec.AsString("kind"),
			Name: rec.AsString("software"),
		})
	}
	return rows, nil
}

// SoftwareTechniques is one software item with the distinct techniques
// reachable through it.
type SoftwareTechniques struct {
	Software   string
	Techniques []string
}

// TechniquesViaSoftware lists the techniques a matched group reaches
// transitively through its software (group uses software, software uses
// technique), deduplicated per software item, ordered by the number of
// distinct techniques descending and capped at 20 rows.
func (c *Catalog) TechniquesViaSoftware(ctx context.Context, group string) ([]SoftwareTechniques, error) {
	table, err := c.run(ctx, "catalog.TechniquesViaSoftware", techniquesViaSoftwareCypher, map[string]any{
		"group": orDefault(group, c.defaults.Group),
	})
	if err != nil {
		return nil, err
	}
	rows := make([]SoftwareTechniques, 0, table.Len())
	for _, rec := range table.Rows {
		rows = append(rows, SoftwareTechniques{
			Software:   rec.AsString("software"),
			Techniques: rec.AsStringList("techniques"),
		})
	}
	return rows, nil
}

// TechniqueUsers is one matched technique with the distinct groups that
// use it.
type TechniqueUsers struct {
	Technique string
	Groups    []string
}

// TechniqueUsers lists, for techniques whose name contains the filter,
// the deduplicated set of groups using each, capped at 10 technique
// matches.
func (c *Catalog) TechniqueUsers(ctx context.Context, technique string) ([]TechniqueUsers, error) {
	table, err := c.run(ctx, "catalog.TechniqueUsers", techniqueUsersCypher, map[string]any{
		"technique": orDefault(technique, c.defaults.Technique),
	})
	if err != nil {
		return nil, err
	}
	rows := make([]TechniqueUsers, 0, table.Len())
	for _, rec := range table.Rows {
		rows = append(rows, TechniqueUsers{
			Technique: rec.AsString("technique"),
			Groups:    rec.AsStringList("groups"),
		})
	}
	return rows, nil
}

// GroupTechniqueCount is one group with its distinct technique count.
type GroupTechniqueCount struct {
	Group      string
	Techniques int64
}

// TopGroups ranks groups by the number of distinct techniques they use,
// descending, capped at 20.
func (c *Catalog) TopGroups(ctx context.Context) ([]GroupTechniqueCount, error) {
	table, err := c.run(ctx, "catalog.TopGroups", topGroupsCypher, nil)
	if err != nil {
		return nil, err
	}
	rows := make([]GroupTechniqueCount, 0, table.Len())
	for _, rec := range table.Rows {
		rows = append(rows, GroupTechniqueCount{
			Group:      rec.AsString("group"),
			Techniques: rec.AsInt64("techniques"),
		})
	}
	return rows, nil
}

// GroupConnection finds the shortest relational path between two groups
// matched by separate substring filters. The search is undirected over
// the generic relation and bounded to 6 hops; no path within the bound
// yields an empty result, not an error. Empty filters use the default
// group pair.
func (c *Catalog) GroupConnection(ctx context.Context, first, second string) ([]graph.Path, error) {
	table, err := c.run(ctx, "catalog.GroupConnection", groupConnectionCypher, map[string]any{
		"first":  orDefault(first, c.defaults.GroupA),
		"second": orDefault(second, c.defaults.GroupB),
	})
	if err != nil {
		return nil, err
	}
	paths := make([]graph.Path, 0, table.Len())
	for _, rec := range table.Rows {
		if p, ok := rec.AsPath("p"); ok {
			paths = append(paths, p)
		}
	}
	return paths, nil
}
