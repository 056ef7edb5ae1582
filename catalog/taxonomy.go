package catalog

import (
	"context"
	"time"
)

// Taxonomy and structural analysis: tactic membership, sub-technique
// rollups, platform and domain breakdowns, and recency. The platform and
// domain breakdowns enumerate a fixed vocabulary inside the query so
// that categories absent from the graph still resolve against it.

const (
	tacticMappingCypher = `
WITH toLower($tactic) AS tac
MATCH (t:Attack {stix_type:'x-mitre-tactic'})
WHERE toLower(t.shortname) = tac OR toLower(t.name) CONTAINS tac
MATCH (tech:Attack {stix_type:'attack-pattern'})-[:IN_TACTIC]->(t)
RETURN t.shortname AS tactic, collect(tech.name)[0..25] AS sample_techniques, count(tech) AS total`

	subtechniqueRollupCypher = `
MATCH (sub:Attack {stix_type:'attack-pattern'})-[:ATTACK_REL {rel_type:'subtechnique-of'}]->(parent:Attack {stix_type:'attack-pattern'})
RETURN parent.name AS technique, collect(sub.name) AS subtechniques
ORDER BY size(subtechniques) DESC
LIMIT 20`

	platformBreakdownCypher = `
UNWIND ['windows','linux','macos','azure','aws','gcp','saas','office 365','network'] AS platform
MATCH (tech:Attack {stix_type:'attack-pattern'})
WHERE platform IN [p IN coalesce(tech.platforms,[]) | toLower(p)]
RETURN platform, count(tech) AS technique_count
ORDER BY technique_count DESC`

	domainBreakdownCypher = `
UNWIND ['enterprise-attack','mobile-attack','ics-attack'] AS dom
MATCH (n:Attack)
WHERE dom IN [d IN coalesce(n.domains,[]) | toLower(d)]
RETURN dom AS domain, count(n) AS nodes
ORDER BY nodes DESC`

	recentlyModifiedCypher = `
MATCH (t:Attack {stix_type:'attack-pattern'})
WHERE t.modified >= datetime() - duration({days:$days})
RETURN t.name AS technique, t.modified AS modified
ORDER BY t.modified DESC
LIMIT 25`
)

// TacticMapping is one matched tactic with a bounded sample of its
// techniques and the full technique total.
type TacticMapping struct {
	Tactic           string
	SampleTechniques []string
	Total            int64
}

// TacticMapping resolves a tactic by exact shortname or name substring,
// both case-insensitive, and returns up to 25 sample technique names
// alongside the unbounded total per matched tactic.
func (c *Catalog) TacticMapping(ctx context.Context, tactic string) ([]TacticMapping, error) {
	table, err := c.run(ctx, "catalog.TacticMapping", tacticMappingCypher, map[string]any{
		"tactic": orDefault(tactic, c.defaults.Tactic),
	})
	if err != nil {
		return nil, err
	}
	rows := make([]TacticMapping, 0, table.Len())
	for _, rec := range table.Rows {
		rows = append(rows, TacticMapping{
			Tactic:           rec.AsString("tactic"),
			SampleTechniques: rec.AsStringList("sample_techniques"),
			Total:            rec.AsInt64("total"),
		})
	}
	return rows, nil
}

// SubtechniqueRollup is one parent technique with its sub-techniques.
type SubtechniqueRollup struct {
	Technique     string
	Subtechniques []string
}

// SubtechniqueRollup groups sub-techniques under their parent technique,
// ordered by sub-technique count descending and capped at 20 parents.
func (c *Catalog) SubtechniqueRollup(ctx context.Context) ([]SubtechniqueRollup, error) {
	table, err := c.run(ctx, "catalog.SubtechniqueRollup", subtechniqueRollupCypher, nil)
	if err != nil {
		return nil, err
	}
	rows := make([]SubtechniqueRollup, 0, table.Len())
	for _, rec := range table.Rows {
		rows = append(rows, SubtechniqueRollup{
			Technique:     rec.AsString("technique"),
			Subtechniques: rec.AsStringList("subtechniques"),
		})
	}
	return rows, nil
}

// PlatformCount is one platform with the number of techniques listing
// it.
type PlatformCount struct {
	Platform   string
	Techniques int64
}

// PlatformBreakdown counts techniques per platform over a fixed
// nine-platform vocabulary, matching the technique's platform list
// case-insensitively, ordered by count descending. A technique listing
// several platforms counts once per platform.
func (c *Catalog) PlatformBreakdown(ctx context.Context) ([]PlatformCount, error) {
	table, err := c.run(ctx, "catalog.PlatformBreakdown", platformBreakdownCypher, nil)
	if err != nil {
		return nil, err
	}
	rows := make([]PlatformCount, 0, table.Len())
	for _, rec := range table.Rows {
		rows = append(rows, PlatformCount{
			Platform:   rec.AsString("platform"),
			Techniques: rec.AsInt64("technique_count"),
		})
	}
	return rows, nil
}

// DomainCount is one ATT&CK domain with its entity count.
type DomainCount struct {
	Domain string
	Nodes  int64
}

// DomainBreakdown counts entities per ATT&CK domain over the fixed
// enterprise/mobile/ICS vocabulary, ordered by count descending.
func (c *Catalog) DomainBreakdown(ctx context.Context) ([]DomainCount, error) {
	table, err := c.run(ctx, "catalog.DomainBreakdown", domainBreakdownCypher, nil)
	if err != nil {
		return nil, err
	}
	rows := make([]DomainCount, 0, table.Len())
	for _, rec := range table.Rows {
		rows = append(rows, DomainCount{
			Domain: rec.AsString("domain"),
			Nodes:  rec.AsInt64("nodes"),
		})
	}
	return rows, nil
}

// RecentTechnique is one technique with its last modification time.
type RecentTechnique struct {
	Technique string
	Modified  time.Time
}

// RecentlyModified lists techniques modified within the given number of
// days, most recent first, capped at 25. A non-positive day count uses
// the configured default window.
func (c *Catalog) RecentlyModified(ctx context.Context, days int) ([]RecentTechnique, error) {
	if days <= 0 {
		days = c.defaults.RecentDays
	}
	table, err := c.run(ctx, "catalog.RecentlyModified", recentlyModifiedCypher, map[string]any{
		"days": days,
	})
	if err != nil {
		return nil, err
	}
	rows := make([]RecentTechnique, 0, table.Len())
	for _, rec := range table.Rows {
		modified, _ := rec.AsTime("modified")
		rows = append(rows, RecentTechnique{
			Technique: rec.AsString("technique"),
			Modified:  modified,
		})
	}
	return rows, nil
}
