package catalog

import "context"

// Mitigation and detection analysis. Mitigations reach techniques via an
// incoming mitigates relation; detection coverage counts data components
// linked via detects.

const (
	groupMitigationsCypher = `
WITH toLower($group) AS g
MATCH (grp:Attack {stix_type:'intrusion-set'}) WHERE toLower(grp.name) CONTAINS g
MATCH (grp)-[:ATTACK_REL {rel_type:'uses'}]->(tech:Attack {stix_type:'attack-pattern'})
MATCH (co:Attack {stix_type:'course-of-action'})<-[:ATTACK_REL {rel_type:'mitigates'}]-(tech)
RETURN tech.name AS technique, collect(DISTINCT co.name) AS mitigations
ORDER BY technique LIMIT 50`

	mitigationGapsCypher = `
WITH toLower($group) AS g
MATCH (grp:Attack {stix_type:'intrusion-set'}) WHERE toLower(grp.name) CONTAINS g
MATCH (grp)-[:ATTACK_REL {rel_type:'uses'}]->(tech:Attack {stix_type:'attack-pattern'})
OPTIONAL MATCH (co:Attack {stix_type:'course-of-action'})<-[:ATTACK_REL {rel_type:'mitigates'}]-(tech)
WITH tech, count(co) AS c WHERE c = 0
RETURN tech.name AS unmitigated ORDER BY unmitigated LIMIT 50`

	detectionCoverageCypher = `
MATCH (tech:Attack {stix_type:'attack-pattern'})
OPTIONAL MATCH (dc:Attack {stix_type:'x-mitre-data-component'})-[:ATTACK_REL {rel_type:'detects'}]->(tech)
RETURN tech.name AS technique, count(dc) AS detectors
ORDER BY detectors DESC
LIMIT $limit`

	techniqueDetectionsCypher = `
WITH toLower($technique) AS t
MATCH (tech:Attack {stix_type:'attack-pattern'}) WHERE toLower(tech.name) CONTAINS t
OPTIONAL MATCH (dc:Attack {stix_type:'x-mitre-data-component'})-[:ATTACK_REL {rel_type:'detects'}]->(tech)
OPTIONAL MATCH (ds:Attack {stix_type:'x-mitre-data-source'})-[:ATTACK_REL {rel_type:'detects'}]->(tech)
RETURN tech.name AS technique, collect(DISTINCT dc.name) AS data_components, collect(DISTINCT ds.name) AS data_sources`
)

// TechniqueMitigations is one technique used by a matched group together
// with its distinct mitigations.
type TechniqueMitigations struct {
	Technique   string
	Mitigations []string
}

// GroupMitigations lists, for a matched group's techniques, the distinct
// mitigations covering each, ordered by technique name and capped at 50
// rows. Techniques without any mitigation do not appear here; see
// MitigationGaps.
func (c *Catalog) GroupMitigations(ctx context.Context, group string) ([]TechniqueMitigations, error) {
	table, err := c.run(ctx, "catalog.GroupMitigations", groupMitigationsCypher, map[string]any{
		"group": orDefault(group, c.defaults.Group),
	})
	if err != nil {
		return nil, err
	}
	rows := make([]TechniqueMitigations, 0, table.Len())
	for _, rec := range table.Rows {
		rows = append(rows, TechniqueMitigations{
			Technique:   rec.AsString("technique"),
			Mitigations: rec.AsStringList("mitigations"),
		})
	}
	return rows, nil
}

// MitigationGap is one technique a matched group uses that has no
// mitigation at all.
type MitigationGap struct {
	Technique string
}

// MitigationGaps lists the techniques a matched group uses whose
// mitigation count is exactly zero, via optional-join semantics so the
// absence of a mitigating entity keeps the technique row. Together with
// GroupMitigations this partitions the group's techniques.
func (c *Catalog) MitigationGaps(ctx context.Context, group string) ([]MitigationGap, error) {
	table, err := c.run(ctx, "catalog.MitigationGaps", mitigationGapsCypher, map[string]any{
		"group": orDefault(group, c.defaults.Group),
	})
	if err != nil {
		return nil, err
	}
	rows := make([]MitigationGap, 0, table.Len())
	for _, rec := range table.Rows {
		rows = append(rows, MitigationGap{Technique: rec.AsString("unmitigated")})
	}
	return rows, nil
}

// DetectionCoverage is one technique with the number of distinct data
// components that detect it.
type DetectionCoverage struct {
	Technique string
	Detectors int64
}

// DetectionCoverageTop ranks techniques by the number of data components
// linked via detects, descending, capped at the caller-supplied limit.
// A non-positive limit uses the configured default.
func (c *Catalog) DetectionCoverageTop(ctx context.Context, limit int) ([]DetectionCoverage, error) {
	if limit <= 0 {
		limit = c.defaults.CoverageLimit
	}
	table, err := c.run(ctx, "catalog.DetectionCoverageTop", detectionCoverageCypher, map[string]any{
		"limit": limit,
	})
	if err != nil {
		return nil, err
	}
	rows := make([]DetectionCoverage, 0, table.Len())
	for _, rec := range table.Rows {
		rows = append(rows, DetectionCoverage{
			Technique: rec.AsString("technique"),
			Detectors: rec.AsInt64("detectors"),
		})
	}
	return rows, nil
}

// TechniqueDetections is one matched technique with the distinct data
// components and data sources that detect it. Both sets may be empty; a
// technique with zero detectors still yields a row.
type TechniqueDetections struct {
	Technique      string
	DataComponents []string
	DataSources    []string
}

// TechniqueDetections lists, for techniques whose name contains the
// filter, the distinct data components and data sources linked via
// detects.
func (c *Catalog) TechniqueDetections(ctx context.Context, technique string) ([]TechniqueDetections, error) {
	table, err := c.run(ctx, "catalog.TechniqueDetections", techniqueDetectionsCypher, map[string]any{
		"technique": orDefault(technique, c.defaults.Technique),
	})
	if err != nil {
		return nil, err
	}
	rows := make([]TechniqueDetections, 0, table.Len())
	for _, rec := range table.Rows {
		rows = append(rows, TechniqueDetections{
			Technique:      rec.AsString("technique"),
			DataComponents: rec.AsStringList("data_components"),
			DataSources:    rec.AsStringList("data_sources"),
		})
	}
	return rows, nil
}
