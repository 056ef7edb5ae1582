// Package catalog defines the named analytical queries over the ATT&CK
// knowledge graph, grouped by analytical intent:
//
//   - graph statistics: entity/relation counts, tactic coverage,
//     active/inactive technique split (stats.go)
//   - actor analysis: what a group uses, who uses a technique, shortest
//     relational path between groups (actors.go)
//   - mitigation & detection analysis: mitigations, mitigation gaps,
//     detection coverage (defense.go)
//   - taxonomy analysis: tactic mapping, sub-technique rollups,
//     platform/domain breakdowns, recency (taxonomy.go)
//   - software pivoting (software.go)
//
// Each entry is a pure function of its parameters: it runs exactly one
// parameterized Cypher query through the Runner, materializes the result
// into one explicit row type, and carries no state between calls. Group,
// technique, and software filters are case-insensitive substring matches
// normalized inside the query text; a filter matching several entities
// fans out over all of them, and a filter matching nothing yields an
// empty result, not an error.
package catalog
