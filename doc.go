// Package attackkg provides a read-only analytical access layer over a
// MITRE ATT&CK knowledge graph stored in Neo4j.
//
// The graph models ATT&CK objects (adversary groups, techniques, tactics,
// software, mitigations, and detection data sources) as :Attack nodes and
// connects them with typed :ATTACK_REL relationships plus a structural
// :IN_TACTIC relationship for tactic membership. This layer never writes
// to the graph; ingestion is an external concern.
//
// # Packages
//
//   - attackkg: configuration and the Open facade wiring the subpackages
//   - kgerr: the error taxonomy shared by all packages
//   - graph: connection management, query execution, result materialization
//   - catalog: the named analytical queries, grouped by analytical intent
//   - render: terminal table rendering for the demo binary
//
// # Getting Started
//
//	cfg := attackkg.DefaultConfig()
//	cfg.ApplyEnv()
//
//	kg, err := attackkg.Open(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer attackkg.CloseWithLog(ctx, kg, nil, "knowledge graph")
//
//	rows, err := kg.Catalog().GroupTechniques(ctx, "APT29")
//
// Every catalog entry is a pure function of its parameters: one query, one
// scoped session, one typed result. Empty results are valid outcomes, not
// errors; connection and query failures surface through the kgerr.Error
// taxonomy with the underlying driver error always reachable via
// errors.Unwrap.
package attackkg
