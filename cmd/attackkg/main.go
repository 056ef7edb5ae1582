// Command attackkg connects to an ATT&CK knowledge graph in Neo4j and
// runs the full analytical query catalog, printing each result as a
// labeled table.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/attackkg/attackkg"
	"github.com/attackkg/attackkg/catalog"
	"github.com/attackkg/attackkg/render"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	configPath string
	uri        string
	username   string
	password   string
	database   string
	verbose    bool

	group         string
	technique     string
	tactic        string
	groupA        string
	groupB        string
	software      string
	recentDays    int
	coverageLimit int
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "attackkg",
		Short: "Analytical queries over a MITRE ATT&CK knowledge graph",
		Long: `attackkg connects to a Neo4j instance holding an ATT&CK knowledge
graph and runs the full query catalog: graph statistics, actor
analysis, mitigation and detection coverage, taxonomy breakdowns, and
software pivoting. Each query prints as a labeled table section.

Connection settings come from defaults, then an optional YAML config
file, then NEO4J_* environment variables (a .env file is honored), then
flags, in that order.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "path to YAML config file")
	cmd.Flags().StringVar(&opts.uri, "uri", "", "Neo4j URI (overrides config and NEO4J_URI)")
	cmd.Flags().StringVar(&opts.username, "username", "", "Neo4j username")
	cmd.Flags().StringVar(&opts.password, "password", "", "Neo4j password")
	cmd.Flags().StringVar(&opts.database, "database", "", "Neo4j database name")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.Flags().StringVar(&opts.group, "group", "", "adversary group filter")
	cmd.Flags().StringVar(&opts.technique, "technique", "", "technique filter")
	cmd.Flags().StringVar(&opts.tactic, "tactic", "", "tactic filter")
	cmd.Flags().StringVar(&opts.groupA, "group-a", "", "first group for the shortest-path query")
	cmd.Flags().StringVar(&opts.groupB, "group-b", "", "second group for the shortest-path query")
	cmd.Flags().StringVar(&opts.software, "software", "", "software filter")
	cmd.Flags().IntVar(&opts.recentDays, "recent-days", 0, "recency window in days")
	cmd.Flags().IntVar(&opts.coverageLimit, "coverage-limit", 0, "row limit for the detection coverage ranking")

	return cmd
}

func run(cmd *cobra.Command, opts options) error {
	// A missing .env file is not an error; explicit environment wins
	// either way.
	_ = godotenv.Load()

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	kg, err := attackkg.Open(ctx, cfg, attackkg.WithLogger(logger))
	if err != nil {
		return err
	}
	defer attackkg.CloseWithLog(ctx, kg, logger, "knowledge graph")

	demo(ctx, cmd.OutOrStdout(), logger, kg.Catalog(), cfg.Defaults)
	return nil
}

// loadConfig layers defaults, the optional config file, environment
// variables, and flags.
func loadConfig(opts options) (attackkg.Config, error) {
	cfg := attackkg.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := attackkg.LoadConfig(opts.configPath)
		if err != nil {
			return attackkg.Config{}, err
		}
		cfg = loaded
	}
	cfg.ApplyEnv()

	if opts.uri != "" {
		cfg.URI = opts.uri
	}
	if opts.username != "" {
		cfg.Username = opts.username
	}
	if opts.password != "" {
		cfg.Password = opts.password
	}
	if opts.database != "" {
		cfg.Database = opts.database
	}
	if opts.group != "" {
		cfg.Defaults.Group = opts.group
	}
	if opts.technique != "" {
		cfg.Defaults.Technique = opts.technique
	}
	if opts.tactic != "" {
		cfg.Defaults.Tactic = opts.tactic
	}
	if opts.groupA != "" {
		cfg.Defaults.GroupA = opts.groupA
	}
	if opts.groupB != "" {
		cfg.Defaults.GroupB = opts.groupB
	}
	if opts.software != "" {
		cfg.Defaults.Software = opts.software
	}
	if opts.recentDays > 0 {
		cfg.Defaults.RecentDays = opts.recentDays
	}
	if opts.coverageLimit > 0 {
		cfg.Defaults.CoverageLimit = opts.coverageLimit
	}

	if err := cfg.Validate(); err != nil {
		return attackkg.Config{}, err
	}
	return cfg, nil
}

// demo runs every catalog entry with the configured defaults and prints
// each as a labeled section. A failed query logs a warning and prints
// "(no results)"; the remaining sections still run.
func demo(ctx context.Context, w io.Writer, logger *slog.Logger, cat *catalog.Catalog, d catalog.Defaults) {
	section := func(title string, headers []string, rows [][]string, err error) {
		if err != nil {
			logger.Warn("query failed", "section", title, "error", err)
			rows = nil
		}
		render.Section(w, title, headers, rows)
	}

	// Graph statistics.
	counts, err := cat.Counts(ctx)
	countRows := [][]string{{
		strconv.FormatInt(counts.Nodes, 10),
		strconv.FormatInt(counts.Relationships, 10),
	}}
	if err != nil {
		countRows = nil
	}
	section("Graph counts", []string{"nodes", "relationships"}, countRows, err)

	types, err := cat.ObjectTypes(ctx)
	section("Object types", []string{"type", "count"}, rowsOf(types, func(r catalog.TypeCount) []string {
		return []string{r.Type, strconv.FormatInt(r.Count, 10)}
	}), err)

	relTypes, err := cat.RelationshipTypes(ctx)
	section("Relationship types", []string{"rel_type", "count"}, rowsOf(relTypes, func(r catalog.RelTypeCount) []string {
		return []string{r.RelType, strconv.FormatInt(r.Count, 10)}
	}), err)

	tactics, err := cat.TacticTechniqueCounts(ctx)
	section("Techniques per tactic", []string{"tactic", "techniques"}, rowsOf(tactics, func(r catalog.TacticTechniqueCount) []string {
		return []string{r.Tactic, strconv.FormatInt(r.Techniques, 10)}
	}), err)

	split, err := cat.ActiveInactive(ctx)
	splitRows := [][]string{{
		strconv.FormatInt(split.Active, 10),
		strconv.FormatInt(split.Inactive, 10),
	}}
	if err != nil {
		splitRows = nil
	}
	section("Techniques active vs inactive", []string{"active", "inactive"}, splitRows, err)

	// Actor analysis.
	groupTechs, err := cat.GroupTechniques(ctx, d.Group)
	section(fmt.Sprintf("Techniques used by %q", d.Group), []string{"tactic", "technique"}, rowsOf(groupTechs, func(r catalog.GroupTechnique) []string {
		return []string{r.Tactic, r.Technique}
	}), err)

	software, err := cat.GroupSoftware(ctx, d.Group)
	section(fmt.Sprintf("Software used by %q", d.Group), []string{"kind", "software"}, rowsOf(software, func(r catalog.GroupSoftware) []string {
		return []string{r.Kind, r.Name}
	}), err)

	viaSoftware, err := cat.TechniquesViaSoftware(ctx, d.Group)
	section(fmt.Sprintf("Techniques %q reaches via software", d.Group), []string{"software", "techniques"}, rowsOf(viaSoftware, func(r catalog.SoftwareTechniques) []string {
		return []string{r.Software, render.Join(r.Techniques)}
	}), err)

	users, err := cat.TechniqueUsers(ctx, d.Technique)
	section(fmt.Sprintf("Groups that use %q", d.Technique), []string{"technique", "groups"}, rowsOf(users, func(r catalog.TechniqueUsers) []string {
		return []string{r.Technique, render.Join(r.Groups)}
	}), err)

	topGroups, err := cat.TopGroups(ctx)
	section("Top groups by technique count", []string{"group", "techniques"}, rowsOf(topGroups, func(r catalog.GroupTechniqueCount) []string {
		return []string{r.Group, strconv.FormatInt(r.Techniques, 10)}
	}), err)

	paths, err := cat.GroupConnection(ctx, d.GroupA, d.GroupB)
	pathRows := make([][]string, 0, len(paths))
	for _, p := range paths {
		pathRows = append(pathRows, []string{strconv.Itoa(p.Hops()), p.String()})
	}
	section(fmt.Sprintf("Shortest connection between %q and %q", d.GroupA, d.GroupB), []string{"hops", "path"}, pathRows, err)

	// Mitigation and detection analysis.
	mitigations, err := cat.GroupMitigations(ctx, d.Group)
	section(fmt.Sprintf("Mitigations for %q techniques", d.Group), []string{"technique", "mitigations"}, rowsOf(mitigations, func(r catalog.TechniqueMitigations) []string {
		return []string{r.Technique, render.Join(r.Mitigations)}
	}), err)

	gaps, err := cat.MitigationGaps(ctx, d.Group)
	section(fmt.Sprintf("Mitigation gaps for %q", d.Group), []string{"unmitigated"}, rowsOf(gaps, func(r catalog.MitigationGap) []string {
		return []string{r.Technique}
	}), err)

	coverage, err := cat.DetectionCoverageTop(ctx, d.CoverageLimit)
	section("Detection coverage (top techniques)", []string{"technique", "detectors"}, rowsOf(coverage, func(r catalog.DetectionCoverage) []string {
		return []string{r.Technique, strconv.FormatInt(r.Detectors, 10)}
	}), err)

	detections, err := cat.TechniqueDetections(ctx, d.Technique)
	section(fmt.Sprintf("Detections for %q", d.Technique), []string{"technique", "data_components", "data_sources"}, rowsOf(detections, func(r catalog.TechniqueDetections) []string {
		return []string{r.Technique, render.Join(r.DataComponents), render.Join(r.DataSources)}
	}), err)

	// Taxonomy and structure.
	mapping, err := cat.TacticMapping(ctx, d.Tactic)
	section(fmt.Sprintf("Tactic mapping for %q", d.Tactic), []string{"tactic", "sample_techniques", "total"}, rowsOf(mapping, func(r catalog.TacticMapping) []string {
		return []string{r.Tactic, render.Join(r.SampleTechniques), strconv.FormatInt(r.Total, 10)}
	}), err)

	rollups, err := cat.SubtechniqueRollup(ctx)
	section("Parent techniques and sub-techniques", []string{"technique", "subtechniques"}, rowsOf(rollups, func(r catalog.SubtechniqueRollup) []string {
		return []string{r.Technique, render.Join(r.Subtechniques)}
	}), err)

	platforms, err := cat.PlatformBreakdown(ctx)
	section("Techniques by platform", []string{"platform", "techniques"}, rowsOf(platforms, func(r catalog.PlatformCount) []string {
		return []string{r.Platform, strconv.FormatInt(r.Techniques, 10)}
	}), err)

	domains, err := cat.DomainBreakdown(ctx)
	section("Entities by domain", []string{"domain", "nodes"}, rowsOf(domains, func(r catalog.DomainCount) []string {
		return []string{r.Domain, strconv.FormatInt(r.Nodes, 10)}
	}), err)

	recent, err := cat.RecentlyModified(ctx, d.RecentDays)
	section(fmt.Sprintf("Techniques modified in the last %d days", d.RecentDays), []string{"technique", "modified"}, rowsOf(recent, func(r catalog.RecentTechnique) []string {
		return []string{r.Technique, r.Modified.Format("2006-01-02")}
	}), err)

	// Software pivot.
	pivots, err := cat.SoftwarePivot(ctx, d.Software)
	section(fmt.Sprintf("Software pivot for %q", d.Software), []string{"software", "groups", "techniques"}, rowsOf(pivots, func(r catalog.SoftwarePivot) []string {
		return []string{r.Software, render.Join(r.Groups), render.Join(r.Techniques)}
	}), err)
}

// rowsOf converts typed rows to string cells. The result is non-nil
// even for zero rows so the renderer can distinguish an empty result
// from a missing one.
func rowsOf[T any](items []T, cells func(T) []string) [][]string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, cells(item))
	}
	return rows
}
