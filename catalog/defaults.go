package catalog

// Defaults holds the default filter parameters applied when a catalog
// entry is invoked without an explicit filter. It is constructed once at
// startup and passed into the catalog as an immutable value; catalog
// entries never mutate it.
type Defaults struct {
	// Group is the default adversary group filter (substring match).
	Group string `yaml:"group"`

	// Technique is the default technique filter (substring match).
	Technique string `yaml:"technique"`

	// Tactic is the default tactic filter (shortname or name match).
	Tactic string `yaml:"tactic"`

	// GroupA and GroupB are the endpoints of the default shortest-path
	// query between two groups.
	GroupA string `yaml:"group_a"`
	GroupB string `yaml:"group_b"`

	// Software is the default software filter (substring match).
	Software string `yaml:"software"`

	// RecentDays is the trailing window, in days, for the recently
	// modified techniques query.
	RecentDays int `yaml:"recent_days"`

	// CoverageLimit is the row limit for the detection coverage ranking.
	CoverageLimit int `yaml:"coverage_limit"`
}

// DefaultFilters returns the stock default filters used by the demo.
func DefaultFilters() Defaults {
	return Defaults{
		Group:         "APT29",
		Technique:     "Credential Dumping",
		Tactic:        "defense-evasion",
		GroupA:        "APT29",
		GroupB:        "FIN7",
		Software:      "Mimikatz",
		RecentDays:    180,
		CoverageLimit: 25,
	}
}
