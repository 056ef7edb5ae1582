package graph

import "time"

// The accessors below absorb the driver's decoding quirks: Neo4j returns
// int64 for every integer, []any for every list, and time.Time (after
// normalization) for temporal values. Missing columns and nulls yield
// zero values rather than panics, matching the open-world shape of the
// underlying data.

// AsString returns the cell as a string, or "" when absent or null.
func (r Record) AsString(key string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return ""
}

// AsInt64 returns the cell as an int64, or 0 when absent or null.
func (r Record) AsInt64(key string) int64 {
	switch v := r[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return 0
	}
}

// AsBool returns the cell as a bool, or false when absent or null.
func (r Record) AsBool(key string) bool {
	if v, ok := r[key].(bool); ok {
		return v
	}
	return false
}

// AsTime returns the cell as a time.Time. The second return value is
// false when the cell is absent, null, or not a temporal value.
func (r Record) AsTime(key string) (time.Time, bool) {
	if v, ok := r[key].(time.Time); ok {
		return v, true
	}
	return time.Time{}, false
}

// AsStringList returns a list-valued cell as a []string. Non-string
// elements and nulls inside the list are skipped. An absent cell yields
// an empty slice.
func (r Record) AsStringList(key string) []string {
	switch v := r[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return []string{}
	}
}

// AsPath returns the cell as a Path. The second return value is false
// when the cell is absent or not a path.
func (r Record) AsPath(key string) (Path, bool) {
	if v, ok := r[key].(Path); ok {
		return v, true
	}
	return Path{}, false
}
