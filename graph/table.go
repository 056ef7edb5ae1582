package graph

import (
	"errors"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
)

var errUnexpectedResult = errors.New("unexpected result type from transaction")

// Record is one result row, keyed by output-column name. Cell values are
// the normalized forms produced by the materializer: Go scalars, []any
// lists from collect(), and Path values from shortestPath().
type Record map[string]any

// Table is the materialized result of one query: the output columns in
// declaration order and the rows. A query that matched nothing yields a
// Table with zero rows, never a nil Rows slice.
type Table struct {
	Columns []string
	Rows    []Record
}

// NewTable converts raw driver records into a Table. Column order is
// taken from the first record's keys. List-valued cells and path
// structures are preserved, not flattened; driver temporal types are
// normalized to time.Time.
func NewTable(records []*db.Record) Table {
	t := Table{Rows: make([]Record, 0, len(records))}
	if len(records) > 0 {
		t.Columns = append([]string(nil), records[0].Keys...)
	}
	for _, rec := range records {
		row := make(Record, len(rec.Keys))
		for i, key := range rec.Keys {
			row[key] = normalize(rec.Values[i])
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t.Rows)
}

// Empty reports whether the table holds zero rows.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// normalize converts driver-specific value types into the forms Record
// accessors understand. Unrecognized values pass through unchanged.
func normalize(v any) any {
	switch val := v.(type) {
	case dbtype.Path:
		return pathFromDB(val)
	case dbtype.Node:
		return nodeFromDB(val)
	case dbtype.Relationship:
		return relationshipFromDB(val)
	case dbtype.LocalDateTime:
		return val.Time()
	case dbtype.Date:
		return val.Time()
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalize(item)
		}
		return out
	default:
		return v
	}
}
