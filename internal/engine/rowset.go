package engine

import (
	"fmt"

	"minidb/internal/catalog"
	"minidb/internal/sql"
)

// colKey identifies one column of a row set by its source table and name.
// Every row flowing through the SELECT pipeline stays tagged with where its
// columns came from so that qualified references resolve across joins.
type colKey struct {
	table string
	name  string
}

func (k colKey) qualified() string { return k.table + "." + k.name }

// rowSet is the materialized intermediate form of the SELECT pipeline: a
// flat column layout plus the rows positioned against it.
type rowSet struct {
	cols []colKey
	rows []sql.Row
}

// tableRowSet builds a row set over a table's current rows. Rows are copied
// so later pipeline stages never alias catalog storage.
func tableRowSet(name string, t *catalog.Table) *rowSet {
	cols := make([]colKey, len(t.Schema))
	for i, c := range t.Schema {
		cols[i] = colKey{table: name, name: c.Name}
	}
	rows := make([]sql.Row, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = r.Clone()
	}
	return &rowSet{cols: cols, rows: rows}
}

// resolve maps a column reference to its position in the row set. A
// qualified reference must name a joined table's column; an unqualified one
// must match exactly one column across all tables in scope.
func (rs *rowSet) resolve(ref *sql.ColumnRef) (int, error) {
	found := -1
	for i, col := range rs.cols {
		if col.name != ref.Name {
			continue
		}
		if ref.Table != "" && col.table != ref.Table {
			continue
		}
		if found != -1 {
			return 0, fmt.Errorf("%w: %q", ErrAmbiguousColumn, ref.Display())
		}
		found = i
	}
	if found == -1 {
		return 0, fmt.Errorf("%w: %q", catalog.ErrUnknownColumn, ref.Display())
	}
	return found, nil
}

// multiTable reports whether more than one table contributes columns.
func (rs *rowSet) multiTable() bool {
	for _, col := range rs.cols[1:] {
		if col.table != rs.cols[0].table {
			return true
		}
	}
	return false
}
