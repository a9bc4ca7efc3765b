package engine

import (
	"fmt"

	"minidb/internal/catalog"
	"minidb/internal/sql"
)

// executeInsert resolves the named columns to schema positions, builds one
// full-width row per VALUES tuple (NULL in columns not supplied, literals
// coerced to the destination column's declared type) and appends them in
// order.
func (e *Engine) executeInsert(stmt *sql.InsertStmt) (*Result, error) {
	t, err := e.cat.Get(stmt.TableName)
	if err != nil {
		return nil, err
	}

	positions := make([]int, len(stmt.Columns))
	seen := make(map[int]bool, len(stmt.Columns))
	for i, name := range stmt.Columns {
		pos, ok := t.ColumnIndex(name)
		if !ok {
			return nil, fmt.Errorf("INSERT: %w: %q", catalog.ErrUnknownColumn, name)
		}
		if seen[pos] {
			return nil, fmt.Errorf("INSERT: duplicate column %q in column list", name)
		}
		seen[pos] = true
		positions[i] = pos
	}

	// Build all rows before touching the table so a late failure leaves it
	// untouched.
	newRows := make([]sql.Row, 0, len(stmt.Values))
	for _, tuple := range stmt.Values {
		row := make(sql.Row, len(t.Schema))
		for i := range row {
			row[i] = sql.NullValue()
		}
		for i, raw := range tuple {
			pos := positions[i]
			row[pos] = sql.Coerce(t.Schema[pos].Type, raw)
		}
		newRows = append(newRows, row)
	}
	t.Rows = append(t.Rows, newRows...)

	return &Result{
		RowsAffected: len(newRows),
		Status:       fmt.Sprintf("inserted %d row(s) into %q", len(newRows), stmt.TableName),
	}, nil
}
