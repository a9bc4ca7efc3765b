package engine

import (
	"fmt"

	"minidb/internal/sql"
)

// executeDelete removes every row matching the predicate, or truncates the
// table when there is none. The predicate is evaluated over all rows before
// any removal, and remaining rows keep their relative order.
func (e *Engine) executeDelete(stmt *sql.DeleteStmt) (*Result, error) {
	t, err := e.cat.Get(stmt.TableName)
	if err != nil {
		return nil, err
	}

	matched, err := matchRows(stmt.TableName, t, stmt.Where)
	if err != nil {
		return nil, fmt.Errorf("DELETE: %w", err)
	}

	if len(matched) > 0 {
		drop := make(map[int]bool, len(matched))
		for _, i := range matched {
			drop[i] = true
		}
		kept := make([]sql.Row, 0, len(t.Rows)-len(matched))
		for i, row := range t.Rows {
			if !drop[i] {
				kept = append(kept, row)
			}
		}
		t.Rows = kept
	}

	return &Result{
		RowsAffected: len(matched),
		Status:       fmt.Sprintf("deleted %d row(s) from %q", len(matched), stmt.TableName),
	}, nil
}
