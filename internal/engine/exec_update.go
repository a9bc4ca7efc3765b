package engine

import (
	"fmt"

	"minidb/internal/catalog"
	"minidb/internal/sql"
)

// executeUpdate applies the SET list to every row matching the predicate
// (every row when there is none). Assignments are resolved and coerced and
// the predicate is evaluated over all rows before any row is touched, so a
// failure never leaves the table half-updated.
func (e *Engine) executeUpdate(stmt *sql.UpdateStmt) (*Result, error) {
	t, err := e.cat.Get(stmt.TableName)
	if err != nil {
		return nil, err
	}

	type resolved struct {
		idx int
		val sql.Value
	}
	assigns := make([]resolved, len(stmt.Assignments))
	for i, a := range stmt.Assignments {
		idx, ok := t.ColumnIndex(a.Column)
		if !ok {
			return nil, fmt.Errorf("UPDATE: %w: %q in SET list", catalog.ErrUnknownColumn, a.Column)
		}
		assigns[i] = resolved{idx: idx, val: sql.Coerce(t.Schema[idx].Type, a.Value)}
	}

	matched, err := matchRows(stmt.TableName, t, stmt.Where)
	if err != nil {
		return nil, fmt.Errorf("UPDATE: %w", err)
	}

	for _, i := range matched {
		for _, a := range assigns {
			t.Rows[i][a.idx] = a.val
		}
	}

	return &Result{
		RowsAffected: len(matched),
		Status:       fmt.Sprintf("updated %d row(s) in %q", len(matched), stmt.TableName),
	}, nil
}

// matchRows evaluates the predicate over every row of the table and returns
// the indexes of the rows it selects. A nil predicate selects every row.
func matchRows(name string, t *catalog.Table, where sql.Expr) ([]int, error) {
	matched := make([]int, 0, len(t.Rows))
	if where == nil {
		for i := range t.Rows {
			matched = append(matched, i)
		}
		return matched, nil
	}

	rs := tableRowSet(name, t)
	for i, row := range t.Rows {
		ok, err := evalPredicate(rowEnv{rs: rs, row: row}, where)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, i)
		}
	}
	return matched, nil
}
