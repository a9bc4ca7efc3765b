package engine

import (
	"fmt"

	"minidb/internal/sql"
)

// executeAlterTable applies one schema change. Each action keeps every row
// the same width as the schema: ADD pads rows with NULL, DROP removes the
// value at the dropped position, MODIFY converts stored values to the new
// type in place.
func (e *Engine) executeAlterTable(stmt *sql.AlterTableStmt) (*Result, error) {
	t, err := e.cat.Get(stmt.TableName)
	if err != nil {
		return nil, err
	}

	switch stmt.Action {
	case sql.AlterAddColumn:
		if err := t.AddColumn(stmt.Column); err != nil {
			return nil, err
		}
		return &Result{Status: fmt.Sprintf("added column %q to %q", stmt.Column.Name, stmt.TableName)}, nil

	case sql.AlterDropColumn:
		if err := t.DropColumn(stmt.Column.Name); err != nil {
			return nil, err
		}
		return &Result{Status: fmt.Sprintf("dropped column %q from %q", stmt.Column.Name, stmt.TableName)}, nil

	case sql.AlterModifyColumn:
		if err := t.ModifyColumn(stmt.Column.Name, stmt.Column.Type); err != nil {
			return nil, err
		}
		return &Result{Status: fmt.Sprintf("modified column %q to %s in %q",
			stmt.Column.Name, stmt.Column.Type, stmt.TableName)}, nil

	default:
		return nil, fmt.Errorf("unsupported ALTER action %d", stmt.Action)
	}
}
