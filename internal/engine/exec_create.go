package engine

import (
	"fmt"

	"minidb/internal/sql"
)

func (e *Engine) executeCreateTable(stmt *sql.CreateTableStmt) (*Result, error) {
	if err := e.cat.Create(stmt.TableName, stmt.Columns); err != nil {
		return nil, err
	}
	return &Result{Status: fmt.Sprintf("created table %q", stmt.TableName)}, nil
}
