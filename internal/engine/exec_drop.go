package engine

import (
	"fmt"

	"minidb/internal/sql"
)

func (e *Engine) executeDropTable(stmt *sql.DropTableStmt) (*Result, error) {
	if err := e.cat.Drop(stmt.TableName); err != nil {
		return nil, err
	}
	return &Result{Status: fmt.Sprintf("dropped table %q", stmt.TableName)}, nil
}
