// Package engine interprets parsed statements against a catalog. Execution
// is synchronous: a statement either fully applies or returns an error and
// applies nothing. The SELECT pipeline materializes row sets stage by stage
// (scan, join, filter, group, having, project, order); there is no cursor
// and no state kept between statements.
package engine

import (
	"fmt"

	"minidb/internal/catalog"
	"minidb/internal/sql"
)

// Result is the outcome of one executed statement. Queries carry Columns
// and Rows; DML carries RowsAffected; DDL carries only a Status line.
type Result struct {
	Columns      []string
	Rows         []sql.Row
	RowsAffected int
	Status       string
}

// Engine executes statements against a single catalog.
type Engine struct {
	cat *catalog.Catalog
}

// New creates an engine over the given catalog. The catalog is owned by the
// caller; the engine only ever touches it inside Execute.
func New(cat *catalog.Catalog) *Engine {
	return &Engine{cat: cat}
}

// Execute runs a parsed statement and returns its result.
func (e *Engine) Execute(stmt sql.Statement) (*Result, error) {
	switch s := stmt.(type) {
	case *sql.CreateTableStmt:
		return e.executeCreateTable(s)
	case *sql.DropTableStmt:
		return e.executeDropTable(s)
	case *sql.AlterTableStmt:
		return e.executeAlterTable(s)
	case *sql.InsertStmt:
		return e.executeInsert(s)
	case *sql.UpdateStmt:
		return e.executeUpdate(s)
	case *sql.DeleteStmt:
		return e.executeDelete(s)
	case *sql.SelectStmt:
		return e.executeSelect(s)
	default:
		return nil, fmt.Errorf("unsupported statement type %T", stmt)
	}
}
