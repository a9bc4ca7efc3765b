package sql

// Statement is the common interface for all SQL statements.
type Statement interface {
	stmtNode()
}

// CreateTableStmt represents a parsed CREATE TABLE statement.
type CreateTableStmt struct {
	TableName string
	Columns   []Column
}

// DropTableStmt represents a parsed DROP TABLE statement.
type DropTableStmt struct {
	TableName string
}

// AlterAction selects which ALTER TABLE form was parsed.
type AlterAction int

const (
	AlterAddColumn AlterAction = iota
	AlterDropColumn
	AlterModifyColumn
)

// AlterTableStmt represents a parsed ALTER TABLE statement. Column carries
// the target column name, plus the declared type for ADD and MODIFY.
type AlterTableStmt struct {
	TableName string
	Action    AlterAction
	Column    Column
}

// InsertStmt represents a parsed INSERT INTO statement. Values holds one
// slice of raw literal texts per VALUES tuple; the engine coerces them to
// the destination column types at execution time.
type InsertStmt struct {
	TableName string
	Columns   []string
	Values    [][]string
}

// Assignment is one "column = literal" pair in an UPDATE SET list.
type Assignment struct {
	Column string
	Value  string // raw literal text, coerced by the engine
}

// UpdateStmt represents a parsed UPDATE statement. Where is nil when the
// statement has no WHERE clause (all rows match).
type UpdateStmt struct {
	TableName   string
	Assignments []Assignment
	Where       Expr
}

// DeleteStmt represents a parsed DELETE FROM statement.
type DeleteStmt struct {
	TableName string
	Where     Expr
}

// JoinKind selects the join algorithm for one JOIN clause.
type JoinKind int

const (
	JoinInner JoinKind = iota
	JoinLeft
	JoinRight
	JoinFull
	JoinCross
)

func (k JoinKind) String() string {
	switch k {
	case JoinInner:
		return "INNER"
	case JoinLeft:
		return "LEFT"
	case JoinRight:
		return "RIGHT"
	case JoinFull:
		return "FULL"
	case JoinCross:
		return "CROSS"
	default:
		return "UNKNOWN"
	}
}

// JoinClause is one JOIN in a SELECT. On is nil exactly for CROSS joins.
type JoinClause struct {
	Kind  JoinKind
	Table string
	On    Expr
}

// OrderBy is the optional ORDER BY clause of a SELECT.
type OrderBy struct {
	Column ColumnRef
	Desc   bool
}

// SelectStmt represents a parsed SELECT statement. Projection entries are
// *Star, *ColumnRef or *AggregateCall nodes.
type SelectStmt struct {
	Projection []Expr
	TableName  string
	Joins      []JoinClause
	Where      Expr
	GroupBy    []ColumnRef
	Having     Expr
	Order      *OrderBy
}

func (*CreateTableStmt) stmtNode() {}
func (*DropTableStmt) stmtNode()   {}
func (*AlterTableStmt) stmtNode()  {}
func (*InsertStmt) stmtNode()      {}
func (*UpdateStmt) stmtNode()      {}
func (*DeleteStmt) stmtNode()      {}
func (*SelectStmt) stmtNode()      {}
