package sql

// Expr is the common interface for expression AST nodes: column references,
// literals, binary predicates and aggregate calls. The parser emits them,
// the engine consumes them with exhaustive type switches.
type Expr interface {
	exprNode()
}

// Star is the '*' projection.
type Star struct{}

// ColumnRef names a column, optionally qualified as table.column. An empty
// Table means the reference must resolve unambiguously across all tables in
// scope.
type ColumnRef struct {
	Table string
	Name  string
}

// Display renders the reference the way the user wrote it.
func (c ColumnRef) Display() string {
	if c.Table != "" {
		return c.Table + "." + c.Name
	}
	return c.Name
}

// Literal is a constant value in an expression.
type Literal struct {
	Value Value
}

// BinOp is a binary operator in a predicate.
type BinOp int

const (
	OpEq BinOp = iota
	OpNe
	OpLt
	OpGt
	OpLe
	OpGe
	OpAnd
	OpOr
)

func (op BinOp) String() string {
	switch op {
	case OpEq:
		return "="
	case OpNe:
		return "!="
	case OpLt:
		return "<"
	case OpGt:
		return ">"
	case OpLe:
		return "<="
	case OpGe:
		return ">="
	case OpAnd:
		return "AND"
	case OpOr:
		return "OR"
	default:
		return "?"
	}
}

// BinaryExpr combines two operands with a comparison or AND/OR.
type BinaryExpr struct {
	Op    BinOp
	Left  Expr
	Right Expr
}

// AggFunc selects an aggregate function.
type AggFunc int

const (
	AggCount AggFunc = iota
	AggSum
	AggAvg
	AggMin
	AggMax
)

func (f AggFunc) String() string {
	switch f {
	case AggCount:
		return "COUNT"
	case AggSum:
		return "SUM"
	case AggAvg:
		return "AVG"
	case AggMin:
		return "MIN"
	case AggMax:
		return "MAX"
	default:
		return "?"
	}
}

// AggregateCall is func(column) or COUNT(*). A nil Arg means the '*'
// argument, which the parser accepts only for COUNT.
type AggregateCall struct {
	Func AggFunc
	Arg  *ColumnRef
}

// Display renders the call for result headers, e.g. "COUNT(*)" or "SUM(age)".
func (a AggregateCall) Display() string {
	if a.Arg == nil {
		return a.Func.String() + "(*)"
	}
	return a.Func.String() + "(" + a.Arg.Display() + ")"
}

func (*Star) exprNode()          {}
func (*ColumnRef) exprNode()     {}
func (*Literal) exprNode()       {}
func (*BinaryExpr) exprNode()    {}
func (*AggregateCall) exprNode() {}
