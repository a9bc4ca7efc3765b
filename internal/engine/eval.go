package engine

import (
	"fmt"
	"strconv"
	"strings"

	"minidb/internal/sql"
)

// evalEnv supplies values for expression evaluation: a single row for
// WHERE/ON predicates, or a group of rows for HAVING and aggregate
// projection.
type evalEnv interface {
	lookup(ref *sql.ColumnRef) (sql.Value, error)
	aggregate(call *sql.AggregateCall) (sql.Value, error)
}

// rowEnv evaluates against one row of a row set.
type rowEnv struct {
	rs  *rowSet
	row sql.Row
}

func (e rowEnv) lookup(ref *sql.ColumnRef) (sql.Value, error) {
	idx, err := e.rs.resolve(ref)
	if err != nil {
		return sql.Value{}, err
	}
	return e.row[idx], nil
}

func (e rowEnv) aggregate(call *sql.AggregateCall) (sql.Value, error) {
	return sql.Value{}, fmt.Errorf("aggregate %s is only valid in a projection or HAVING", call.Display())
}

// evalPredicate evaluates a boolean expression. Only BinaryExpr nodes form
// predicates; AND/OR recurse, comparisons evaluate both operands.
func evalPredicate(env evalEnv, expr sql.Expr) (bool, error) {
	b, ok := expr.(*sql.BinaryExpr)
	if !ok {
		return false, fmt.Errorf("predicate must be a comparison, got %T", expr)
	}

	switch b.Op {
	case sql.OpAnd:
		left, err := evalPredicate(env, b.Left)
		if err != nil {
			return false, err
		}
		if !left {
			return false, nil
		}
		return evalPredicate(env, b.Right)
	case sql.OpOr:
		left, err := evalPredicate(env, b.Left)
		if err != nil {
			return false, err
		}
		if left {
			return true, nil
		}
		return evalPredicate(env, b.Right)
	default:
		left, err := evalOperand(env, b.Left)
		if err != nil {
			return false, err
		}
		right, err := evalOperand(env, b.Right)
		if err != nil {
			return false, err
		}
		return compare(b.Op, left, right), nil
	}
}

// evalOperand evaluates one side of a comparison.
func evalOperand(env evalEnv, expr sql.Expr) (sql.Value, error) {
	switch x := expr.(type) {
	case *sql.Literal:
		return x.Value, nil
	case *sql.ColumnRef:
		return env.lookup(x)
	case *sql.AggregateCall:
		return env.aggregate(x)
	default:
		return sql.Value{}, fmt.Errorf("unsupported operand %T", expr)
	}
}

// compare applies a comparison operator to two values. NULL never satisfies
// any comparison. Values of incompatible types are simply "not equal", which
// keeps filter evaluation total. An integer paired with digit-only text
// compares numerically: the read-side counterpart of coercion-on-write, so
// the quoting convention works against INT columns too.
func compare(op sql.BinOp, a, b sql.Value) bool {
	if a.IsNull() || b.IsNull() {
		return false
	}
	cmp, ok := compareValues(a, b)
	if !ok {
		return op == sql.OpNe
	}
	switch op {
	case sql.OpEq:
		return cmp == 0
	case sql.OpNe:
		return cmp != 0
	case sql.OpLt:
		return cmp < 0
	case sql.OpGt:
		return cmp > 0
	case sql.OpLe:
		return cmp <= 0
	case sql.OpGe:
		return cmp >= 0
	default:
		return false
	}
}

// compareValues orders two non-null values, reporting false when they are
// not comparable.
func compareValues(a, b sql.Value) (int, bool) {
	if a.Type == sql.TypeInt && b.Type == sql.TypeInt {
		return compareInt(a.I64, b.I64), true
	}
	if a.Type == sql.TypeText && b.Type == sql.TypeText {
		return strings.Compare(a.S, b.S), true
	}
	// Mixed: numeric compare when the text side reads as an integer.
	if a.Type == sql.TypeInt && b.Type == sql.TypeText {
		if i, err := strconv.ParseInt(b.S, 10, 64); err == nil {
			return compareInt(a.I64, i), true
		}
		return 0, false
	}
	if a.Type == sql.TypeText && b.Type == sql.TypeInt {
		if i, err := strconv.ParseInt(a.S, 10, 64); err == nil {
			return compareInt(i, b.I64), true
		}
		return 0, false
	}
	return 0, false
}

func compareInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// orderLess orders values for ORDER BY: NULL sorts before every non-null
// value, incomparable values keep their relative order (the sort is stable).
func orderLess(a, b sql.Value) bool {
	if a.IsNull() {
		return !b.IsNull()
	}
	if b.IsNull() {
		return false
	}
	cmp, ok := compareValues(a, b)
	return ok && cmp < 0
}
