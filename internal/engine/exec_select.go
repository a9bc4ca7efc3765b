package engine

import (
	"fmt"
	"sort"
	"strings"

	"minidb/internal/catalog"
	"minidb/internal/sql"
)

// executeSelect runs the query pipeline: scan the FROM table, fold in each
// JOIN in listed order, filter with WHERE, partition with GROUP BY, filter
// groups with HAVING, project (computing aggregates per group), then sort
// with ORDER BY. Every stage materializes its rows; nothing is kept between
// statements.
func (e *Engine) executeSelect(stmt *sql.SelectStmt) (*Result, error) {
	t, err := e.cat.Get(stmt.TableName)
	if err != nil {
		return nil, err
	}
	rs := tableRowSet(stmt.TableName, t)

	for _, join := range stmt.Joins {
		rt, err := e.cat.Get(join.Table)
		if err != nil {
			return nil, err
		}
		rs, err = joinRows(rs, tableRowSet(join.Table, rt), join.Kind, join.On)
		if err != nil {
			return nil, err
		}
	}

	if stmt.Where != nil {
		kept := rs.rows[:0:0]
		for _, row := range rs.rows {
			ok, err := evalPredicate(rowEnv{rs: rs, row: row}, stmt.Where)
			if err != nil {
				return nil, err
			}
			if ok {
				kept = append(kept, row)
			}
		}
		rs.rows = kept
	}

	var cols []string
	var rows []sql.Row
	if len(stmt.GroupBy) > 0 || hasAggregate(stmt.Projection) {
		cols, rows, err = projectGrouped(stmt, rs)
	} else {
		cols, rows, err = projectPlain(stmt.Projection, rs)
	}
	if err != nil {
		return nil, err
	}

	if stmt.Order != nil {
		if err := orderRows(cols, rows, stmt.Order); err != nil {
			return nil, err
		}
	}

	return &Result{Columns: cols, Rows: rows}, nil
}

func hasAggregate(projection []sql.Expr) bool {
	for _, expr := range projection {
		if _, ok := expr.(*sql.AggregateCall); ok {
			return true
		}
	}
	return false
}

// projectPlain projects each row of the set. Only '*' and column references
// are legal here; aggregates route through the grouped path.
func projectPlain(projection []sql.Expr, rs *rowSet) ([]string, []sql.Row, error) {
	multi := rs.multiTable()
	var names []string
	var indexes []int
	for _, expr := range projection {
		switch x := expr.(type) {
		case *sql.Star:
			for i, col := range rs.cols {
				if multi {
					names = append(names, col.qualified())
				} else {
					names = append(names, col.name)
				}
				indexes = append(indexes, i)
			}
		case *sql.ColumnRef:
			idx, err := rs.resolve(x)
			if err != nil {
				return nil, nil, err
			}
			names = append(names, x.Display())
			indexes = append(indexes, idx)
		default:
			return nil, nil, fmt.Errorf("%w: unsupported projection %T", ErrInvalidProjection, expr)
		}
	}

	rows := make([]sql.Row, 0, len(rs.rows))
	for _, row := range rs.rows {
		proj := make(sql.Row, len(indexes))
		for i, idx := range indexes {
			proj[i] = row[idx]
		}
		rows = append(rows, proj)
	}
	return names, rows, nil
}

// projectGrouped partitions the row set and computes one output row per
// surviving group. Without GROUP BY the whole set forms one implicit group
// (so an aggregate over an empty table still yields a row). Any plain column
// in the projection must be one of the grouping keys.
func projectGrouped(stmt *sql.SelectStmt, rs *rowSet) ([]string, []sql.Row, error) {
	keyIdx := make([]int, len(stmt.GroupBy))
	for i := range stmt.GroupBy {
		idx, err := rs.resolve(&stmt.GroupBy[i])
		if err != nil {
			return nil, nil, err
		}
		keyIdx[i] = idx
	}

	var names []string
	for _, expr := range stmt.Projection {
		switch x := expr.(type) {
		case *sql.ColumnRef:
			names = append(names, x.Display())
		case *sql.AggregateCall:
			names = append(names, x.Display())
		default:
			return nil, nil, fmt.Errorf("%w: '*' cannot be combined with grouping", ErrInvalidProjection)
		}
	}

	var groups []*group
	if len(keyIdx) == 0 {
		groups = []*group{{rows: rs.rows}}
	} else {
		groups = groupRows(rs.rows, keyIdx)
	}

	rows := make([]sql.Row, 0, len(groups))
	for _, g := range groups {
		env := groupEnv{rs: rs, g: g, keyIdx: keyIdx}

		if stmt.Having != nil {
			ok, err := evalPredicate(env, stmt.Having)
			if err != nil {
				return nil, nil, err
			}
			if !ok {
				continue
			}
		}

		out := make(sql.Row, 0, len(stmt.Projection))
		for _, expr := range stmt.Projection {
			v, err := evalOperand(env, expr)
			if err != nil {
				return nil, nil, err
			}
			out = append(out, v)
		}
		rows = append(rows, out)
	}
	return names, rows, nil
}

// orderRows stable-sorts projected rows by the named output column,
// ascending unless DESC. NULL sorts first ascending, last descending.
func orderRows(cols []string, rows []sql.Row, order *sql.OrderBy) error {
	idx := -1
	for i, name := range cols {
		match := name == order.Column.Display() ||
			(order.Column.Table == "" && strings.HasSuffix(name, "."+order.Column.Name))
		if !match {
			continue
		}
		if idx != -1 {
			return fmt.Errorf("%w: %q in ORDER BY", ErrAmbiguousColumn, order.Column.Display())
		}
		idx = i
	}
	if idx == -1 {
		return fmt.Errorf("ORDER BY: %w: %q", catalog.ErrUnknownColumn, order.Column.Display())
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if order.Desc {
			return orderLess(rows[j][idx], rows[i][idx])
		}
		return orderLess(rows[i][idx], rows[j][idx])
	})
	return nil
}
