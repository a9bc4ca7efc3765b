package engine

import (
	"fmt"
	"strconv"
	"strings"

	"minidb/internal/sql"
)

// group is one partition of the filtered row set: the rows sharing a
// grouping-key tuple, or the whole set for the implicit group of an
// aggregate-only query.
type group struct {
	rows []sql.Row
}

// groupRows partitions rows by the tuple of values at keyIdx. Groups keep
// first-appearance order; NULL groups with NULL.
func groupRows(rows []sql.Row, keyIdx []int) []*group {
	var groups []*group
	byKey := make(map[string]*group)
	for _, row := range rows {
		key := groupKey(row, keyIdx)
		g, ok := byKey[key]
		if !ok {
			g = &group{}
			byKey[key] = g
			groups = append(groups, g)
		}
		g.rows = append(g.rows, row)
	}
	return groups
}

// groupKey encodes the grouping tuple. Each value is tagged with its type
// and length-prefixed so distinct tuples can never collide.
func groupKey(row sql.Row, keyIdx []int) string {
	var b strings.Builder
	for _, idx := range keyIdx {
		v := row[idx]
		switch v.Type {
		case sql.TypeInt:
			s := strconv.FormatInt(v.I64, 10)
			b.WriteString("i")
			b.WriteString(strconv.Itoa(len(s)))
			b.WriteString(":")
			b.WriteString(s)
		case sql.TypeText:
			b.WriteString("t")
			b.WriteString(strconv.Itoa(len(v.S)))
			b.WriteString(":")
			b.WriteString(v.S)
		default:
			b.WriteString("n0:")
		}
	}
	return b.String()
}

// groupEnv evaluates expressions in the context of one group: column
// references resolve to group-key values, aggregate calls fold over the
// group's rows.
type groupEnv struct {
	rs     *rowSet
	g      *group
	keyIdx []int
}

func (e groupEnv) lookup(ref *sql.ColumnRef) (sql.Value, error) {
	idx, err := e.rs.resolve(ref)
	if err != nil {
		return sql.Value{}, err
	}
	for _, k := range e.keyIdx {
		if k == idx {
			// All rows of the group share the key values; the first row
			// stands in for the group.
			return e.g.rows[0][idx], nil
		}
	}
	return sql.Value{}, fmt.Errorf("%w: column %q is not in GROUP BY", ErrInvalidProjection, ref.Display())
}

// aggregate computes one aggregate over the group. COUNT(*) counts rows,
// COUNT(col) counts non-null values, SUM/AVG/MIN/MAX fold the group's
// non-null integer values. SUM of nothing is 0; AVG, MIN and MAX of nothing
// are NULL. AVG is integer division since the value model has no decimal
// type.
func (e groupEnv) aggregate(call *sql.AggregateCall) (sql.Value, error) {
	if call.Arg == nil {
		return sql.IntValue(int64(len(e.g.rows))), nil
	}

	idx, err := e.rs.resolve(call.Arg)
	if err != nil {
		return sql.Value{}, err
	}

	if call.Func == sql.AggCount {
		n := int64(0)
		for _, row := range e.g.rows {
			if !row[idx].IsNull() {
				n++
			}
		}
		return sql.IntValue(n), nil
	}

	var sum, count int64
	var min, max int64
	for _, row := range e.g.rows {
		v := row[idx]
		if v.Type != sql.TypeInt {
			continue
		}
		if count == 0 || v.I64 < min {
			min = v.I64
		}
		if count == 0 || v.I64 > max {
			max = v.I64
		}
		sum += v.I64
		count++
	}

	switch call.Func {
	case sql.AggSum:
		return sql.IntValue(sum), nil
	case sql.AggAvg:
		if count == 0 {
			return sql.NullValue(), nil
		}
		return sql.IntValue(sum / count), nil
	case sql.AggMin:
		if count == 0 {
			return sql.NullValue(), nil
		}
		return sql.IntValue(min), nil
	case sql.AggMax:
		if count == 0 {
			return sql.NullValue(), nil
		}
		return sql.IntValue(max), nil
	default:
		return sql.Value{}, fmt.Errorf("unsupported aggregate %s", call.Func)
	}
}
