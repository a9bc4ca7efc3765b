package engine

import (
	"fmt"

	"minidb/internal/sql"
)

// joinRows combines the pipeline's current row set with one joined table.
// The combined layout is always left columns followed by right columns;
// unmatched rows in the outer variants are padded with an all-NULL partner
// side. FULL is the union of the LEFT result with right rows that matched
// nothing on the left, so fully matched pairs are not doubled.
func joinRows(left, right *rowSet, kind sql.JoinKind, on sql.Expr) (*rowSet, error) {
	out := &rowSet{cols: append(append([]colKey{}, left.cols...), right.cols...)}

	match := func(l, r sql.Row) (sql.Row, bool, error) {
		combined := append(append(sql.Row{}, l...), r...)
		if on == nil {
			return combined, true, nil
		}
		ok, err := evalPredicate(rowEnv{rs: out, row: combined}, on)
		return combined, ok, err
	}

	switch kind {
	case sql.JoinCross:
		for _, l := range left.rows {
			for _, r := range right.rows {
				out.rows = append(out.rows, append(append(sql.Row{}, l...), r...))
			}
		}
		return out, nil

	case sql.JoinInner:
		for _, l := range left.rows {
			for _, r := range right.rows {
				combined, ok, err := match(l, r)
				if err != nil {
					return nil, err
				}
				if ok {
					out.rows = append(out.rows, combined)
				}
			}
		}
		return out, nil

	case sql.JoinLeft, sql.JoinFull:
		rightMatched := make([]bool, len(right.rows))
		for _, l := range left.rows {
			matched := false
			for ri, r := range right.rows {
				combined, ok, err := match(l, r)
				if err != nil {
					return nil, err
				}
				if ok {
					out.rows = append(out.rows, combined)
					matched = true
					rightMatched[ri] = true
				}
			}
			if !matched {
				out.rows = append(out.rows, append(append(sql.Row{}, l...), nullRow(len(right.cols))...))
			}
		}
		if kind == sql.JoinFull {
			for ri, r := range right.rows {
				if !rightMatched[ri] {
					out.rows = append(out.rows, append(nullRow(len(left.cols)), r...))
				}
			}
		}
		return out, nil

	case sql.JoinRight:
		for _, r := range right.rows {
			matched := false
			for _, l := range left.rows {
				combined, ok, err := match(l, r)
				if err != nil {
					return nil, err
				}
				if ok {
					out.rows = append(out.rows, combined)
					matched = true
				}
			}
			if !matched {
				out.rows = append(out.rows, append(nullRow(len(left.cols)), r...))
			}
		}
		return out, nil

	default:
		return nil, fmt.Errorf("unsupported join kind %s", kind)
	}
}

func nullRow(n int) sql.Row {
	row := make(sql.Row, n)
	for i := range row {
		row[i] = sql.NullValue()
	}
	return row
}
