package sql

import "fmt"

// parseSelect parses:
//
//	SELECT projection FROM name [joins] [WHERE predicate]
//	    [GROUP BY col, ...] [HAVING predicate] [ORDER BY col [ASC|DESC]]
//
// The projection is '*' or a comma-separated list of column references and
// aggregate calls. The leading SELECT keyword has already been consumed.
func (p *parser) parseSelect() (Statement, error) {
	projection, err := p.parseProjection()
	if err != nil {
		return nil, err
	}

	if err := p.expectKeyword("FROM"); err != nil {
		return nil, err
	}
	name, err := p.expectIdent("table name after FROM")
	if err != nil {
		return nil, err
	}

	stmt := &SelectStmt{Projection: projection, TableName: name}

	for {
		join, ok, err := p.parseJoinClause()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		stmt.Joins = append(stmt.Joins, join)
	}

	if p.acceptKeyword("WHERE") {
		stmt.Where, err = p.parsePredicate()
		if err != nil {
			return nil, err
		}
	}

	if p.acceptKeyword("GROUP") {
		if err := p.expectKeyword("BY"); err != nil {
			return nil, err
		}
		for {
			ref, err := p.parseColumnRef()
			if err != nil {
				return nil, err
			}
			stmt.GroupBy = append(stmt.GroupBy, ref)
			if !p.acceptPunct(",") {
				break
			}
		}
	}

	if p.acceptKeyword("HAVING") {
		if len(stmt.GroupBy) == 0 {
			return nil, fmt.Errorf("%w: HAVING requires GROUP BY", ErrUnexpectedToken)
		}
		stmt.Having, err = p.parsePredicate()
		if err != nil {
			return nil, err
		}
	}

	if p.acceptKeyword("ORDER") {
		if err := p.expectKeyword("BY"); err != nil {
			return nil, err
		}
		ref, err := p.parseColumnRef()
		if err != nil {
			return nil, err
		}
		order := &OrderBy{Column: ref}
		if p.acceptKeyword("DESC") {
			order.Desc = true
		} else {
			p.acceptKeyword("ASC")
		}
		stmt.Order = order
	}

	return stmt, nil
}

// parseProjection reads '*' or a comma-separated list of column references
// and aggregate calls.
func (p *parser) parseProjection() ([]Expr, error) {
	if p.acceptPunct("*") {
		return []Expr{&Star{}}, nil
	}

	var projection []Expr
	for {
		tok, ok := p.peek()
		if !ok {
			return nil, fmt.Errorf("%w: expected projection, found end of statement", ErrUnexpectedToken)
		}

		switch {
		case tok.Kind == TokenKeyword && aggFuncFor(tok.Text) != nil:
			call, err := p.parseAggregateCall()
			if err != nil {
				return nil, err
			}
			projection = append(projection, call)
		case tok.Kind == TokenIdent:
			ref, err := p.parseColumnRef()
			if err != nil {
				return nil, err
			}
			projection = append(projection, &ref)
		default:
			return nil, fmt.Errorf("%w: expected column or aggregate in projection, found %q",
				ErrUnexpectedToken, tok.Text)
		}

		if !p.acceptPunct(",") {
			return projection, nil
		}
	}
}

// parseAggregateCall reads func(column) or COUNT(*). The function keyword is
// the next token.
func (p *parser) parseAggregateCall() (*AggregateCall, error) {
	tok, _ := p.next()
	fn := aggFuncFor(tok.Text)
	if fn == nil {
		return nil, fmt.Errorf("%w: unknown aggregate %q", ErrUnexpectedToken, tok.Text)
	}
	if err := p.expectPunct("("); err != nil {
		return nil, err
	}

	call := &AggregateCall{Func: *fn}
	if p.acceptPunct("*") {
		if call.Func != AggCount {
			return nil, fmt.Errorf("%w: '*' argument is only valid for COUNT", ErrUnexpectedToken)
		}
	} else {
		ref, err := p.parseColumnRef()
		if err != nil {
			return nil, err
		}
		call.Arg = &ref
	}

	if err := p.expectPunct(")"); err != nil {
		return nil, err
	}
	return call, nil
}

// parseJoinClause reads one JOIN clause if the next tokens start one. Bare
// JOIN means INNER JOIN; CROSS joins carry no ON predicate, every other kind
// requires one.
func (p *parser) parseJoinClause() (JoinClause, bool, error) {
	tok, ok := p.peek()
	if !ok || tok.Kind != TokenKeyword {
		return JoinClause{}, false, nil
	}

	var kind JoinKind
	switch tok.Text {
	case "JOIN":
		p.next()
		kind = JoinInner
	case "INNER":
		kind = JoinInner
	case "LEFT":
		kind = JoinLeft
	case "RIGHT":
		kind = JoinRight
	case "FULL":
		kind = JoinFull
	case "CROSS":
		kind = JoinCross
	default:
		return JoinClause{}, false, nil
	}

	if tok.Text != "JOIN" {
		p.next()
		if err := p.expectKeyword("JOIN"); err != nil {
			return JoinClause{}, false, err
		}
	}

	table, err := p.expectIdent("table name after JOIN")
	if err != nil {
		return JoinClause{}, false, err
	}

	join := JoinClause{Kind: kind, Table: table}
	if kind == JoinCross {
		if tok, ok := p.peek(); ok && tok.Kind == TokenKeyword && tok.Text == "ON" {
			return JoinClause{}, false, fmt.Errorf("%w: CROSS JOIN takes no ON clause", ErrUnexpectedToken)
		}
		return join, true, nil
	}

	if err := p.expectKeyword("ON"); err != nil {
		return JoinClause{}, false, err
	}
	join.On, err = p.parsePredicate()
	if err != nil {
		return JoinClause{}, false, err
	}
	return join, true, nil
}

func aggFuncFor(kw string) *AggFunc {
	var fn AggFunc
	switch kw {
	case "COUNT":
		fn = AggCount
	case "SUM":
		fn = AggSum
	case "AVG":
		fn = AggAvg
	case "MIN":
		fn = AggMin
	case "MAX":
		fn = AggMax
	default:
		return nil
	}
	return &fn
}
