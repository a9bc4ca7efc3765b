package sql

import "fmt"

// parseInsert parses:
//
//	INSERT INTO name (col, ...) VALUES (lit, ...) [, (lit, ...)]*
//
// Each tuple's length must match the column list length. Positional mapping
// of the named columns onto the table schema is deferred to the engine. The
// leading INSERT keyword has already been consumed.
func (p *parser) parseInsert() (Statement, error) {
	if err := p.expectKeyword("INTO"); err != nil {
		return nil, err
	}
	name, err := p.expectIdent("table name")
	if err != nil {
		return nil, err
	}

	if err := p.expectPunct("("); err != nil {
		return nil, err
	}
	var columns []string
	for {
		col, err := p.expectIdent("column name")
		if err != nil {
			return nil, err
		}
		columns = append(columns, col)
		if p.acceptPunct(",") {
			continue
		}
		if p.acceptPunct(")") {
			break
		}
		tok, _ := p.peek()
		return nil, fmt.Errorf("%w: expected ',' or ')' in column list, found %q",
			ErrUnexpectedToken, tok.Text)
	}

	if err := p.expectKeyword("VALUES"); err != nil {
		return nil, err
	}

	var values [][]string
	for {
		tuple, err := p.parseValueTuple()
		if err != nil {
			return nil, err
		}
		if len(tuple) != len(columns) {
			return nil, fmt.Errorf("INSERT: %w: %d columns but %d values",
				ErrArity, len(columns), len(tuple))
		}
		values = append(values, tuple)
		if !p.acceptPunct(",") {
			break
		}
	}

	return &InsertStmt{TableName: name, Columns: columns, Values: values}, nil
}

func (p *parser) parseValueTuple() ([]string, error) {
	if err := p.expectPunct("("); err != nil {
		return nil, err
	}
	var tuple []string
	for {
		lit, err := p.parseLiteralText()
		if err != nil {
			return nil, err
		}
		tuple = append(tuple, lit)
		if p.acceptPunct(",") {
			continue
		}
		if p.acceptPunct(")") {
			return tuple, nil
		}
		tok, _ := p.peek()
		return nil, fmt.Errorf("%w: expected ',' or ')' in VALUES tuple, found %q",
			ErrUnexpectedToken, tok.Text)
	}
}
