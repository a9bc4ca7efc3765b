package sql

import "fmt"

// parseUpdate parses:
//
//	UPDATE name SET col = lit [, col = lit]* [WHERE predicate]
//
// Without a WHERE clause every row matches. The leading UPDATE keyword has
// already been consumed.
func (p *parser) parseUpdate() (Statement, error) {
	name, err := p.expectIdent("table name")
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("SET"); err != nil {
		return nil, err
	}

	var assignments []Assignment
	for {
		col, err := p.expectIdent("column name in SET list")
		if err != nil {
			return nil, err
		}
		if err := p.expectPunct("="); err != nil {
			return nil, err
		}
		lit, err := p.parseLiteralText()
		if err != nil {
			return nil, fmt.Errorf("UPDATE: %w", err)
		}
		assignments = append(assignments, Assignment{Column: col, Value: lit})
		if !p.acceptPunct(",") {
			break
		}
	}

	var where Expr
	if p.acceptKeyword("WHERE") {
		where, err = p.parsePredicate()
		if err != nil {
			return nil, err
		}
	}

	return &UpdateStmt{TableName: name, Assignments: assignments, Where: where}, nil
}

// parseDelete parses:
//
//	DELETE FROM name [WHERE predicate]
//
// Without a WHERE clause the whole table is cleared. The leading DELETE
// keyword has already been consumed.
func (p *parser) parseDelete() (Statement, error) {
	if err := p.expectKeyword("FROM"); err != nil {
		return nil, err
	}
	name, err := p.expectIdent("table name")
	if err != nil {
		return nil, err
	}

	var where Expr
	if p.acceptKeyword("WHERE") {
		where, err = p.parsePredicate()
		if err != nil {
			return nil, err
		}
	}

	return &DeleteStmt{TableName: name, Where: where}, nil
}
