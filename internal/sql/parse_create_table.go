package sql

import "fmt"

// parseCreateTable parses:
//
//	CREATE TABLE name (col INT, col TEXT, ...)
//
// The leading CREATE keyword has already been consumed.
func (p *parser) parseCreateTable() (Statement, error) {
	if err := p.expectKeyword("TABLE"); err != nil {
		return nil, err
	}
	name, err := p.expectIdent("table name")
	if err != nil {
		return nil, err
	}
	if err := p.expectPunct("("); err != nil {
		return nil, err
	}

	var columns []Column
	for {
		colName, err := p.expectIdent("column name")
		if err != nil {
			return nil, err
		}
		colType, err := p.parseColumnType()
		if err != nil {
			return nil, err
		}
		columns = append(columns, Column{Name: colName, Type: colType})

		if p.acceptPunct(",") {
			continue
		}
		if p.acceptPunct(")") {
			break
		}
		tok, _ := p.peek()
		return nil, fmt.Errorf("%w: expected ',' or ')' after column definition, found %q",
			ErrUnexpectedToken, tok.Text)
	}

	return &CreateTableStmt{TableName: name, Columns: columns}, nil
}
