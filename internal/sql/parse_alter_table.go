package sql

import "fmt"

// parseAlterTable parses the three ALTER TABLE forms:
//
//	ALTER TABLE name ADD col [INT|TEXT]
//	ALTER TABLE name DROP col
//	ALTER TABLE name MODIFY col INT|TEXT
//
// ADD without a type defaults the new column to TEXT. The leading ALTER
// keyword has already been consumed.
func (p *parser) parseAlterTable() (Statement, error) {
	if err := p.expectKeyword("TABLE"); err != nil {
		return nil, err
	}
	name, err := p.expectIdent("table name")
	if err != nil {
		return nil, err
	}

	tok, ok := p.next()
	if !ok {
		return nil, fmt.Errorf("%w: expected ADD, DROP or MODIFY, found end of statement", ErrUnexpectedToken)
	}
	if tok.Kind != TokenKeyword {
		return nil, fmt.Errorf("%w: expected ADD, DROP or MODIFY, found %q", ErrUnexpectedToken, tok.Text)
	}

	switch tok.Text {
	case "ADD":
		colName, err := p.expectIdent("column name after ADD")
		if err != nil {
			return nil, err
		}
		colType := TypeText
		if next, ok := p.peek(); ok && next.Kind == TokenKeyword && (next.Text == "INT" || next.Text == "TEXT") {
			colType, _ = p.parseColumnType()
		}
		return &AlterTableStmt{
			TableName: name,
			Action:    AlterAddColumn,
			Column:    Column{Name: colName, Type: colType},
		}, nil

	case "DROP":
		colName, err := p.expectIdent("column name after DROP")
		if err != nil {
			return nil, err
		}
		return &AlterTableStmt{
			TableName: name,
			Action:    AlterDropColumn,
			Column:    Column{Name: colName},
		}, nil

	case "MODIFY":
		colName, err := p.expectIdent("column name after MODIFY")
		if err != nil {
			return nil, err
		}
		colType, err := p.parseColumnType()
		if err != nil {
			return nil, err
		}
		return &AlterTableStmt{
			TableName: name,
			Action:    AlterModifyColumn,
			Column:    Column{Name: colName, Type: colType},
		}, nil

	default:
		return nil, fmt.Errorf("%w: expected ADD, DROP or MODIFY, found %q", ErrUnexpectedToken, tok.Text)
	}
}

// parseDropTable parses "DROP TABLE name". The leading DROP keyword has
// already been consumed.
func (p *parser) parseDropTable() (Statement, error) {
	if err := p.expectKeyword("TABLE"); err != nil {
		return nil, err
	}
	name, err := p.expectIdent("table name")
	if err != nil {
		return nil, err
	}
	return &DropTableStmt{TableName: name}, nil
}
