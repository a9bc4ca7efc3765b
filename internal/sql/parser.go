package sql

import (
	"errors"
	"fmt"
)

// Parsing errors. Callers can test the failure class with errors.Is.
var (
	ErrUnknownStatement = errors.New("unknown statement")
	ErrUnexpectedToken  = errors.New("unexpected token")
	ErrArity            = errors.New("column/value count mismatch")
)

// Parse lexes and parses a single SQL statement string into an AST
// Statement. A trailing semicolon is optional, but nothing may follow it.
func Parse(query string) (Statement, error) {
	tokens, err := Tokenize(query)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: empty statement", ErrUnknownStatement)
	}

	p := &parser{tokens: tokens}
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	// Optional terminator, then nothing.
	p.acceptPunct(";")
	if tok, ok := p.peek(); ok {
		return nil, fmt.Errorf("%w: trailing %s %q", ErrUnexpectedToken, tok.Kind, tok.Text)
	}
	return stmt, nil
}

// parser is a recursive-descent parser with one token of lookahead.
type parser struct {
	tokens []Token
	pos    int
}

// parseStatement dispatches on the leading keyword.
func (p *parser) parseStatement() (Statement, error) {
	tok, ok := p.peek()
	if !ok || tok.Kind != TokenKeyword {
		return nil, fmt.Errorf("%w: statement must start with a keyword", ErrUnknownStatement)
	}

	switch tok.Text {
	case "CREATE":
		p.next()
		return p.parseCreateTable()
	case "ALTER":
		p.next()
		return p.parseAlterTable()
	case "DROP":
		p.next()
		return p.parseDropTable()
	case "INSERT":
		p.next()
		return p.parseInsert()
	case "UPDATE":
		p.next()
		return p.parseUpdate()
	case "DELETE":
		p.next()
		return p.parseDelete()
	case "SELECT":
		p.next()
		return p.parseSelect()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatement, tok.Text)
	}
}

func (p *parser) peek() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) next() (Token, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

// acceptKeyword consumes the given keyword if it is next and reports whether
// it did.
func (p *parser) acceptKeyword(kw string) bool {
	tok, ok := p.peek()
	if ok && tok.Kind == TokenKeyword && tok.Text == kw {
		p.pos++
		return true
	}
	return false
}

// acceptPunct consumes the given punctuation if it is next and reports
// whether it did.
func (p *parser) acceptPunct(s string) bool {
	tok, ok := p.peek()
	if ok && tok.Kind == TokenPunct && tok.Text == s {
		p.pos++
		return true
	}
	return false
}

func (p *parser) expectKeyword(kw string) error {
	tok, ok := p.next()
	if !ok {
		return fmt.Errorf("%w: expected %s, found end of statement", ErrUnexpectedToken, kw)
	}
	if tok.Kind != TokenKeyword || tok.Text != kw {
		return fmt.Errorf("%w: expected %s, found %q", ErrUnexpectedToken, kw, tok.Text)
	}
	return nil
}

func (p *parser) expectPunct(s string) error {
	tok, ok := p.next()
	if !ok {
		return fmt.Errorf("%w: expected %q, found end of statement", ErrUnexpectedToken, s)
	}
	if tok.Kind != TokenPunct || tok.Text != s {
		return fmt.Errorf("%w: expected %q, found %q", ErrUnexpectedToken, s, tok.Text)
	}
	return nil
}

func (p *parser) expectIdent(what string) (string, error) {
	tok, ok := p.next()
	if !ok {
		return "", fmt.Errorf("%w: expected %s, found end of statement", ErrUnexpectedToken, what)
	}
	if tok.Kind != TokenIdent {
		return "", fmt.Errorf("%w: expected %s, found %q", ErrUnexpectedToken, what, tok.Text)
	}
	return tok.Text, nil
}

// parseColumnType reads an INT or TEXT keyword.
func (p *parser) parseColumnType() (DataType, error) {
	tok, ok := p.next()
	if !ok {
		return 0, fmt.Errorf("%w: expected column type, found end of statement", ErrUnexpectedToken)
	}
	if tok.Kind == TokenKeyword {
		switch tok.Text {
		case "INT":
			return TypeInt, nil
		case "TEXT":
			return TypeText, nil
		}
	}
	return 0, fmt.Errorf("%w: expected INT or TEXT, found %q", ErrUnexpectedToken, tok.Text)
}

// parseColumnRef reads an identifier, optionally qualified as table.column.
func (p *parser) parseColumnRef() (ColumnRef, error) {
	name, err := p.expectIdent("column name")
	if err != nil {
		return ColumnRef{}, err
	}
	if p.acceptPunct(".") {
		col, err := p.expectIdent("column name after '.'")
		if err != nil {
			return ColumnRef{}, err
		}
		return ColumnRef{Table: name, Name: col}, nil
	}
	return ColumnRef{Name: name}, nil
}

// parseLiteralText reads a literal and returns its raw text. Bare numeric
// tokens are accepted alongside quoted strings; both carry raw text that the
// engine coerces against the destination column's declared type.
func (p *parser) parseLiteralText() (string, error) {
	tok, ok := p.next()
	if !ok {
		return "", fmt.Errorf("%w: expected literal, found end of statement", ErrUnexpectedToken)
	}
	if tok.Kind != TokenString && tok.Kind != TokenInt {
		return "", fmt.Errorf("%w: expected literal, found %q", ErrUnexpectedToken, tok.Text)
	}
	return tok.Text, nil
}
