package sql

import (
	"fmt"
	"strconv"
)

// Predicate grammar, standard precedence:
//
//	predicate  := conjunct (OR conjunct)*
//	conjunct   := comparison (AND comparison)*
//	comparison := operand (= | != | < | > | <= | >=) operand
//	operand    := column-ref | literal | aggregate-call
//
// Both chains are left-associative; AND binds tighter than OR. Aggregate
// calls as operands exist for HAVING; the engine rejects them anywhere a
// group is not in scope.
func (p *parser) parsePredicate() (Expr, error) {
	left, err := p.parseConjunct()
	if err != nil {
		return nil, err
	}
	for p.acceptKeyword("OR") {
		right, err := p.parseConjunct()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Op: OpOr, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseConjunct() (Expr, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.acceptKeyword("AND") {
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Op: OpAnd, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseComparison() (Expr, error) {
	left, err := p.parseOperand()
	if err != nil {
		return nil, err
	}

	tok, ok := p.next()
	if !ok {
		return nil, fmt.Errorf("%w: expected comparison operator, found end of statement", ErrUnexpectedToken)
	}
	if tok.Kind != TokenPunct {
		return nil, fmt.Errorf("%w: expected comparison operator, found %q", ErrUnexpectedToken, tok.Text)
	}

	var op BinOp
	switch tok.Text {
	case "=":
		op = OpEq
	case "!=":
		op = OpNe
	case "<":
		op = OpLt
	case ">":
		op = OpGt
	case "<=":
		op = OpLe
	case ">=":
		op = OpGe
	default:
		return nil, fmt.Errorf("%w: expected comparison operator, found %q", ErrUnexpectedToken, tok.Text)
	}

	right, err := p.parseOperand()
	if err != nil {
		return nil, err
	}
	return &BinaryExpr{Op: op, Left: left, Right: right}, nil
}

func (p *parser) parseOperand() (Expr, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, fmt.Errorf("%w: expected operand, found end of statement", ErrUnexpectedToken)
	}

	switch {
	case tok.Kind == TokenString:
		p.next()
		return &Literal{Value: TextValue(tok.Text)}, nil
	case tok.Kind == TokenInt:
		p.next()
		i, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad integer literal %q", ErrUnexpectedToken, tok.Text)
		}
		return &Literal{Value: IntValue(i)}, nil
	case tok.Kind == TokenKeyword && aggFuncFor(tok.Text) != nil:
		return p.parseAggregateCall()
	case tok.Kind == TokenIdent:
		ref, err := p.parseColumnRef()
		if err != nil {
			return nil, err
		}
		return &ref, nil
	default:
		return nil, fmt.Errorf("%w: expected operand, found %q", ErrUnexpectedToken, tok.Text)
	}
}
