package sql

import (
	"errors"
	"fmt"
	"strings"
)

// Lexing errors. Callers can test the failure class with errors.Is.
var (
	ErrUnterminatedString = errors.New("unterminated string literal")
	ErrUnexpectedChar     = errors.New("unexpected character")
)

// Tokenize converts the raw text of one statement into a flat token
// sequence. It is a single forward pass: whitespace separates tokens and is
// not emitted, single-quoted strings carry their content verbatim (no escape
// processing), and keywords are matched case-insensitively.
func Tokenize(input string) ([]Token, error) {
	var tokens []Token

	for i := 0; i < len(input); {
		c := input[i]

		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++

		case c == ',' || c == '(' || c == ')' || c == ';' || c == '*' || c == '.' || c == '=':
			tokens = append(tokens, Token{Kind: TokenPunct, Text: string(c)})
			i++

		case c == '<' || c == '>':
			if i+1 < len(input) && input[i+1] == '=' {
				tokens = append(tokens, Token{Kind: TokenPunct, Text: input[i : i+2]})
				i += 2
			} else {
				tokens = append(tokens, Token{Kind: TokenPunct, Text: string(c)})
				i++
			}

		case c == '!':
			if i+1 < len(input) && input[i+1] == '=' {
				tokens = append(tokens, Token{Kind: TokenPunct, Text: "!="})
				i += 2
			} else {
				return nil, fmt.Errorf("%w %q at offset %d", ErrUnexpectedChar, c, i)
			}

		case c == '\'':
			end := strings.IndexByte(input[i+1:], '\'')
			if end == -1 {
				return nil, fmt.Errorf("%w starting at offset %d", ErrUnterminatedString, i)
			}
			tokens = append(tokens, Token{Kind: TokenString, Text: input[i+1 : i+1+end]})
			i += end + 2

		case c >= '0' && c <= '9':
			j := i + 1
			for j < len(input) && input[j] >= '0' && input[j] <= '9' {
				j++
			}
			tokens = append(tokens, Token{Kind: TokenInt, Text: input[i:j]})
			i = j

		case isWordStart(c):
			j := i + 1
			for j < len(input) && isWordChar(input[j]) {
				j++
			}
			word := input[i:j]
			if upper := strings.ToUpper(word); keywords[upper] {
				tokens = append(tokens, Token{Kind: TokenKeyword, Text: upper})
			} else {
				tokens = append(tokens, Token{Kind: TokenIdent, Text: word})
			}
			i = j

		default:
			return nil, fmt.Errorf("%w %q at offset %d", ErrUnexpectedChar, c, i)
		}
	}

	return tokens, nil
}

func isWordStart(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || c == '_'
}

func isWordChar(c byte) bool {
	return isWordStart(c) || (c >= '0' && c <= '9')
}
