package sql

// TokenKind classifies a lexed token.
type TokenKind int

const (
	TokenKeyword TokenKind = iota
	TokenIdent
	TokenInt
	TokenString
	TokenPunct
)

func (k TokenKind) String() string {
	switch k {
	case TokenKeyword:
		return "keyword"
	case TokenIdent:
		return "identifier"
	case TokenInt:
		return "integer"
	case TokenString:
		return "string"
	case TokenPunct:
		return "punctuation"
	default:
		return "unknown"
	}
}

// Token is one lexed unit of a statement.
// For keywords Text holds the canonical upper-case spelling; for identifiers
// it is the name exactly as written; for literals it is the content without
// quotes; for punctuation it is the punctuation itself.
type Token struct {
	Kind TokenKind
	Text string
}

// keywords is the reserved word set. Matching is case-insensitive; anything
// else that looks like a word is an identifier.
var keywords = map[string]bool{
	"SELECT": true, "FROM": true, "WHERE": true,
	"INSERT": true, "INTO": true, "VALUES": true,
	"UPDATE": true, "SET": true, "DELETE": true,
	"CREATE": true, "TABLE": true, "ALTER": true,
	"ADD": true, "DROP": true, "MODIFY": true,
	"ORDER": true, "BY": true, "ASC": true, "DESC": true,
	"GROUP": true, "HAVING": true,
	"JOIN": true, "INNER": true, "LEFT": true, "RIGHT": true,
	"FULL": true, "CROSS": true, "ON": true,
	"AND": true, "OR": true,
	"INT": true, "TEXT": true,
	"COUNT": true, "SUM": true, "AVG": true, "MIN": true, "MAX": true,
}
