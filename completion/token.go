// Package completion implements context-aware statement completion for
// InfluxQL-family query languages. The engine turns raw text plus a cursor
// offset into a classified position, and a classified position plus schema
// symbols into a ranked candidate list.
package completion

import (
	"strings"
	"unicode"

	"github.com/alecthomas/participle/v2/lexer"
)

// Token type constants - negative values as per participle convention.
const (
	TokenEOF    lexer.TokenType = lexer.EOF
	TokenWord   lexer.TokenType = -(iota + 2) //nolint:mnd // participle convention
	TokenQuoted                               // "quoted" identifiers
	TokenString                               // 'string literals'
	TokenNumber                               // numbers and duration literals (1h, 5m)
	TokenOp                                   // operators
	TokenComma                                // ,
	TokenDot                                  // .
	TokenSemi                                 // ;
	TokenLParen                               // (
	TokenRParen                               // )
)

// Token is one lexical element of a query.
type Token struct {
	Type  lexer.TokenType
	Value string         // quote characters are stripped for Quoted/String
	Pos   lexer.Position // start of the token
	End   int            // byte offset just past the token (including quotes)
}

// Upper returns the token value upper-cased, for keyword comparison.
func (t Token) Upper() string {
	return strings.ToUpper(t.Value)
}

// IsWord reports whether the token is a bare or quoted identifier.
func (t Token) IsWord() bool {
	return t.Type == TokenWord || t.Type == TokenQuoted
}

// Scan tokenizes query text into a flat token stream.
// It never fails: unterminated quotes run to the end of the text and
// unrecognised bytes are skipped, so completion keeps working on the
// half-typed queries it exists for.
func Scan(text string) []Token {
	var (
		tokens []Token
		line   = 1
		col    = 1
	)

	pos := func(offset int) lexer.Position {
		return lexer.Position{Offset: offset, Line: line, Column: col}
	}

	i := 0
	for i < len(text) {
		c := rune(text[i])

		switch {
		case c == '\n':
			line++
			col = 1
			i++

		case c == ' ' || c == '\t' || c == '\r':
			col++
			i++

		case c == '"' || c == '\'':
			quote := byte(c)
			start := i
			startPos := pos(start)
			i++
			for i < len(text) && text[i] != quote && text[i] != '\n' {
				i++
			}
			value := text[start+1 : i]
			if i < len(text) && text[i] == quote {
				i++
			}
			kind := TokenQuoted
			if quote == '\'' {
				kind = TokenString
			}
			tokens = append(tokens, Token{Type: kind, Value: value, Pos: startPos, End: i})
			col += i - start

		case unicode.IsLetter(c) || c == '_':
			start := i
			startPos := pos(start)
			for i < len(text) && isWordByte(text[i]) {
				i++
			}
			tokens = append(tokens, Token{Type: TokenWord, Value: text[start:i], Pos: startPos, End: i})
			col += i - start

		case unicode.IsDigit(c):
			// Numbers, timestamps and duration literals (10, 1.5, 5m, 1h30m).
			start := i
			startPos := pos(start)
			for i < len(text) && (isWordByte(text[i]) || text[i] == '.') {
				i++
			}
			tokens = append(tokens, Token{Type: TokenNumber, Value: text[start:i], Pos: startPos, End: i})
			col += i - start

		case c == ',':
			tokens = append(tokens, Token{Type: TokenComma, Value: ",", Pos: pos(i), End: i + 1})
			i++
			col++

		case c == '.':
			tokens = append(tokens, Token{Type: TokenDot, Value: ".", Pos: pos(i), End: i + 1})
			i++
			col++

		case c == ';':
			tokens = append(tokens, Token{Type: TokenSemi, Value: ";", Pos: pos(i), End: i + 1})
			i++
			col++

		case c == '(':
			tokens = append(tokens, Token{Type: TokenLParen, Value: "(", Pos: pos(i), End: i + 1})
			i++
			col++

		case c == ')':
			tokens = append(tokens, Token{Type: TokenRParen, Value: ")", Pos: pos(i), End: i + 1})
			i++
			col++

		case isOperatorByte(text[i]):
			start := i
			startPos := pos(start)
			for i < len(text) && isOperatorByte(text[i]) {
				i++
			}
			tokens = append(tokens, Token{Type: TokenOp, Value: text[start:i], Pos: startPos, End: i})
			col += i - start

		default:
			i++
			col++
		}
	}

	return tokens
}

func isWordByte(b byte) bool {
	return b == '_' || b >= '0' && b <= '9' ||
		b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= 0x80
}

func isOperatorByte(b byte) bool {
	switch b {
	case '=', '!', '<', '>', '~', '+', '-', '*', '/', '%':
		return true
	}

	return false
}

// ClauseKind identifies the statement clause the cursor sits in.
type ClauseKind int

const (
	ClauseNone ClauseKind = iota
	ClauseSelect
	ClauseFrom
	ClauseWhere
	ClauseGroupBy
	ClauseOrderBy
	ClauseLimit
)

// String returns the clause name for logging.
func (c ClauseKind) String() string {
	switch c {
	case ClauseSelect:
		return "SELECT"
	case ClauseFrom:
		return "FROM"
	case ClauseWhere:
		return "WHERE"
	case ClauseGroupBy:
		return "GROUP BY"
	case ClauseOrderBy:
		return "ORDER BY"
	case ClauseLimit:
		return "LIMIT"
	default:
		return "none"
	}
}

// clauseTracker is a finite-state tracker over clause keywords.
// Advancing it one token at a time yields the clause in effect after each
// token, which is exact where lookback regexes are approximate.
type clauseTracker struct {
	clause ClauseKind
}

func (t *clauseTracker) advance(tok Token) {
	if tok.Type != TokenWord {
		return
	}

	switch tok.Upper() {
	case "SELECT":
		t.clause = ClauseSelect
	case "FROM":
		t.clause = ClauseFrom
	case "WHERE":
		t.clause = ClauseWhere
	case "GROUP":
		t.clause = ClauseGroupBy
	case "ORDER":
		t.clause = ClauseOrderBy
	case "BY":
		// part of GROUP BY / ORDER BY, no transition
	case "LIMIT", "OFFSET", "SLIMIT", "SOFFSET":
		t.clause = ClauseLimit
	}
}
