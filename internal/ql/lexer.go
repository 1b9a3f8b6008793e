package ql

import (
	"fmt"
	"strings"
	"unicode"

	lserrors "github.com/livp123/logscope/pkg/errors"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokWord
	tokString
	tokEquals
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of query"
	case tokWord:
		return "word"
	case tokString:
		return "quoted string"
	case tokEquals:
		return `"="`
	default:
		return fmt.Sprintf("token(%d)", int(k))
	}
}

// token is one lexeme. pos is the byte offset of its first character.
type token struct {
	kind tokenKind
	text string
	pos  int
}

func (t token) describe() string {
	switch t.kind {
	case tokWord:
		return fmt.Sprintf("%q", t.text)
	case tokString:
		return fmt.Sprintf("string %q", t.text)
	default:
		return t.kind.String()
	}
}

// lex splits src into tokens. Words are runs of anything except whitespace,
// '=' and '"'. Strings are double quoted and support \" and \\ escapes.
func lex(src string) ([]token, error) {
	var tokens []token
	i := 0
	for i < len(src) {
		c := rune(src[i])
		switch {
		case unicode.IsSpace(c):
			i++
		case c == '=':
			tokens = append(tokens, token{kind: tokEquals, text: "=", pos: i})
			i++
		case c == '"':
			text, next, err := lexString(src, i)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token{kind: tokString, text: text, pos: i})
			i = next
		default:
			start := i
			for i < len(src) && !isDelimiter(src[i]) {
				i++
			}
			tokens = append(tokens, token{kind: tokWord, text: src[start:i], pos: start})
		}
	}
	return append(tokens, token{kind: tokEOF, pos: len(src)}), nil
}

// lexString reads the quoted literal starting at src[start] == '"' and
// returns its unescaped text and the offset just past the closing quote.
func lexString(src string, start int) (string, int, error) {
	var b strings.Builder
	i := start + 1
	for i < len(src) {
		switch src[i] {
		case '"':
			return b.String(), i + 1, nil
		case '\\':
			if i+1 >= len(src) {
				return "", 0, lserrors.NewQuerySyntaxError(i, "dangling escape")
			}
			switch src[i+1] {
			case '"', '\\':
				b.WriteByte(src[i+1])
			default:
				return "", 0, lserrors.NewQuerySyntaxError(i, fmt.Sprintf("unknown escape \\%c", src[i+1]))
			}
			i += 2
		default:
			b.WriteByte(src[i])
			i++
		}
	}
	return "", 0, lserrors.NewQuerySyntaxError(start, "unterminated string")
}

func isDelimiter(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f' || c == '=' || c == '"'
}
