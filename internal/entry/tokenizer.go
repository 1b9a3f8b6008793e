package entry

import "strings"

// Tokenizer splits raw log lines into fields.
type Tokenizer struct{}

// NewTokenizer creates a new Tokenizer instance.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize splits s on runs of spaces and tabs. Tabs count as single spaces,
// so "a\t b" yields two tokens.
func (t *Tokenizer) Tokenize(s string) []string {
	if s == "" {
		return nil
	}
	return strings.FieldsFunc(s, isSeparator)
}

func isSeparator(c rune) bool {
	return c == ' ' || c == '\t'
}

// cursor walks a token slice front to back.
type cursor struct {
	tokens []string
	pos    int
}

func (c *cursor) next() (string, bool) {
	if c.pos >= len(c.tokens) {
		return "", false
	}
	tok := c.tokens[c.pos]
	c.pos++
	return tok, true
}

func (c *cursor) peek() (string, bool) {
	if c.pos >= len(c.tokens) {
		return "", false
	}
	return c.tokens[c.pos], true
}

func (c *cursor) remaining() int {
	return len(c.tokens) - c.pos
}
