package ql

import (
	"fmt"

	"github.com/livp123/logscope/internal/query"
	lserrors "github.com/livp123/logscope/pkg/errors"
)

// Query is a parsed statement:
//
//	get <field> [for <field> = "<value>" [and date between "<after>" and "<before>"]]
type Query struct {
	Target query.Field
	Filter *Condition
	Range  *DateRange
}

// Condition is the equality filter of a query. Value is the raw literal;
// it is resolved against Field by the interpreter.
type Condition struct {
	Field query.Field
	Value string
}

// DateRange holds the raw literals of the between clause.
type DateRange struct {
	After  string
	Before string
}

// Parse parses a single statement. Any deviation from the grammar yields an
// error wrapping ErrUnknownQuerySyntax that carries the byte offset.
func Parse(src string) (*Query, error) {
	tokens, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	return p.parseQuery()
}

type parser struct {
	tokens []token
	pos    int
}

func (p *parser) peek() token { return p.tokens[p.pos] }

func (p *parser) advance() token {
	t := p.tokens[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) errorf(t token, format string, args ...interface{}) error {
	return lserrors.NewQuerySyntaxError(t.pos, fmt.Sprintf(format, args...)+", found "+t.describe())
}

func (p *parser) keyword(word string) error {
	t := p.advance()
	if t.kind != tokWord || t.text != word {
		return p.errorf(t, "expected %q", word)
	}
	return nil
}

func (p *parser) field() (query.Field, error) {
	t := p.advance()
	if t.kind != tokWord {
		return 0, p.errorf(t, "expected field name")
	}
	f, err := query.ParseField(t.text)
	if err != nil {
		return 0, p.errorf(t, "expected one of ip, user, date, event, status")
	}
	return f, nil
}

func (p *parser) str() (string, error) {
	t := p.advance()
	if t.kind != tokString {
		return "", p.errorf(t, "expected quoted string")
	}
	return t.text, nil
}

func (p *parser) parseQuery() (*Query, error) {
	if err := p.keyword("get"); err != nil {
		return nil, err
	}
	target, err := p.field()
	if err != nil {
		return nil, err
	}
	q := &Query{Target: target}

	if p.peek().kind == tokEOF {
		return q, nil
	}
	if err := p.keyword("for"); err != nil {
		return nil, err
	}
	if q.Filter, err = p.parseCondition(); err != nil {
		return nil, err
	}

	if p.peek().kind == tokEOF {
		return q, nil
	}
	if q.Range, err = p.parseRange(); err != nil {
		return nil, err
	}

	if t := p.advance(); t.kind != tokEOF {
		return nil, p.errorf(t, "expected end of query")
	}
	return q, nil
}

func (p *parser) parseCondition() (*Condition, error) {
	f, err := p.field()
	if err != nil {
		return nil, err
	}
	if t := p.advance(); t.kind != tokEquals {
		return nil, p.errorf(t, `expected "="`)
	}
	v, err := p.str()
	if err != nil {
		return nil, err
	}
	return &Condition{Field: f, Value: v}, nil
}

func (p *parser) parseRange() (*DateRange, error) {
	for _, kw := range []string{"and", "date", "between"} {
		if err := p.keyword(kw); err != nil {
			return nil, err
		}
	}
	after, err := p.str()
	if err != nil {
		return nil, err
	}
	if err := p.keyword("and"); err != nil {
		return nil, err
	}
	before, err := p.str()
	if err != nil {
		return nil, err
	}
	return &DateRange{After: after, Before: before}, nil
}
