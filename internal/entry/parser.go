package entry

import (
	"strconv"
	"strings"
	"time"

	lserrors "github.com/livp123/logscope/pkg/errors"
)

// Parser turns raw log lines into entries. A Parser is immutable and safe for
// concurrent use.
type Parser struct {
	tokenizer *Tokenizer
	loc       *time.Location
}

// Option configures a Parser.
type Option func(*Parser)

// WithLocation sets the time zone timestamps are interpreted in.
func WithLocation(loc *time.Location) Option {
	return func(p *Parser) {
		if loc != nil {
			p.loc = loc
		}
	}
}

// NewParser creates a Parser. Timestamps are read as UTC unless WithLocation is given.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		tokenizer: NewTokenizer(),
		loc:       time.UTC,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Location returns the time zone timestamps are interpreted in.
func (p *Parser) Location() *time.Location {
	return p.loc
}

// Parse converts one raw line:
//
//	<origin> <actor tokens...> <date> <time> <event> [<task>] <outcome>
//
// An unparseable date/time does not fail the line; the entry carries a
// missing Timestamp instead and callers decide whether to report it.
func (p *Parser) Parse(line string) (Entry, error) {
	tokens := p.tokenizer.Tokenize(line)
	c := &cursor{tokens: tokens}

	var e Entry
	origin, ok := c.next()
	if !ok {
		return Entry{}, lserrors.NewMalformedLineError(len(tokens), "empty line")
	}
	e.origin = origin

	var actor []string
	for {
		tok, ok := c.peek()
		if !ok {
			return Entry{}, lserrors.NewMalformedLineError(len(tokens), "missing date")
		}
		if startsWithDigit(tok) {
			break
		}
		actor = append(actor, tok)
		c.pos++
	}
	e.actor = strings.Join(actor, " ")

	if c.remaining() < 2 {
		return Entry{}, lserrors.NewMalformedLineError(len(tokens), "missing time")
	}
	date, _ := c.next()
	clock, _ := c.next()
	e.ts, _ = p.ParseTimestamp(date + " " + clock)

	kindTok, ok := c.next()
	if !ok {
		return Entry{}, lserrors.NewMalformedLineError(len(tokens), "missing event")
	}
	kind, err := ParseEventKind(kindTok)
	if err != nil {
		return Entry{}, err
	}
	e.event = kind

	if kind.HasTask() {
		taskTok, ok := c.next()
		if !ok {
			return Entry{}, lserrors.NewMalformedLineError(len(tokens), "missing task number")
		}
		task, err := strconv.Atoi(taskTok)
		if err != nil {
			return Entry{}, lserrors.NewTaskNumberError(taskTok)
		}
		e.task = task
	}

	outcomeTok, ok := c.next()
	if !ok {
		return Entry{}, lserrors.NewMalformedLineError(len(tokens), "missing outcome")
	}
	outcome, err := ParseOutcome(outcomeTok)
	if err != nil {
		return Entry{}, err
	}
	e.outcome = outcome

	if c.remaining() > 0 {
		return Entry{}, lserrors.NewMalformedLineError(len(tokens), "trailing tokens after outcome")
	}
	return e, nil
}

// ParseTimestamp parses "dd.mm.yyyy HH:MM:SS" in the parser's location. On
// failure the returned Timestamp is missing and remembers s.
func (p *Parser) ParseTimestamp(s string) (Timestamp, error) {
	t, err := time.ParseInLocation(TimestampLayout, s, p.loc)
	if err != nil {
		err = lserrors.NewTimestampError(s, err)
		return Timestamp{raw: s, err: err}, err
	}
	return At(t), nil
}

func startsWithDigit(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}
