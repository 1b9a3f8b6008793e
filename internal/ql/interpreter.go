package ql

import (
	"context"
	"time"

	"github.com/livp123/logscope/internal/entry"
	"github.com/livp123/logscope/internal/metrics"
	"github.com/livp123/logscope/internal/query"
	"github.com/livp123/logscope/internal/utils/logger"
	lserrors "github.com/livp123/logscope/pkg/errors"
)

// Interpreter executes query language statements against an Engine.
// Interpreter 在查询引擎上执行查询语句。
type Interpreter struct {
	engine *query.Engine
	parser *entry.Parser
}

// NewInterpreter creates an Interpreter. Date literals are read with parser so
// they share the layout and time zone of the ingested entries. A nil parser
// means a default (UTC) one.
func NewInterpreter(engine *query.Engine, parser *entry.Parser) *Interpreter {
	if parser == nil {
		parser = entry.NewParser()
	}
	return &Interpreter{engine: engine, parser: parser}
}

// Execute runs src with a background context.
func (in *Interpreter) Execute(src string) (query.Set[query.Value], error) {
	return in.ExecuteContext(context.Background(), src)
}

// ExecuteContext parses, resolves and runs src. Declined queries return an
// error and never a partial result.
// ExecuteContext 解析并执行查询；被拒绝的查询只返回错误。
func (in *Interpreter) ExecuteContext(ctx context.Context, src string) (query.Set[query.Value], error) {
	log := logger.Get(ctx)
	start := time.Now()

	res, err := in.execute(src)
	metrics.QueryDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.QueriesTotal.WithLabelValues(metrics.ResultDeclined).Inc()
		log.Debugf("[QL] declined %q: %v", src, err)
		return nil, err
	}
	metrics.QueriesTotal.WithLabelValues(metrics.ResultOK).Inc()
	log.Debugf("[QL] %q -> %d values in %s", src, res.Len(), time.Since(start))
	return res, nil
}

func (in *Interpreter) execute(src string) (query.Set[query.Value], error) {
	q, err := Parse(src)
	if err != nil {
		return nil, err
	}

	if q.Filter == nil {
		return in.engine.Project(q.Target, nil, query.Unbounded())
	}
	// Self-pairs are rejected before the literal is looked at.
	if q.Filter.Field == q.Target {
		return nil, lserrors.NewFieldCombinationError(q.Target.String(), q.Filter.Field.String())
	}

	where, err := in.resolve(q.Filter)
	if err != nil {
		return nil, err
	}
	rng, err := in.resolveRange(q.Range)
	if err != nil {
		return nil, err
	}
	return in.engine.Project(q.Target, &where, rng)
}

// resolve turns a raw literal into a Value of the condition's field.
func (in *Interpreter) resolve(c *Condition) (query.Value, error) {
	switch c.Field {
	case query.FieldOrigin:
		return query.OriginValue(c.Value), nil
	case query.FieldActor:
		return query.ActorValue(c.Value), nil
	case query.FieldEvent:
		k, err := entry.ParseEventKind(c.Value)
		if err != nil {
			return query.Value{}, err
		}
		return query.EventValue(k), nil
	case query.FieldOutcome:
		o, err := entry.ParseOutcome(c.Value)
		if err != nil {
			return query.Value{}, err
		}
		return query.OutcomeValue(o), nil
	case query.FieldTimestamp:
		ts, err := in.parser.ParseTimestamp(c.Value)
		if err != nil {
			return query.Value{}, err
		}
		return query.TimestampValue(ts), nil
	default:
		return query.Value{}, lserrors.NewFieldError(c.Field.String())
	}
}

func (in *Interpreter) resolveRange(r *DateRange) (query.TimeRange, error) {
	if r == nil {
		return query.Unbounded(), nil
	}
	after, err := in.instant(r.After)
	if err != nil {
		return query.TimeRange{}, err
	}
	before, err := in.instant(r.Before)
	if err != nil {
		return query.TimeRange{}, err
	}
	return query.Between(after, before), nil
}

func (in *Interpreter) instant(s string) (time.Time, error) {
	ts, err := in.parser.ParseTimestamp(s)
	if err != nil {
		return time.Time{}, err
	}
	t, _ := ts.Time()
	return t, nil
}
