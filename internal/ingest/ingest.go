package ingest

import (
	"context"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/livp123/logscope/internal/entry"
	"github.com/livp123/logscope/internal/metrics"
	"github.com/livp123/logscope/internal/store"
	"github.com/livp123/logscope/internal/utils/logger"
)

// Fold parses lines from one source into b. Line numbers in the report are
// 1-based. Blank lines are counted and skipped.
// Fold 将单个来源的行解析进 Builder。
func Fold(p *entry.Parser, b *store.Builder, source string, lines []string, report *Report) {
	for i, line := range lines {
		n := i + 1
		report.Lines++
		if strings.TrimSpace(line) == "" {
			report.Blank++
			metrics.IngestLinesTotal.WithLabelValues(metrics.ResultBlank).Inc()
			continue
		}

		e, err := p.Parse(line)
		if err != nil {
			report.fail(source, n, line, err)
			metrics.IngestLinesTotal.WithLabelValues(metrics.ResultFailed).Inc()
			continue
		}
		if !e.Timestamp().Valid() {
			report.warn(source, n, line, e.Timestamp().Err())
			metrics.IngestLinesTotal.WithLabelValues(metrics.ResultWarning).Inc()
		}
		b.Add(e)
		report.Parsed++
		metrics.IngestLinesTotal.WithLabelValues(metrics.ResultOK).Inc()
	}
}

// Ingester discovers, reads and parses log files into a Store.
type Ingester struct {
	parser  *entry.Parser
	pattern string
	workers int
}

// Option configures an Ingester.
type Option func(*Ingester)

func WithParser(p *entry.Parser) Option {
	return func(in *Ingester) {
		if p != nil {
			in.parser = p
		}
	}
}

func WithPattern(pattern string) Option {
	return func(in *Ingester) {
		if pattern != "" {
			in.pattern = pattern
		}
	}
}

// WithWorkers bounds the number of files read concurrently.
func WithWorkers(n int) Option {
	return func(in *Ingester) {
		if n > 0 {
			in.workers = n
		}
	}
}

func NewIngester(opts ...Option) *Ingester {
	in := &Ingester{
		parser:  entry.NewParser(),
		pattern: DefaultPattern,
		workers: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Parser returns the parser entries are read with.
func (in *Ingester) Parser() *entry.Parser {
	return in.parser
}

type fileResult struct {
	lines []string
	err   error
}

// Run ingests every matching file under root. Files are read concurrently
// but folded in discovery order, so the resulting Store is deterministic.
// Unreadable files are recorded in the report; only discovery failure or
// context cancellation returns an error.
// Run 导入 root 下所有匹配的文件。文件并发读取，按发现顺序顺序折叠。
func (in *Ingester) Run(ctx context.Context, root string) (*store.Store, *Report, error) {
	log := logger.Get(ctx)

	files, err := Discover(root, in.pattern)
	if err != nil {
		return nil, nil, err
	}
	log.Debugf("[INGEST] %d files match %s under %s", len(files), in.pattern, root)

	results := make([]fileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(in.workers)
	for i, path := range files {
		g.Go(func() error {
			lines, err := ReadLines(gctx, path)
			if err != nil && gctx.Err() != nil {
				return gctx.Err()
			}
			results[i] = fileResult{lines: lines, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	report := &Report{Files: len(files)}
	b := store.NewBuilder()
	for i, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		res := results[i]
		if res.err != nil {
			log.Warnf("[INGEST] skipping %s: %v", path, res.err)
			report.FileErrors = append(report.FileErrors, FileError{Path: path, Err: res.err})
			metrics.IngestFilesTotal.WithLabelValues(metrics.ResultFailed).Inc()
			continue
		}
		failed := report.Failed()
		Fold(in.parser, b, path, res.lines, report)
		if n := report.Failed() - failed; n > 0 {
			log.Warnf("[INGEST] %s: %d lines rejected", path, n)
		}
		metrics.IngestFilesTotal.WithLabelValues(metrics.ResultOK).Inc()
	}

	s := b.Build()
	metrics.StoreEntries.Set(float64(s.Len()))
	log.Infof("[INGEST] %d entries from %d files (%d lines, %d rejected, %d undated, %d unreadable files)",
		s.Len(), report.Files, report.Lines, report.Failed(), len(report.Warnings), len(report.FileErrors))
	return s, report, nil
}
