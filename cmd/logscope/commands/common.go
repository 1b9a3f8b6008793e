package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"time"

	"github.com/livp123/logscope/internal/config"
	"github.com/livp123/logscope/internal/entry"
	"github.com/livp123/logscope/internal/ingest"
	"github.com/livp123/logscope/internal/query"
	"github.com/livp123/logscope/internal/runtime"
	"github.com/livp123/logscope/internal/utils/logger"
)

type configKey struct{}

func withConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

func configFrom(ctx context.Context) *config.Config {
	cfg, _ := ctx.Value(configKey{}).(*config.Config)
	return cfg
}

// loadConfig reads the configured file. A missing file at the default path
// falls back to defaults; a missing file given with --config is an error.
// Command line overrides are applied before the single validation pass.
func loadConfig(ctx context.Context) (*config.Config, error) {
	path := runtime.ConfigPath
	explicit := path != ""
	if !explicit {
		path = config.DefaultConfigPath
	}

	cfg, err := config.Read(path)
	switch {
	case err == nil:
	case !explicit && errors.Is(err, fs.ErrNotExist):
		logger.Get(ctx).Debugf("[CONFIG] %s not found, using defaults", path)
		cfg = config.Defaults()
	default:
		return nil, err
	}

	if runtime.Root != "" {
		cfg.Ingest.Root = runtime.Root
	}
	if runtime.Pattern != "" {
		cfg.Ingest.Pattern = runtime.Pattern
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// session is an ingested store ready for querying.
type session struct {
	cfg    *config.Config
	parser *entry.Parser
	engine *query.Engine
	report *ingest.Report
}

// openSession ingests the configured root.
// openSession 导入配置的根目录。
func openSession(ctx context.Context) (*session, error) {
	cfg := configFrom(ctx)
	if cfg == nil {
		cfg = config.Defaults()
	}
	loc, err := cfg.TimeLocation()
	if err != nil {
		return nil, err
	}

	parser := entry.NewParser(entry.WithLocation(loc))
	in := ingest.NewIngester(
		ingest.WithParser(parser),
		ingest.WithPattern(cfg.Ingest.Pattern),
		ingest.WithWorkers(cfg.Ingest.Workers),
	)
	s, report, err := in.Run(ctx, cfg.Ingest.Root)
	if err != nil {
		return nil, err
	}
	return &session{cfg: cfg, parser: parser, engine: query.New(s), report: report}, nil
}

func (s *session) printer(w io.Writer) (*printer, error) {
	return newPrinter(w, s.cfg.Output.TimeFormat, s.parser.Location())
}

// timeRange builds a TimeRange from --after/--before values. Empty means open.
func (s *session) timeRange(after, before string) (query.TimeRange, error) {
	lo, err := s.bound(after)
	if err != nil {
		return query.TimeRange{}, err
	}
	hi, err := s.bound(before)
	if err != nil {
		return query.TimeRange{}, err
	}
	return query.Range(lo, hi), nil
}

func (s *session) bound(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	ts, err := s.parser.ParseTimestamp(raw)
	if err != nil {
		return nil, err
	}
	t, _ := ts.Time()
	return &t, nil
}
