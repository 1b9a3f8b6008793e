package config

import (
	"fmt"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/lestrrat-go/strftime"

	lserrors "github.com/livp123/logscope/pkg/errors"
)

// Validate checks the configuration for errors.
// Validate 检查配置是否存在错误。
func (c *Config) Validate() error {
	if err := c.Ingest.Validate(); err != nil {
		return fmt.Errorf("ingest config error: %w", err)
	}
	if err := c.Output.Validate(); err != nil {
		return fmt.Errorf("output config error: %w", err)
	}
	if err := c.Metrics.Validate(); err != nil {
		return fmt.Errorf("metrics config error: %w", err)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging config error: %w", lserrors.NewConfigError("logging.level", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging config error: %w", lserrors.NewConfigError("logging.format", c.Logging.Format))
	}
	return nil
}

func (c *IngestConfig) Validate() error {
	if c.Workers <= 0 {
		return lserrors.NewConfigError("ingest.workers", c.Workers)
	}
	if c.Pattern == "" || !doublestar.ValidatePattern(c.Pattern) {
		return lserrors.NewConfigError("ingest.pattern", c.Pattern)
	}
	if c.Location != "" {
		if _, err := time.LoadLocation(c.Location); err != nil {
			return fmt.Errorf("%w: %v", lserrors.NewConfigError("ingest.location", c.Location), err)
		}
	}
	return nil
}

func (c *OutputConfig) Validate() error {
	if c.TimeFormat == "" {
		return lserrors.NewConfigError("output.time_format", c.TimeFormat)
	}
	if _, err := strftime.New(c.TimeFormat); err != nil {
		return fmt.Errorf("%w: %v", lserrors.NewConfigError("output.time_format", c.TimeFormat), err)
	}
	return nil
}

func (c *MetricsConfig) Validate() error {
	if c.TextfileEnabled && c.TextfilePath == "" {
		return lserrors.NewConfigError("metrics.textfile_path", c.TextfilePath)
	}
	return nil
}
