package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/livp123/logscope/internal/utils/logger"
)

// Config is the logscope configuration file.
// Config 是 logscope 的配置文件结构。
type Config struct {
	Ingest  IngestConfig         `yaml:"ingest"`
	Output  OutputConfig         `yaml:"output"`
	Metrics MetricsConfig        `yaml:"metrics"`
	Logging logger.LoggingConfig `yaml:"logging"`
}

// IngestConfig controls log discovery and parsing.
// IngestConfig 控制日志发现与解析。
type IngestConfig struct {
	Root string `yaml:"root"`
	// Root: directory scanned recursively
	Pattern string `yaml:"pattern"`
	// Pattern: doublestar glob relative to root
	Workers int `yaml:"workers"`
	// Workers: files read concurrently
	Location string `yaml:"location"`
	// Location: IANA time zone of log timestamps
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	TimeFormat string `yaml:"time_format"`
	// TimeFormat: strftime pattern for printed timestamps
}

// MetricsConfig controls the Prometheus textfile export.
type MetricsConfig struct {
	TextfileEnabled bool   `yaml:"textfile_enabled"`
	TextfilePath    string `yaml:"textfile_path"`
}

// Defaults returns the configuration used when no file is present.
// Defaults 返回无配置文件时使用的默认配置。
func Defaults() *Config {
	return &Config{
		Ingest: IngestConfig{
			Root:     DefaultRoot,
			Pattern:  DefaultPattern,
			Workers:  runtime.NumCPU(),
			Location: DefaultLocation,
		},
		Output: OutputConfig{
			TimeFormat: DefaultTimeFormat,
		},
		Metrics: MetricsConfig{
			TextfileEnabled: false,
			TextfilePath:    DefaultMetricsPath,
		},
		Logging: logger.LoggingConfig{
			Enabled:    false,
			Level:      "info",
			Format:     "console",
			Path:       "/var/log/logscope.log",
			MaxSize:    10, // 10MB
			MaxBackups: 3,
			MaxAge:     30, // 30 days
			Compress:   true,
		},
	}
}

// Read reads the YAML file at path over the defaults without validating, so
// callers can apply overrides first.
// Read 从 YAML 文件读取配置（在默认值之上），不进行验证。
func Read(path string) (*Config, error) {
	safePath := filepath.Clean(path) // Sanitize path to prevent directory traversal
	data, err := os.ReadFile(safePath)
	if err != nil {
		return nil, err
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", safePath, err)
	}
	return cfg, nil
}

// Load reads the YAML file at path over the defaults and validates the result.
// Load 从 YAML 文件加载配置（在默认值之上），并进行验证。
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// TimeLocation resolves Ingest.Location.
func (c *Config) TimeLocation() (*time.Location, error) {
	if c.Ingest.Location == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Ingest.Location)
}
