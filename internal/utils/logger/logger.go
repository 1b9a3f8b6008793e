package logger

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type contextKey string

const LoggerKey = contextKey("logger")

var (
	globalLogger *zap.SugaredLogger

	fallbackOnce   sync.Once
	fallbackLogger *zap.SugaredLogger
)

// Init initializes the global logger. Output goes to stderr unless a
// rotating log file is configured, keeping stdout for command results.
// Init 初始化全局日志记录器。默认输出到 stderr，stdout 保留给命令结果。
func Init(cfg LoggingConfig) error {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return err
	}

	writeSyncer := zapcore.AddSync(os.Stderr)
	if cfg.Enabled && cfg.Path != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		writeSyncer = zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.Path,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		})
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	var encoder zapcore.Encoder
	switch cfg.Format {
	case "", "console":
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	case "json":
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	default:
		return fmt.Errorf("invalid log format %q", cfg.Format)
	}

	core := zapcore.NewCore(encoder, writeSyncer, level)
	globalLogger = zap.New(core, zap.AddCaller()).Sugar()

	globalLogger.Debugf("[LOG] Logging initialized (Level: %s, Path: %s)", level, cfg.Path)
	return nil
}

// parseLevel accepts debug, info, warn and error. Empty means info.
func parseLevel(s string) (zapcore.Level, error) {
	if s == "" {
		return zapcore.InfoLevel, nil
	}
	level, err := zapcore.ParseLevel(s)
	if err != nil {
		return level, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

// Sync flushes any buffered log entries.
// Sync 刷新所有缓存的日志条目。
func Sync() error {
	if globalLogger != nil {
		return globalLogger.Sync()
	}
	return nil
}

// Get returns the logger from context or global logger
// Get 从 Context 或全局日志记录器返回 Logger。
func Get(ctx context.Context) *zap.SugaredLogger {
	if ctx != nil {
		if logger, ok := ctx.Value(LoggerKey).(*zap.SugaredLogger); ok {
			return logger
		}
	}
	return Global()
}

// Global returns the logger set up by Init, or a development logger at info
// level before Init has run.
// Global 返回 Init 设置的全局日志记录器；Init 之前返回开发模式日志记录器。
func Global() *zap.SugaredLogger {
	if globalLogger != nil {
		return globalLogger
	}
	fallbackOnce.Do(func() {
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		l, err := cfg.Build()
		if err != nil {
			l = zap.NewNop()
		}
		fallbackLogger = l.Sugar()
	})
	return fallbackLogger
}

// WithContext adds logger to context
// WithContext 将 Logger 添加到 Context。
func WithContext(ctx context.Context, logger *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, LoggerKey, logger)
}
