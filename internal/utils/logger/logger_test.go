package logger

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestInit tests logger initialization
// TestInit 测试日志初始化
func TestInit(t *testing.T) {
	require.NoError(t, Init(LoggingConfig{Enabled: false, Level: "warn"}))
	assert.NotNil(t, Global())
	assert.False(t, Global().Desugar().Core().Enabled(zap.InfoLevel))

	_ = Sync()
}

func TestInit_InvalidLevel(t *testing.T) {
	err := Init(LoggingConfig{Level: "loud"})
	assert.Error(t, err)
}

// TestInit_File writes through lumberjack into a nested directory.
// TestInit_File 通过 lumberjack 写入嵌套目录。
func TestInit_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "logscope.log")
	require.NoError(t, Init(LoggingConfig{Enabled: true, Level: "debug", Path: path, MaxSize: 1}))

	Get(context.Background()).Infow("ingest finished", "entries", 3)
	_ = Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ingest finished")

	globalLogger = nil
}

func TestInit_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logscope.log")
	require.NoError(t, Init(LoggingConfig{Enabled: true, Format: "json", Path: path}))

	Global().Infow("query executed", "target", "ip")
	_ = Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"query executed"`)
	assert.Contains(t, string(data), `"target":"ip"`)

	globalLogger = nil

	assert.Error(t, Init(LoggingConfig{Format: "xml"}))
}

// TestGet tests getting logger from context
// TestGet 测试从 context 获取 logger
func TestGet(t *testing.T) {
	saved := globalLogger
	globalLogger = nil
	defer func() { globalLogger = saved }()

	assert.NotNil(t, Global())
	assert.Same(t, Get(context.Background()), Global(), "fallback logger is cached")
}

// TestWithContext tests adding logger to context
// TestWithContext 测试将 logger 添加到 context
func TestWithContext(t *testing.T) {
	nop := zap.NewNop().Sugar()
	ctx := WithContext(context.Background(), nop)
	assert.Same(t, nop, Get(ctx))
	assert.NotSame(t, nop, Global(), "context logger does not replace the global one")
}
