package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	_ "time/tzdata"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/livp123/logscope/internal/config"
	"github.com/livp123/logscope/internal/version"
)

const sampleLog = "127.0.0.1\tAmigo\t30.08.2012 16:08:13\tLOGIN\tOK\n" +
	"127.0.0.1\tAmigo\t02.01.2028 10:00:00\tLOGIN\tOK\n" +
	"192.168.100.2\tVasya Pupkin\t15.01.2028 12:00:00\tLOGIN\tFAILED\n" +
	"120.120.120.122\tAmigo\t29.2.2028 5:4:7\tATTEMPT_TASK 18\tOK\n" +
	"120.120.120.122\tAmigo\t01.03.2028 5:4:7\tCOMPLETE_TASK 18\tOK\n" +
	"\n" +
	"garbage line\n"

// executeCommand executes a cobra command and returns output.
// executeCommand 执行 cobra 命令并返回输出。
func executeCommand(cmd *cobra.Command, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// newWorkspace writes a log tree and a config pointing at it.
// newWorkspace 写入日志目录以及指向它的配置文件。
func newWorkspace(t *testing.T, extra string) string {
	t.Helper()
	dir := t.TempDir()
	logs := filepath.Join(dir, "logs")
	require.NoError(t, os.MkdirAll(filepath.Join(logs, "app"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(logs, "app", "events.log"), []byte(sampleLog), 0644))

	cfg := "ingest:\n  root: " + logs + "\n  workers: 2\nlogging:\n  level: error\n" + extra
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))
	return path
}

// TestRootCommandHelp tests root command help output.
// TestRootCommandHelp 测试根命令帮助输出。
func TestRootCommandHelp(t *testing.T) {
	output, err := executeCommand(NewRootCmd(), "--help")
	assert.NoError(t, err)
	assert.Contains(t, output, "logscope")
	assert.Contains(t, output, "Available Commands:")
	for _, name := range []string{"init", "ingest", "query", "select", "stats", "version"} {
		assert.Contains(t, output, name)
	}
}

func TestInvalidCommand(t *testing.T) {
	_, err := executeCommand(NewRootCmd(), "frobnicate")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	output, err := executeCommand(NewRootCmd(), "version")
	require.NoError(t, err)
	assert.Equal(t, version.String()+"\n", output)
}

func TestQueryCommand(t *testing.T) {
	cfg := newWorkspace(t, "")

	output, err := executeCommand(NewRootCmd(), "-c", cfg, "query", `get ip for user = "Amigo"`)
	require.NoError(t, err)
	assert.Equal(t, "120.120.120.122\n127.0.0.1\n", output)

	output, err = executeCommand(NewRootCmd(), "-c", cfg, "query",
		`get user for event = "LOGIN" and date between "01.01.2028 00:00:00" and "31.01.2028 23:59:59"`)
	require.NoError(t, err)
	assert.Equal(t, "Amigo\nVasya Pupkin\n", output)
}

func TestQueryCommand_TimeFormat(t *testing.T) {
	cfg := newWorkspace(t, "output:\n  time_format: \"%Y-%m-%d %H:%M:%S\"\n")

	output, err := executeCommand(NewRootCmd(), "-c", cfg, "query", `get date for event = "ATTEMPT_TASK"`)
	require.NoError(t, err)
	assert.Equal(t, "2028-02-29 05:04:07\n", output)
}

func TestQueryCommand_Location(t *testing.T) {
	cfg := newWorkspace(t, "")
	data, err := os.ReadFile(cfg)
	require.NoError(t, err)
	tokyo := strings.Replace(string(data), "  workers: 2\n", "  workers: 2\n  location: Asia/Tokyo\n", 1)
	require.NoError(t, os.WriteFile(cfg, []byte(tokyo), 0644))

	output, err := executeCommand(NewRootCmd(), "-c", cfg, "query", `get date for event = "ATTEMPT_TASK"`)
	require.NoError(t, err)
	assert.Equal(t, "29.02.2028 05:04:07\n", output)

	output, err = executeCommand(NewRootCmd(), "-c", cfg, "query", `get user for date = "29.02.2028 05:04:07"`)
	require.NoError(t, err)
	assert.Equal(t, "Amigo\n", output)
}

func TestQueryCommand_FileAndDeclined(t *testing.T) {
	cfg := newWorkspace(t, "")
	file := filepath.Join(t.TempDir(), "queries.txt")
	content := "# statements\nget status\nget ip for ip = \"127.0.0.1\"\nget event for user = \"Vasya Pupkin\"\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0644))

	output, err := executeCommand(NewRootCmd(), "-c", cfg, "query", "--file", file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 3 statements declined")
	assert.Contains(t, output, "> get status\nFAILED\nOK\n")
	assert.Contains(t, output, "declined: get ip for ip")
	assert.Contains(t, output, "> get event for user = \"Vasya Pupkin\"\nLOGIN\n")
}

func TestQueryCommand_NoStatements(t *testing.T) {
	cfg := newWorkspace(t, "")
	_, err := executeCommand(NewRootCmd(), "-c", cfg, "query")
	assert.Error(t, err)
}

func TestIngestCommand(t *testing.T) {
	cfg := newWorkspace(t, "")

	output, err := executeCommand(NewRootCmd(), "-c", cfg, "ingest", "--failures")
	require.NoError(t, err)
	assert.Contains(t, output, "Files:       1 (0 unreadable)")
	assert.Contains(t, output, "Lines:       7")
	assert.Contains(t, output, "Parsed:      5")
	assert.Contains(t, output, "Blank:       1")
	assert.Contains(t, output, "Rejected:    1 (14.29%)")
	assert.Contains(t, output, "events.log:7: malformed log line")
}

func TestIngestCommand_RootOverride(t *testing.T) {
	cfg := newWorkspace(t, "")

	output, err := executeCommand(NewRootCmd(), "-c", cfg, "--root", t.TempDir(), "ingest")
	require.NoError(t, err)
	assert.Contains(t, output, "Files:       0")

	_, err = executeCommand(NewRootCmd(), "-c", cfg, "--root", filepath.Join(t.TempDir(), "missing"), "ingest")
	assert.Error(t, err)
}

func TestIngestCommand_PatternOverrideBeforeValidation(t *testing.T) {
	cfg := newWorkspace(t, "")
	data, err := os.ReadFile(cfg)
	require.NoError(t, err)
	broken := strings.Replace(string(data), "  workers: 2\n", "  workers: 2\n  pattern: \"[a-\"\n", 1)
	require.NoError(t, os.WriteFile(cfg, []byte(broken), 0644))

	_, err = executeCommand(NewRootCmd(), "-c", cfg, "ingest")
	assert.Error(t, err)

	output, err := executeCommand(NewRootCmd(), "-c", cfg, "--pattern", "**/*.log", "ingest")
	require.NoError(t, err)
	assert.Contains(t, output, "Parsed:      5")
}

func TestSelectCommand(t *testing.T) {
	cfg := newWorkspace(t, "")

	output, err := executeCommand(NewRootCmd(), "-c", cfg, "select",
		"--where", `User == "Amigo" && HasTask`, "--after", "01.03.2028 00:00:00")
	require.NoError(t, err)
	assert.Equal(t, "120.120.120.122\tAmigo\t01.03.2028 05:04:07\tCOMPLETE_TASK 18\tOK\n", output)

	_, err = executeCommand(NewRootCmd(), "-c", cfg, "select", "--where", "User ==")
	assert.Error(t, err)

	_, err = executeCommand(NewRootCmd(), "-c", cfg, "select", "--after", "tomorrow")
	assert.Error(t, err)
}

func TestStatsCommand(t *testing.T) {
	cfg := newWorkspace(t, "")

	output, err := executeCommand(NewRootCmd(), "-c", cfg, "stats")
	require.NoError(t, err)
	assert.Contains(t, output, "Entries:     5")
	assert.Contains(t, output, "Earliest:    30.08.2012 16:08:13")
	assert.Contains(t, output, "Attempts:\n - task 18     1\n")
	assert.Contains(t, output, "Completions:\n - task 18     1\n")

	output, err = executeCommand(NewRootCmd(), "-c", cfg, "stats", "--before", "01.01.2020 00:00:00")
	require.NoError(t, err)
	assert.Contains(t, output, "Entries:     1")
	assert.Contains(t, output, "Attempts:\n - none\n")
}

func TestInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "etc", "config.yaml")

	output, err := executeCommand(NewRootCmd(), "init", path)
	require.NoError(t, err)
	assert.Contains(t, output, path)

	_, err = config.Load(path)
	require.NoError(t, err)

	_, err = executeCommand(NewRootCmd(), "init", path)
	assert.Error(t, err, "refuses to overwrite")

	_, err = executeCommand(NewRootCmd(), "init", "--force", path)
	assert.NoError(t, err)
}

func TestMetricsTextfile(t *testing.T) {
	prom := filepath.Join(t.TempDir(), "logscope.prom")
	cfg := newWorkspace(t, "metrics:\n  textfile_enabled: true\n  textfile_path: "+prom+"\n")

	_, err := executeCommand(NewRootCmd(), "-c", cfg, "query", "get event")
	require.NoError(t, err)

	data, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "logscope_store_entries 5"))
}

func TestMissingExplicitConfig(t *testing.T) {
	_, err := executeCommand(NewRootCmd(), "-c", filepath.Join(t.TempDir(), "none.yaml"), "ingest")
	assert.Error(t, err)
}
