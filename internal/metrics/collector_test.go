package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCounters verifies the collectors are registered and count.
// TestCounters 验证采集器已注册且可计数。
func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(IngestLinesTotal.WithLabelValues(ResultOK))
	IngestLinesTotal.WithLabelValues(ResultOK).Add(3)
	assert.Equal(t, before+3, testutil.ToFloat64(IngestLinesTotal.WithLabelValues(ResultOK)))

	StoreEntries.Set(42)
	assert.Equal(t, float64(42), testutil.ToFloat64(StoreEntries))

	QueryDuration.Observe(0.001)
	assert.Equal(t, 1, testutil.CollectAndCount(QueryDuration))
}

func TestWriteTextfile(t *testing.T) {
	QueriesTotal.WithLabelValues(ResultOK).Inc()

	path := filepath.Join(t.TempDir(), "nested", "logscope.prom")
	require.NoError(t, WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `logscope_queries_total{result="ok"}`))
	assert.True(t, strings.Contains(string(data), "logscope_store_entries"))
}
