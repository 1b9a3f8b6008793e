package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result label values.
const (
	ResultOK       = "ok"
	ResultFailed   = "failed"
	ResultBlank    = "blank"
	ResultWarning  = "warning"
	ResultDeclined = "declined"
)

var (
	// Ingestion metrics
	IngestFilesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logscope_ingest_files_total",
			Help: "Log files processed by ingestion, by result",
		},
		[]string{"result"},
	)
	IngestLinesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logscope_ingest_lines_total",
			Help: "Raw lines seen by ingestion, by result",
		},
		[]string{"result"},
	)

	// Store metrics
	StoreEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "logscope_store_entries",
			Help: "Number of entries in the most recently built store",
		},
	)

	// Query metrics
	QueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logscope_queries_total",
			Help: "Query language executions, by result",
		},
		[]string{"result"},
	)
	QueryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "logscope_query_duration_seconds",
			Help:    "Time spent executing query language statements",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
	)
)
