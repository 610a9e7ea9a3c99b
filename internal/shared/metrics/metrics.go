package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	FieldErrorCode = "error_code"

	ValueNoError = ""

	Namespace   = "integration_audit"
	SubSlack    = "slack"
	SubGrouping = "grouping"
	SubExport   = "export"
)

// CounterOpts is a type alias for prometheus.CounterOpts.
type CounterOpts = prometheus.CounterOpts

// HistogramOpts is a type alias for prometheus.HistogramOpts.
type HistogramOpts = prometheus.HistogramOpts

// DefBuckets is a re-export of prometheus.DefBuckets.
var DefBuckets = prometheus.DefBuckets

// NewCounterVec creates a new CounterVec with the given CounterOpts and label names.
// It is automatically registered with the default prometheus registry.
var NewCounterVec = promauto.NewCounterVec

// NewHistogramVec creates a new HistogramVec with the given HistogramOpts and label names.
// It is automatically registered with the default prometheus registry.
var NewHistogramVec = promauto.NewHistogramVec

// WriteTextfile writes every metric of the default registry to path in the text exposition
// format, for pickup by a node_exporter textfile collector. The file is replaced atomically.
var WriteTextfile = func(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
