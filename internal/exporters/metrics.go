package exporters

import (
	"integration-audit/internal/shared/metrics"
)

var (
	metricExportsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubExport,
			Name:      "exports_total",
		},
		[]string{"format", metrics.FieldErrorCode},
	)

	metricExportedBytesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubExport,
			Name:      "exported_bytes_total",
		},
		[]string{"format"},
	)
)
