package groupers

import (
	"integration-audit/internal/shared/metrics"
)

var (
	metricRecordsGroupedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubGrouping,
			Name:      "records_grouped_total",
		},
		[]string{"kind"},
	)
)
