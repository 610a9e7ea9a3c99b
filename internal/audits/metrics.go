package audits

import (
	"integration-audit/internal/shared/metrics"
)

var (
	metricAuditRunsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Name:      "audit_runs_total",
		},
		[]string{"format", metrics.FieldErrorCode},
	)

	metricUnclassifiedRecords = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Name:      "unclassified_records_total",
		},
		[]string{"format"},
	)
)
