package slack

import (
	"integration-audit/internal/shared/metrics"
)

var (
	metricAPIRequestsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSlack,
			Name:      "api_requests_total",
		},
		[]string{"method", metrics.FieldErrorCode},
	)

	metricAPIRequestDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSlack,
			Name:      "api_request_latency",
			Buckets:   metrics.DefBuckets,
		},
		[]string{"method"},
	)

	metricLogRecordsFetchedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSlack,
			Name:      "log_records_fetched_total",
		},
		[]string{"kind"},
	)
)
