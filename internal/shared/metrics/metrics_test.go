package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var metricTestRunsTotal = NewCounterVec(
	CounterOpts{
		Namespace: Namespace,
		Subsystem: "test",
		Name:      "runs_total",
	},
	[]string{FieldErrorCode},
)

func TestWriteTextfile(t *testing.T) {
	metricTestRunsTotal.WithLabelValues(ValueNoError).Inc()

	path := filepath.Join(t.TempDir(), "audit.prom")
	require.NoError(t, WriteTextfile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "integration_audit_test_runs_total")
}
