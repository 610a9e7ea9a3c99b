package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogRecord_Classification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		raw        string
		expectKind RecordKind
		expectID   string
	}{
		{
			name:       "service record",
			raw:        `{"service_id":"1234","service_type":"RSS","change_type":"added","date":"1"}`,
			expectKind: KindService,
			expectID:   "1234",
		},
		{
			name:       "app record",
			raw:        `{"app_id":"A0B1","app_type":"Giphy","change_type":"added","date":"1"}`,
			expectKind: KindApp,
			expectID:   "A0B1",
		},
		{
			name:       "both keys classify as service",
			raw:        `{"service_id":"S1","app_id":"A1","change_type":"added","date":"1"}`,
			expectKind: KindService,
			expectID:   "S1",
		},
		{
			name:       "numeric service id",
			raw:        `{"service_id":98765,"change_type":"added","date":"1"}`,
			expectKind: KindService,
			expectID:   "98765",
		},
		{
			name:       "null service id falls through to app id",
			raw:        `{"service_id":null,"app_id":"A1"}`,
			expectKind: KindApp,
			expectID:   "A1",
		},
		{
			name:       "neither key",
			raw:        `{"change_type":"added","date":"1"}`,
			expectKind: KindUnclassified,
		},
		{
			name:       "not an object",
			raw:        `"just a string"`,
			expectKind: KindUnclassified,
		},
		{
			name:       "invalid json",
			raw:        `{broken`,
			expectKind: KindUnclassified,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			record := ParseLogRecord([]byte(tt.raw))
			assert.Equal(t, tt.expectKind, record.Kind)
			assert.Equal(t, tt.expectID, record.IntegrationID)
			assert.Equal(t, tt.raw, string(record.Raw))
		})
	}
}

func TestParseLogRecord_Fields(t *testing.T) {
	t.Parallel()

	record := ParseLogRecord([]byte(`{"service_id":"1","service_type":"RSS","change_type":"removed","channel":"C123","date":"1392163200","reason":"user"}`))

	assert.Equal(t, "removed", record.ChangeType)
	assert.Equal(t, "1392163200", record.Date)
	assert.Equal(t, "C123", record.Channel)
	assert.True(t, record.HasChannel)
	assert.True(t, record.HasServiceType)
	assert.False(t, record.HasAppType)
	assert.Equal(t, "RSS", record.IntegrationType())
}

func TestLogRecord_IntegrationType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "service type", raw: `{"service_id":"1","service_type":"RSS"}`, expected: "RSS"},
		{name: "app type", raw: `{"app_id":"1","app_type":"Giphy"}`, expected: "Giphy"},
		{name: "service type wins", raw: `{"app_id":"1","service_type":"RSS","app_type":"Giphy"}`, expected: "RSS"},
		{name: "neither", raw: `{"app_id":"1"}`, expected: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, ParseLogRecord([]byte(tt.raw)).IntegrationType())
		})
	}
}

func TestLogRecord_JSONKeepsRawEntry(t *testing.T) {
	t.Parallel()

	input := `[{"service_id":"1","date":"2","extra":{"nested":[1,2]}},{"user_id":"U1"}]`

	var records []LogRecord
	require.NoError(t, json.Unmarshal([]byte(input), &records))
	require.Len(t, records, 2)
	assert.Equal(t, KindService, records[0].Kind)
	assert.Equal(t, KindUnclassified, records[1].Kind)

	out, err := json.Marshal(records)
	require.NoError(t, err)
	assert.JSONEq(t, input, string(out))
}

func TestCompareDates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a, b     string
		expected int
	}{
		{name: "numeric less", a: "2", b: "10", expected: -1},
		{name: "numeric greater", a: "1392163200", b: "999999999", expected: 1},
		{name: "numeric equal", a: "5", b: "5.0", expected: 0},
		{name: "string fallback", a: "abc", b: "abd", expected: -1},
		{name: "mixed falls back to string", a: "10", b: "x", expected: -1},
		{name: "empty", a: "", b: "", expected: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, CompareDates(tt.a, tt.b))
		})
	}
}

func TestNewOutputFormatFromString(t *testing.T) {
	t.Parallel()

	for _, f := range OutputFormats {
		got, err := NewOutputFormatFromString(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	got, err := NewOutputFormatFromString(" CSV-Summary ")
	require.NoError(t, err)
	assert.Equal(t, FormatCSVSummary, got)
	assert.True(t, got.IsCSV())
	assert.False(t, FormatRaw.IsCSV())

	_, err = NewOutputFormatFromString("xml")
	assert.Error(t, err)
}
