package groupers

import (
	"testing"

	"integration-audit/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseAll(raws ...string) []models.LogRecord {
	records := make([]models.LogRecord, 0, len(raws))
	for _, raw := range raws {
		records = append(records, models.ParseLogRecord([]byte(raw)))
	}
	return records
}

func changeTypes(records []models.LogRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ChangeType+"("+r.Date+")")
	}
	return out
}

func TestGroup_ServiceAndAppScenario(t *testing.T) {
	t.Parallel()

	records := parseAll(
		`{"service_id":"A","change_type":"added","date":"1"}`,
		`{"service_id":"A","change_type":"removed","date":"2"}`,
		`{"app_id":"B","change_type":"added","date":"1"}`,
	)

	groupings := NewGrouper().Group(records)

	assert.Equal(t, []string{"A"}, groupings.Services.IDs)
	assert.Equal(t, []string{"added(1)", "removed(2)"}, changeTypes(groupings.Services.Records["A"]))
	assert.Equal(t, []string{"B"}, groupings.Apps.IDs)
	assert.Equal(t, []string{"added(1)"}, changeTypes(groupings.Apps.Records["B"]))
	assert.Empty(t, groupings.Unclassified)
	assert.Equal(t, 2, groupings.IdentityCount())
}

func TestGroup_SortsByDateWithinIdentity(t *testing.T) {
	t.Parallel()

	records := parseAll(
		`{"service_id":"S","change_type":"updated","date":"1392163300"}`,
		`{"service_id":"S","change_type":"added","date":"999999999"}`,
		`{"service_id":"S","change_type":"removed","date":"1392163400"}`,
	)

	groupings := NewGrouper().Group(records)

	assert.Equal(t, []string{"added(999999999)", "updated(1392163300)", "removed(1392163400)"},
		changeTypes(groupings.Services.Records["S"]))
	latest, ok := groupings.Services.Latest("S")
	require.True(t, ok)
	assert.Equal(t, "removed", latest.ChangeType)
}

func TestGroup_EqualDatesKeepInputOrder(t *testing.T) {
	t.Parallel()

	records := parseAll(
		`{"app_id":"X","change_type":"first","date":"5"}`,
		`{"app_id":"X","change_type":"second","date":"5"}`,
		`{"app_id":"X","change_type":"third","date":"5"}`,
	)

	groupings := NewGrouper().Group(records)

	assert.Equal(t, []string{"first(5)", "second(5)", "third(5)"}, changeTypes(groupings.Apps.Records["X"]))
}

func TestGroup_IdentitiesAscending(t *testing.T) {
	t.Parallel()

	records := parseAll(
		`{"service_id":"c","date":"1"}`,
		`{"service_id":"a","date":"1"}`,
		`{"service_id":"b","date":"1"}`,
		`{"service_id":"a","date":"2"}`,
	)

	groupings := NewGrouper().Group(records)

	assert.Equal(t, []string{"a", "b", "c"}, groupings.Services.IDs)
	assert.Len(t, groupings.Services.Records["a"], 2)
}

func TestGroup_PartitionIsExhaustiveAndDisjoint(t *testing.T) {
	t.Parallel()

	records := parseAll(
		`{"service_id":"S1","app_id":"A1","change_type":"added","date":"1"}`,
		`{"app_id":"A1","change_type":"added","date":"2"}`,
		`{"user_id":"U1","change_type":"added","date":"3"}`,
		`{"service_id":"S2","date":"4"}`,
		`{"reason":"no identity"}`,
	)

	groupings := NewGrouper().Group(records)

	total := len(groupings.Unclassified)
	for _, group := range groupings.Groups() {
		for _, id := range group.IDs {
			total += len(group.Records[id])
		}
	}
	assert.Equal(t, len(records), total)

	// The record carrying both keys is grouped under its service id only.
	assert.Equal(t, []string{"S1", "S2"}, groupings.Services.IDs)
	require.Len(t, groupings.Apps.Records["A1"], 1)
	assert.Equal(t, "2", groupings.Apps.Records["A1"][0].Date)
	assert.Len(t, groupings.Unclassified, 2)
}

func TestGroup_UnclassifiedKeepInputOrder(t *testing.T) {
	t.Parallel()

	records := parseAll(`{"n":2}`, `{"service_id":"S"}`, `{"n":1}`)

	groupings := NewGrouper().Group(records)

	require.Len(t, groupings.Unclassified, 2)
	assert.JSONEq(t, `{"n":2}`, string(groupings.Unclassified[0].Raw))
	assert.JSONEq(t, `{"n":1}`, string(groupings.Unclassified[1].Raw))
}

func TestGroup_Empty(t *testing.T) {
	t.Parallel()

	for _, input := range [][]models.LogRecord{nil, {}} {
		groupings := NewGrouper().Group(input)
		assert.Equal(t, 0, groupings.Services.Len())
		assert.Equal(t, 0, groupings.Apps.Len())
		assert.NotNil(t, groupings.Unclassified)
		assert.Empty(t, groupings.Unclassified)
	}
}

func TestGroup_Idempotent(t *testing.T) {
	t.Parallel()

	records := parseAll(
		`{"service_id":"B","date":"3"}`,
		`{"app_id":"Z","date":"1"}`,
		`{"service_id":"A","date":"2"}`,
		`{"service_id":"B","date":"1"}`,
		`{"x":1}`,
	)
	snapshot := append([]models.LogRecord(nil), records...)

	first := NewGrouper().Group(records)
	second := NewGrouper().Group(records)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, records)
}
