package groupers

import (
	"sort"

	"integration-audit/internal/models"
)

//go:generate mockgen -source=grouper.go -destination=./mocks/grouper_mock.go -package=mocks
type Grouper interface {
	// Group partitions records into service and app groupings plus the unclassified leftovers.
	// It never fails and does not modify records.
	Group(records []models.LogRecord) *models.Groupings
}

type grouper struct{}

func NewGrouper() Grouper {
	return &grouper{}
}

func (g *grouper) Group(records []models.LogRecord) *models.Groupings {
	groupings := &models.Groupings{
		Services:     models.NewIntegrationGroup(models.KindService),
		Apps:         models.NewIntegrationGroup(models.KindApp),
		Unclassified: []models.LogRecord{},
	}

	// Accumulate per identity, keeping input order inside each bucket.
	for _, record := range records {
		switch record.Kind {
		case models.KindService:
			appendRecord(groupings.Services, record)
		case models.KindApp:
			appendRecord(groupings.Apps, record)
		default:
			groupings.Unclassified = append(groupings.Unclassified, record)
		}
	}

	for _, group := range groupings.Groups() {
		sortGroup(group)
		metricRecordsGroupedTotal.WithLabelValues(group.Kind.String()).Add(float64(countRecords(group)))
	}
	metricRecordsGroupedTotal.WithLabelValues(models.KindUnclassified.String()).Add(float64(len(groupings.Unclassified)))

	return groupings
}

func appendRecord(group *models.IntegrationGroup, record models.LogRecord) {
	id := record.IntegrationID
	if _, seen := group.Records[id]; !seen {
		group.IDs = append(group.IDs, id)
	}
	group.Records[id] = append(group.Records[id], record)
}

// sortGroup orders identities ascending and each identity's records by ascending date.
// Records with equal dates keep their input order.
func sortGroup(group *models.IntegrationGroup) {
	sort.Strings(group.IDs)
	for _, id := range group.IDs {
		records := group.Records[id]
		sort.SliceStable(records, func(i, j int) bool {
			return models.CompareDates(records[i].Date, records[j].Date) < 0
		})
	}
}

func countRecords(group *models.IntegrationGroup) int {
	n := 0
	for _, records := range group.Records {
		n += len(records)
	}
	return n
}
