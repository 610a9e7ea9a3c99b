package reports

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"integration-audit/internal/models"
)

var (
	FullHeader    = []string{"integration_id", "change_type", "integration_type", "channel", "date"}
	SummaryHeader = []string{"should_check", "integration_id", "integration_type", "channel"}
)

// inactiveChangeTypes mark an integration that no longer needs review.
var inactiveChangeTypes = map[string]struct{}{
	"removed":  {},
	"disabled": {},
}

//go:generate mockgen -source=report_generator.go -destination=./mocks/report_generator_mock.go -package=mocks
type ReportGenerator interface {
	// Full emits one row per record: groups in order, identities ascending, records by date.
	Full(groupings *models.Groupings, domain string) []models.FullRow
	// Summary emits one row per identity, built from its latest record.
	Summary(groupings *models.Groupings, domain string) []models.SummaryRow
}

type reportGenerator struct{}

func NewReportGenerator() ReportGenerator {
	return &reportGenerator{}
}

func (g *reportGenerator) Full(groupings *models.Groupings, domain string) []models.FullRow {
	rows := make([]models.FullRow, 0)
	for _, group := range groupings.Groups() {
		for _, id := range group.IDs {
			for _, record := range group.Records[id] {
				rows = append(rows, models.FullRow{
					IntegrationID:   id,
					ChangeType:      record.ChangeType,
					IntegrationType: record.IntegrationType(),
					Channel:         ChannelURL(domain, record.Channel),
					Date:            record.Date,
				})
			}
		}
	}
	return rows
}

func (g *reportGenerator) Summary(groupings *models.Groupings, domain string) []models.SummaryRow {
	rows := make([]models.SummaryRow, 0, groupings.IdentityCount())
	for _, group := range groupings.Groups() {
		for _, id := range group.IDs {
			latest, ok := group.Latest(id)
			if !ok {
				continue
			}
			rows = append(rows, models.SummaryRow{
				ShouldCheck:     ShouldCheck(latest.ChangeType),
				IntegrationID:   id,
				IntegrationType: latest.IntegrationType(),
				Channel:         ChannelURL(domain, latest.Channel),
			})
		}
	}
	return rows
}

// ShouldCheck reports whether an integration whose latest change is changeType is still live.
func ShouldCheck(changeType string) bool {
	_, inactive := inactiveChangeTypes[changeType]
	return !inactive
}

// ChannelURL links a channel id in the workspace. An empty channel renders as "".
func ChannelURL(domain, channel string) string {
	if channel == "" {
		return ""
	}
	return fmt.Sprintf("https://%s.slack.com/messages/%s/", domain, channel)
}

func WriteFullCSV(w io.Writer, rows []models.FullRow) error {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, FullHeader)
	for _, row := range rows {
		records = append(records, []string{row.IntegrationID, row.ChangeType, row.IntegrationType, row.Channel, row.Date})
	}
	return writeCSV(w, records)
}

func WriteSummaryCSV(w io.Writer, rows []models.SummaryRow) error {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, SummaryHeader)
	for _, row := range rows {
		records = append(records, []string{strconv.FormatBool(row.ShouldCheck), row.IntegrationID, row.IntegrationType, row.Channel})
	}
	return writeCSV(w, records)
}

func writeCSV(w io.Writer, records [][]string) error {
	writer := csv.NewWriter(w)
	if err := writer.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}
