package models

// FullRow is one log record of one integration.
type FullRow struct {
	IntegrationID   string
	ChangeType      string
	IntegrationType string
	Channel         string
	Date            string
}

// SummaryRow is the latest known status of one integration.
type SummaryRow struct {
	ShouldCheck     bool
	IntegrationID   string
	IntegrationType string
	Channel         string
}
