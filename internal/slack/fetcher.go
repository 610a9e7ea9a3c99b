package slack

import (
	"context"

	"integration-audit/internal/models"
	"integration-audit/internal/shared/loggers"
)

// Fetcher retrieves the complete integration log history of one user.
//
//go:generate mockgen -source=fetcher.go -destination=./mocks/fetcher_mock.go -package=mocks
type Fetcher interface {
	// FetchAll walks every page starting at page 1 and returns the records in server order.
	FetchAll(ctx context.Context, userID string) ([]models.LogRecord, error)
}

type fetcher struct {
	client Client
}

func NewFetcher(client Client) Fetcher {
	return &fetcher{client: client}
}

// FetchAll requests pages sequentially. The page count is re-read from every response, so the
// loop follows whatever the server reports; a single failed page fails the whole fetch.
func (f *fetcher) FetchAll(ctx context.Context, userID string) ([]models.LogRecord, error) {
	logger := loggers.Ctx(ctx)

	records := make([]models.LogRecord, 0)
	for page, pages := 1, 1; page <= pages; page++ {
		result, err := f.client.IntegrationLogs(ctx, userID, page)
		if err != nil {
			return nil, err
		}
		records = append(records, result.Logs...)
		pages = result.Pages

		logger.Debug().
			Int(loggers.FieldPage, page).
			Int(loggers.FieldPages, pages).
			Int("records", len(result.Logs)).
			Msg("fetched integration log page")
	}

	return records, nil
}
