package slack_test

import (
	"context"
	"errors"
	"testing"

	"integration-audit/internal/models"
	"integration-audit/internal/shared/svcerrors"
	"integration-audit/internal/slack"
	slackmocks "integration-audit/internal/slack/mocks"
	"integration-audit/internal/slack/slacktest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFetchAll_WalksEveryPageInOrder(t *testing.T) {
	t.Parallel()

	server := slacktest.NewServer()
	defer server.Close()
	server.LogPages["U1"] = []string{
		`[{"service_id":"1","date":"1"},{"service_id":"2","date":"2"}]`,
		`[{"app_id":"A1","date":"3"}]`,
		`[{"service_id":"3","date":"4"}]`,
	}

	fetcher := slack.NewFetcher(newTestClient(t, server, server.Token))
	records, err := fetcher.FetchAll(context.Background(), "U1")

	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"1", "2", "A1", "3"}, []string{
		records[0].IntegrationID, records[1].IntegrationID, records[2].IntegrationID, records[3].IntegrationID,
	})

	requests := server.Requests(slack.MethodIntegrationLogs)
	require.Len(t, requests, 3)
	for i, req := range requests {
		assert.Equal(t, []string{"1", "2", "3"}[i], req.Query.Get("page"))
	}
}

func TestFetchAll_SinglePage(t *testing.T) {
	t.Parallel()

	server := slacktest.NewServer()
	defer server.Close()
	server.LogPages["U1"] = []string{`[{"service_id":"1","date":"1"}]`}

	fetcher := slack.NewFetcher(newTestClient(t, server, server.Token))
	records, err := fetcher.FetchAll(context.Background(), "U1")

	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Len(t, server.Requests(slack.MethodIntegrationLogs), 1)
}

func TestFetchAll_NoHistory(t *testing.T) {
	t.Parallel()

	server := slacktest.NewServer()
	defer server.Close()

	fetcher := slack.NewFetcher(newTestClient(t, server, server.Token))
	records, err := fetcher.FetchAll(context.Background(), "U-unknown")

	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
	assert.Len(t, server.Requests(slack.MethodIntegrationLogs), 1)
}

func TestFetchAll_FailedPageFailsWholeFetch(t *testing.T) {
	t.Parallel()

	server := slacktest.NewServer()
	defer server.Close()
	server.LogPages["U1"] = []string{`[{"service_id":"1"}]`, `[{"service_id":"2"}]`, `[{"service_id":"3"}]`}
	server.FailPage = 2

	fetcher := slack.NewFetcher(newTestClient(t, server, server.Token))
	records, err := fetcher.FetchAll(context.Background(), "U1")

	require.Error(t, err)
	assert.Nil(t, records)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "SLACK_1000", svcErr.Code)
	assert.Contains(t, svcErr.Message, "internal_error")
	assert.Len(t, server.Requests(slack.MethodIntegrationLogs), 2)
}

func TestFetchAll_FollowsPageCountOfEachResponse(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := slackmocks.NewMockClient(ctrl)
	first := models.ParseLogRecord([]byte(`{"service_id":"1"}`))
	second := models.ParseLogRecord([]byte(`{"service_id":"2"}`))

	gomock.InOrder(
		client.EXPECT().IntegrationLogs(gomock.Any(), "U1", 1).
			Return(&slack.IntegrationLogsPage{Logs: []models.LogRecord{first}, Pages: 3}, nil),
		client.EXPECT().IntegrationLogs(gomock.Any(), "U1", 2).
			Return(&slack.IntegrationLogsPage{Logs: []models.LogRecord{second}, Pages: 2}, nil),
	)

	records, err := slack.NewFetcher(client).FetchAll(context.Background(), "U1")

	require.NoError(t, err)
	assert.Equal(t, []models.LogRecord{first, second}, records)
}

func TestFetchAll_ClientError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := slackmocks.NewMockClient(ctrl)
	boom := errors.New("boom")
	client.EXPECT().IntegrationLogs(gomock.Any(), "U1", 1).Return(nil, boom)

	records, err := slack.NewFetcher(client).FetchAll(context.Background(), "U1")

	assert.ErrorIs(t, err, boom)
	assert.Nil(t, records)
}
