package slack_test

import (
	"context"
	"testing"

	"integration-audit/internal/shared/svcerrors"
	"integration-audit/internal/slack"
	slackmocks "integration-audit/internal/slack/mocks"
	"integration-audit/internal/slack/slacktest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestResolveUserID(t *testing.T) {
	t.Parallel()

	server := slacktest.NewServer()
	defer server.Close()
	server.Users["jane@example.com"] = "U42"

	resolver := slack.NewResolver(newTestClient(t, server, server.Token))
	userID, err := resolver.ResolveUserID(context.Background(), "jane@example.com")

	require.NoError(t, err)
	assert.Equal(t, "U42", userID)

	requests := server.Requests(slack.MethodLookupByEmail)
	require.Len(t, requests, 1)
	assert.Equal(t, "jane@example.com", requests[0].Query.Get("email"))
}

func TestResolveUserID_EmptyID(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := slackmocks.NewMockClient(ctrl)
	client.EXPECT().LookupUserByEmail(gomock.Any(), "jane@example.com").Return("", nil)

	_, err := slack.NewResolver(client).ResolveUserID(context.Background(), "jane@example.com")

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "SLACK_1001", svcErr.Code)
}

func TestResolveDomain(t *testing.T) {
	t.Parallel()

	server := slacktest.NewServer()
	defer server.Close()
	server.Domain = "globex"

	resolver := slack.NewResolver(newTestClient(t, server, server.Token))
	domain, err := resolver.ResolveDomain(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "globex", domain)
}

func TestResolveDomain_Failure(t *testing.T) {
	t.Parallel()

	server := slacktest.NewServer()
	defer server.Close()
	server.Failures[slack.MethodTeamInfo] = "missing_scope"

	_, err := slack.NewResolver(newTestClient(t, server, server.Token)).ResolveDomain(context.Background())

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "SLACK_1002", svcErr.Code)
	assert.Contains(t, svcErr.Message, "missing_scope")
}

func TestResolveDomain_Empty(t *testing.T) {
	t.Parallel()

	server := slacktest.NewServer()
	defer server.Close()
	server.Domain = ""

	_, err := slack.NewResolver(newTestClient(t, server, server.Token)).ResolveDomain(context.Background())

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "SLACK_1002", svcErr.Code)
}
