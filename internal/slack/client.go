package slack

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"integration-audit/internal/models"
	"integration-audit/internal/shared/loggers"
	"integration-audit/internal/shared/metrics"
	"integration-audit/internal/shared/svcerrors"
)

// Web API methods used by the audit.
const (
	MethodIntegrationLogs = "team.integrationLogs"
	MethodLookupByEmail   = "users.lookupByEmail"
	MethodTeamInfo        = "team.info"
)

const DefaultBaseURL = "https://slack.com/api"

// IntegrationLogsPage is one page of team.integrationLogs.
type IntegrationLogsPage struct {
	Logs  []models.LogRecord
	Pages int
}

// Client calls the read-only Web API methods the audit needs. Every call is a single GET with
// the token in the query string; a response with "ok": false fails with the raw payload.
//
//go:generate mockgen -source=client.go -destination=./mocks/client_mock.go -package=mocks
type Client interface {
	IntegrationLogs(ctx context.Context, userID string, page int) (*IntegrationLogsPage, error)
	LookupUserByEmail(ctx context.Context, email string) (string, error)
	TeamDomain(ctx context.Context) (string, error)
}

// Options configures a Client. A zero Timeout leaves requests unbounded.
type Options struct {
	BaseURL    string
	Token      string
	Timeout    time.Duration
	HTTPClient *http.Client
}

type client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(opts Options) (Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid slack base url %q: %w", opts.BaseURL, err)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	return &client{
		baseURL:    baseURL,
		token:      opts.Token,
		httpClient: httpClient,
	}, nil
}

type apiResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

func (r *apiResponse) succeeded() bool { return r.OK }

type okReporter interface {
	succeeded() bool
}

type integrationLogsResponse struct {
	apiResponse
	Logs   []models.LogRecord `json:"logs"`
	Paging struct {
		Pages int `json:"pages"`
	} `json:"paging"`
}

type lookupByEmailResponse struct {
	apiResponse
	User struct {
		ID string `json:"id"`
	} `json:"user"`
}

type teamInfoResponse struct {
	apiResponse
	Team struct {
		Domain string `json:"domain"`
	} `json:"team"`
}

func (c *client) IntegrationLogs(ctx context.Context, userID string, page int) (*IntegrationLogsPage, error) {
	params := url.Values{}
	params.Set("user", userID)
	params.Set("page", strconv.Itoa(page))

	var resp integrationLogsResponse
	if err := c.call(ctx, MethodIntegrationLogs, params, &resp); err != nil {
		return nil, err
	}

	for _, record := range resp.Logs {
		metricLogRecordsFetchedTotal.WithLabelValues(record.Kind.String()).Inc()
	}

	return &IntegrationLogsPage{Logs: resp.Logs, Pages: resp.Paging.Pages}, nil
}

func (c *client) LookupUserByEmail(ctx context.Context, email string) (string, error) {
	params := url.Values{}
	params.Set("email", email)

	var resp lookupByEmailResponse
	if err := c.call(ctx, MethodLookupByEmail, params, &resp); err != nil {
		return "", err
	}
	return resp.User.ID, nil
}

func (c *client) TeamDomain(ctx context.Context) (string, error) {
	var resp teamInfoResponse
	if err := c.call(ctx, MethodTeamInfo, url.Values{}, &resp); err != nil {
		return "", err
	}
	return resp.Team.Domain, nil
}

// call performs one GET and decodes the body into out. Non-2xx statuses, undecodable bodies and
// "ok": false all fail with the raw payload.
func (c *client) call(ctx context.Context, method string, params url.Values, out okReporter) (err error) {
	start := time.Now()
	defer func() {
		errorCode := metrics.ValueNoError
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			errorCode = svcErr.Code
		}
		metricAPIRequestsTotal.WithLabelValues(method, errorCode).Inc()
		metricAPIRequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	}()

	params.Set("token", c.token)
	endpoint := c.baseURL + "/" + method + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errTransportFailed(method, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errTransportFailed(method, redactURLError(err))
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return errTransportFailed(method, err)
	}

	loggers.Ctx(ctx).Debug().
		Str(loggers.FieldEndpoint, method).
		Int("http_status", resp.StatusCode).
		Int64(loggers.FieldDuration, time.Since(start).Milliseconds()).
		Msg("slack api call completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errAPICallFailed(method, payload, fmt.Errorf("unexpected http status %d", resp.StatusCode))
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return errAPICallFailed(method, payload, err)
	}
	if !out.succeeded() {
		return errAPICallFailed(method, payload, errors.New("response not ok"))
	}
	return nil
}

// redactURLError drops the request URL, which carries the token, from transport errors.
func redactURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}
