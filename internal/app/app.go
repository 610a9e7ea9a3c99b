package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"integration-audit/internal/audits"
	"integration-audit/internal/exporters"
	"integration-audit/internal/groupers"
	"integration-audit/internal/reports"
	"integration-audit/internal/shared/configs"
	"integration-audit/internal/shared/loggers"
	"integration-audit/internal/shared/metrics"
	"integration-audit/internal/shared/svcerrors"
	"integration-audit/internal/shared/ulid"
	"integration-audit/internal/slack"
)

const appName = "integration-audit"

// Options carries the per-invocation inputs that do not belong in the config file.
type Options struct {
	Token          string
	AllowOverwrite bool
	// LogWriter receives the JSON logs. Defaults to stderr.
	LogWriter io.Writer
}

// App holds all application dependencies for one audit run.
type App struct {
	config       *configs.Config
	appLogger    loggers.Logger
	auditService audits.AuditService
}

// New creates and initializes a new App instance.
func New(config *configs.Config, opts Options) (*App, error) {
	logWriter := opts.LogWriter
	if logWriter == nil {
		logWriter = os.Stderr
	}
	appLogger, err := loggers.NewWithWriter(config.Log.Level, logWriter)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, appName).
		Logger()

	// Initialize Web API client
	client, err := slack.NewClient(slack.Options{
		BaseURL: config.Slack.BaseURL,
		Token:   opts.Token,
		Timeout: time.Duration(config.Slack.Timeout) * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize slack client: %w", err)
	}

	// Initialize audit service
	auditService := audits.NewAuditService(
		slack.NewResolver(client),
		slack.NewFetcher(client),
		groupers.NewGrouper(),
		reports.NewReportGenerator(),
		exporters.NewExporter(exporters.Options{AllowOverwrite: opts.AllowOverwrite}),
	)

	return &App{
		config:       config,
		appLogger:    appLogger,
		auditService: auditService,
	}, nil
}

// Run executes one audit under a run-scoped logger. When a metrics textfile is configured it is
// written whether or not the audit succeeded.
func (app *App) Run(ctx context.Context, req audits.Request) (*audits.Result, error) {
	runLogger := app.appLogger.With().
		Str(loggers.FieldRunID, ulid.NewRunID()).
		Logger()
	ctx = runLogger.WithContext(ctx)

	runLogger.Info().
		Msgf("Starting integration audit (log_level=%s, api_url=%s, format=%s)",
			app.config.Log.Level,
			app.config.Slack.BaseURL,
			req.Format)

	result, err := app.auditService.Run(ctx, req)
	if err != nil {
		event := runLogger.Error().Err(err)
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			event = event.Str(loggers.FieldErrorCode, svcErr.Code)
			if svcErr.IsInternalError() {
				event = event.Str(loggers.FieldErrorStack, fmt.Sprintf("%+v", svcErr.Cause))
			}
		}
		event.Msg("integration audit failed")
	}

	if path := app.config.Metrics.TextfilePath; path != "" {
		if writeErr := metrics.WriteTextfile(path); writeErr != nil {
			runLogger.Warn().Err(writeErr).Str("metrics_file", path).Msg("failed to write metrics textfile")
		}
	}

	return result, err
}
