package audits

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"integration-audit/internal/exporters"
	"integration-audit/internal/groupers"
	"integration-audit/internal/models"
	"integration-audit/internal/reports"
	"integration-audit/internal/shared/loggers"
	"integration-audit/internal/shared/metrics"
	"integration-audit/internal/shared/svcerrors"
	"integration-audit/internal/shared/validators"
	"integration-audit/internal/slack"
)

// Request names whose history to audit and where to put the output.
type Request struct {
	Email    string              `json:"email" validate:"required,email"`
	Format   models.OutputFormat `json:"format" validate:"required,oneof=raw csv-full csv-summary"`
	SavePath string              `json:"save_path" validate:"required"`
}

// Result is everything a run produced. Rows is the number of data rows written (records for the
// raw format).
type Result struct {
	UserID       string
	Records      []models.LogRecord
	Groupings    *models.Groupings
	Rows         int
	Unclassified []models.LogRecord
	Export       *exporters.ExportResult
}

type AuditService interface {
	// Run resolves the user, fetches their whole integration history, groups it and writes the
	// requested output.
	Run(ctx context.Context, req Request) (*Result, error)
}

type auditService struct {
	resolver        slack.Resolver
	fetcher         slack.Fetcher
	grouper         groupers.Grouper
	reportGenerator reports.ReportGenerator
	exporter        exporters.Exporter
	validate        *validators.Validate
}

func NewAuditService(resolver slack.Resolver, fetcher slack.Fetcher, grouper groupers.Grouper, reportGenerator reports.ReportGenerator, exporter exporters.Exporter) AuditService {
	return &auditService{
		resolver:        resolver,
		fetcher:         fetcher,
		grouper:         grouper,
		reportGenerator: reportGenerator,
		exporter:        exporter,
		validate:        validators.New(),
	}
}

func (s *auditService) Run(ctx context.Context, req Request) (result *Result, err error) {
	defer func() {
		errorCode := metrics.ValueNoError
		if err != nil {
			errorCode = errorCodeOf(err)
		}
		metricAuditRunsTotal.WithLabelValues(string(req.Format), errorCode).Inc()
	}()

	if err := s.validateRequest(&req); err != nil {
		return nil, err
	}

	logger := loggers.Ctx(ctx)
	logger.Debug().
		Str(loggers.FieldFormat, string(req.Format)).
		Str(loggers.FieldSavePath, req.SavePath).
		Msg("started integration audit")
	start := time.Now()

	userID, err := s.resolver.ResolveUserID(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	records, err := s.fetcher.FetchAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	groupings := s.grouper.Group(records)
	result = &Result{
		UserID:       userID,
		Records:      records,
		Groupings:    groupings,
		Unclassified: groupings.Unclassified,
	}
	if n := len(groupings.Unclassified); n > 0 {
		metricUnclassifiedRecords.WithLabelValues(string(req.Format)).Add(float64(n))
		logger.Warn().Int("unclassified", n).Msg("log records without service_id or app_id were left out of the groupings")
	}

	switch req.Format {
	case models.FormatRaw:
		result.Rows = len(records)
		result.Export, err = s.exporter.ExportRaw(ctx, req.SavePath, records)
	case models.FormatCSVFull, models.FormatCSVSummary:
		var domain string
		domain, err = s.resolver.ResolveDomain(ctx)
		if err != nil {
			return nil, err
		}
		if req.Format == models.FormatCSVFull {
			rows := s.reportGenerator.Full(groupings, domain)
			result.Rows = len(rows)
			result.Export, err = s.exporter.ExportFullCSV(ctx, req.SavePath, rows)
		} else {
			rows := s.reportGenerator.Summary(groupings, domain)
			result.Rows = len(rows)
			result.Export, err = s.exporter.ExportSummaryCSV(ctx, req.SavePath, rows)
		}
	default:
		return nil, svcerrors.NewInternalErrorUndefined(fmt.Errorf("unhandled output format %q", req.Format))
	}
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str(loggers.FieldFormat, string(req.Format)).
		Str(loggers.FieldSavePath, req.SavePath).
		Int("records", len(records)).
		Int("identities", groupings.IdentityCount()).
		Int("rows", result.Rows).
		Int64(loggers.FieldDuration, time.Since(start).Milliseconds()).
		Msg("integration audit written")

	return result, nil
}

func (s *auditService) validateRequest(req *Request) error {
	req.Email = strings.TrimSpace(req.Email)
	req.SavePath = strings.TrimSpace(req.SavePath)
	if format, err := models.NewOutputFormatFromString(string(req.Format)); err == nil {
		req.Format = format
	}

	if err := s.validate.Struct(req); err != nil {
		var ve validators.ValidationErrors
		if errors.As(err, &ve) {
			fields := make([]string, 0, len(ve))
			for _, fe := range ve {
				fields = append(fields, describeFieldError(fe))
			}
			return errValidationFailed("invalid audit request: "+strings.Join(fields, ", "), err)
		}
		return errValidationFailed("invalid audit request", err)
	}
	return nil
}

func describeFieldError(fe validators.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s %q is not an email address", fe.Field(), fe.Value())
	case "oneof":
		return fmt.Sprintf("%s %q must be one of [%s]", fe.Field(), fe.Value(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}

func errorCodeOf(err error) string {
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		return svcErr.Code
	}
	return "unknown"
}
