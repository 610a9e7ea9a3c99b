package exporters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"integration-audit/internal/models"
	"integration-audit/internal/reports"
	"integration-audit/internal/shared/filestorages"
	"integration-audit/internal/shared/metrics"
)

// ExportResult describes the file an export produced.
type ExportResult struct {
	Path  string
	Bytes int64
}

type Options struct {
	// AllowOverwrite replaces an existing file at the save path. When false the export fails
	// instead.
	AllowOverwrite bool
}

// Exporter encodes audit output and publishes it at a save path. The file appears complete or
// not at all.
//
//go:generate mockgen -source=exporter.go -destination=./mocks/exporter_mock.go -package=mocks
type Exporter interface {
	// ExportRaw writes the records, unmodified, as one JSON array.
	ExportRaw(ctx context.Context, savePath string, records []models.LogRecord) (*ExportResult, error)
	ExportFullCSV(ctx context.Context, savePath string, rows []models.FullRow) (*ExportResult, error)
	ExportSummaryCSV(ctx context.Context, savePath string, rows []models.SummaryRow) (*ExportResult, error)
}

type exporter struct {
	openStorage func(rootDir string) (filestorages.FileStorage, error)
	opts        Options
}

func NewExporter(opts Options) Exporter {
	return &exporter{openStorage: filestorages.NewFileStorage, opts: opts}
}

func (e *exporter) ExportRaw(ctx context.Context, savePath string, records []models.LogRecord) (*ExportResult, error) {
	if records == nil {
		records = []models.LogRecord{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, e.fail(models.FormatRaw, savePath, fmt.Errorf("failed to marshal log records: %w", err))
	}
	return e.publish(ctx, models.FormatRaw, savePath, data)
}

func (e *exporter) ExportFullCSV(ctx context.Context, savePath string, rows []models.FullRow) (*ExportResult, error) {
	var buf bytes.Buffer
	if err := reports.WriteFullCSV(&buf, rows); err != nil {
		return nil, e.fail(models.FormatCSVFull, savePath, err)
	}
	return e.publish(ctx, models.FormatCSVFull, savePath, buf.Bytes())
}

func (e *exporter) ExportSummaryCSV(ctx context.Context, savePath string, rows []models.SummaryRow) (*ExportResult, error) {
	var buf bytes.Buffer
	if err := reports.WriteSummaryCSV(&buf, rows); err != nil {
		return nil, e.fail(models.FormatCSVSummary, savePath, err)
	}
	return e.publish(ctx, models.FormatCSVSummary, savePath, buf.Bytes())
}

// publish stores data under the base name of savePath, in a storage rooted at its directory.
func (e *exporter) publish(ctx context.Context, format models.OutputFormat, savePath string, data []byte) (*ExportResult, error) {
	storage, err := e.openStorage(filepath.Dir(savePath))
	if err != nil {
		return nil, e.fail(format, savePath, err)
	}

	result, err := storage.Put(ctx, filepath.Base(savePath), bytes.NewReader(data), filestorages.PutOptions{AllowOverwrite: e.opts.AllowOverwrite})
	if err != nil {
		return nil, e.fail(format, savePath, err)
	}

	metricExportsTotal.WithLabelValues(string(format), metrics.ValueNoError).Inc()
	metricExportedBytesTotal.WithLabelValues(string(format)).Add(float64(result.Bytes))
	return &ExportResult{Path: result.Path, Bytes: result.Bytes}, nil
}

func (e *exporter) fail(format models.OutputFormat, savePath string, cause error) error {
	svcErr := errOutputWriteFailed(savePath, cause)
	metricExportsTotal.WithLabelValues(string(format), svcErr.Code).Inc()
	return svcErr
}
