package models

import (
	"fmt"
	"strings"
)

type OutputFormat string

const (
	FormatRaw        OutputFormat = "raw"
	FormatCSVFull    OutputFormat = "csv-full"
	FormatCSVSummary OutputFormat = "csv-summary"
)

// OutputFormats lists every supported format, default first.
var OutputFormats = []OutputFormat{FormatCSVFull, FormatCSVSummary, FormatRaw}

func NewOutputFormatFromString(s string) (OutputFormat, error) {
	f := OutputFormat(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatRaw, FormatCSVFull, FormatCSVSummary:
		return f, nil
	default:
		return "", fmt.Errorf("invalid output format: %q", s)
	}
}

// IsCSV reports whether the format is rendered through the report generator.
func (f OutputFormat) IsCSV() bool {
	return f == FormatCSVFull || f == FormatCSVSummary
}
