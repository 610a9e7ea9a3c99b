package exporters

import (
	"fmt"

	"integration-audit/internal/shared/svcerrors"
)

// Exporter errors
const (
	codeOutputWriteFailed = "EXP_9000"
)

// errOutputWriteFailed returns an error when the destination file cannot be written.
func errOutputWriteFailed(savePath string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewOutputWriteError(codeOutputWriteFailed, fmt.Sprintf("cannot write output to %s", savePath), cause)
}
