package cli

import (
	"integration-audit/internal/shared/svcerrors"
)

// Command line errors
const (
	codeUsage = "CLI_1000"
)

// errUsage returns an error for malformed arguments or flags.
func errUsage(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeUsage, cause.Error(), nil)
}
