package audits

import (
	"integration-audit/internal/shared/svcerrors"
)

// AuditService errors
const (
	codeValidationFailed = "AUD_1000"
)

// errValidationFailed returns an error for an unusable audit request.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}
