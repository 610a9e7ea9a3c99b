package svcerrors

import (
	"errors"
	"fmt"
)

const (
	categoryInvalidArgument = "invalid_argument"
	categoryRemoteAPI       = "remote_api"
	categoryOutputWrite     = "output_write"
	categoryInternal        = "internal"
)

const (
	errorCodeInternalUndefined = "SYS_9001"
)

// NewInvalidArgumentError creates a new ServiceError with category invalid_argument.
func NewInvalidArgumentError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryInvalidArgument,
		Code:     code,
		Message:  message,
		Cause:    cause,
		ExitCode: 2,
	}
}

// NewRemoteAPIError creates a new ServiceError with category remote_api.
// The message carries the remote payload verbatim so the operator sees what the server said.
func NewRemoteAPIError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryRemoteAPI,
		Code:     code,
		Message:  message,
		Cause:    cause,
		ExitCode: 1,
	}
}

// NewOutputWriteError creates a new ServiceError with category output_write.
func NewOutputWriteError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryOutputWrite,
		Code:     code,
		Message:  message,
		Cause:    cause,
		ExitCode: 1,
	}
}

// NewInternalError creates a new ServiceError with category internal.
func NewInternalError(code string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryInternal,
		Code:     code,
		Message:  "internal error",
		Cause:    cause,
		ExitCode: 1,
	}
}

// NewInternalErrorUndefined creates a new ServiceError with category internal and code SYS_9001.
func NewInternalErrorUndefined(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalUndefined, cause)
}

// AsServiceError extracts a ServiceError from the error chain.
// It returns (*ServiceError, true) if err wraps a ServiceError, otherwise (nil, false).
func AsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

// ServiceError represents a service-level error with category, code, message, and cause.
// It implements the error interface and supports error wrapping.
type ServiceError struct {
	Category string // invalid_argument, remote_api, output_write or internal
	Code     string // service-owned stable code (e.g. SLACK_1000)
	Message  string // human-readable
	Cause    error  // wrapped underlying error
	ExitCode int    // process exit status
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	if e.Cause != nil && e.Category != categoryRemoteAPI {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error to support errors.Is and errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Cause
}

func (e *ServiceError) IsInternalError() bool {
	return e.Category == categoryInternal
}

func (e *ServiceError) IsRemoteAPIError() bool {
	return e.Category == categoryRemoteAPI
}

func (e *ServiceError) IsOutputWriteError() bool {
	return e.Category == categoryOutputWrite
}

// ExitCodeOf maps any error to a process exit status.
func ExitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	if svcErr, ok := AsServiceError(err); ok && svcErr.ExitCode != 0 {
		return svcErr.ExitCode
	}
	return 1
}
