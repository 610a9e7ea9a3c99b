package slack

import (
	"fmt"

	"integration-audit/internal/shared/svcerrors"
)

// Slack Web API errors
const (
	codeIntegrationLogsFailed = "SLACK_1000"
	codeLookupByEmailFailed   = "SLACK_1001"
	codeTeamInfoFailed        = "SLACK_1002"

	codeTransportFailed = "SLACK_9000"
)

var methodErrorCodes = map[string]string{
	MethodIntegrationLogs: codeIntegrationLogsFailed,
	MethodLookupByEmail:   codeLookupByEmailFailed,
	MethodTeamInfo:        codeTeamInfoFailed,
}

// errAPICallFailed returns an error carrying the full response payload of a failed call.
func errAPICallFailed(method string, payload []byte, cause error) *svcerrors.ServiceError {
	return svcerrors.NewRemoteAPIError(methodErrorCodes[method], fmt.Sprintf("cannot execute %s API: %s", method, payload), cause)
}

// errTransportFailed returns an error when the request never produced a response.
func errTransportFailed(method string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewRemoteAPIError(codeTransportFailed, fmt.Sprintf("cannot reach %s API: %v", method, cause), cause)
}
