package acl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"

	"github.com/jsamuelsen/learning-journal/internal/adapters/clients"
	"github.com/jsamuelsen/learning-journal/internal/domain"
)

// ErrorResponse is the remote error envelope. Both the nested
// {"error":{"code","message"}} form and a flat {"code","message"} form are
// understood.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	Code    string      `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"traceId,omitempty"`
}

// ErrorDetail is the nested part of ErrorResponse.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// GetCode returns the nested code, falling back to the flat one.
func (e *ErrorResponse) GetCode() string {
	if e.Error.Code != "" {
		return e.Error.Code
	}

	return e.Code
}

// GetMessage returns the nested message, falling back to the flat one.
func (e *ErrorResponse) GetMessage() string {
	if e.Error.Message != "" {
		return e.Error.Message
	}

	return e.Message
}

// Error codes a journal server puts in its envelope.
const (
	RemoteCodeNotFound   = "NOT_FOUND"
	RemoteCodeValidation = "VALIDATION_ERROR"
	RemoteCodeBadRequest = "BAD_REQUEST"
	RemoteCodeConflict   = "CONFLICT"
	RemoteCodeTimeout    = "TIMEOUT"
)

// ParseErrorResponse decodes an error envelope. It returns nil for an empty
// or unrecognised body.
func ParseErrorResponse(body io.Reader) *ErrorResponse {
	if body == nil {
		return nil
	}

	var resp ErrorResponse
	if err := json.NewDecoder(io.LimitReader(body, 64<<10)).Decode(&resp); err != nil {
		return nil
	}

	if resp.GetCode() == "" && resp.GetMessage() == "" {
		return nil
	}

	return &resp
}

// MapHTTPError turns a client failure or a non-2xx response into a domain
// error. entity and entityID name the thing a 404 refers to.
func MapHTTPError(resp *http.Response, clientErr error, serviceName, operation, entity, entityID string) error {
	if clientErr != nil {
		return mapClientError(clientErr, serviceName, operation)
	}

	if resp == nil {
		return domain.NewUnavailableError(serviceName, "no response received")
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	var errResp *ErrorResponse
	if resp.Body != nil {
		errResp = ParseErrorResponse(resp.Body)
	}

	return mapStatusCode(resp.StatusCode, errResp, serviceName, operation, entity, entityID)
}

func mapClientError(err error, serviceName, operation string) error {
	switch {
	case errors.Is(err, clients.ErrCircuitOpen):
		return domain.NewUnavailableError(serviceName, "circuit breaker open during "+operation)
	case errors.Is(err, clients.ErrMaxRetriesExceeded):
		return domain.NewUnavailableError(serviceName, "max retries exceeded during "+operation)
	default:
		return domain.NewUnavailableError(serviceName, fmt.Sprintf("%s failed: %v", operation, err))
	}
}

func mapStatusCode(status int, errResp *ErrorResponse, serviceName, operation, entity, entityID string) error {
	message := defaultMessageForStatus(status, operation)
	if errResp != nil && errResp.GetMessage() != "" {
		message = errResp.GetMessage()
	}

	switch {
	case status == http.StatusNotFound:
		return domain.NewNotFoundError(entity, entityID)

	case status == http.StatusConflict:
		return domain.NewConflictError(entity, message)

	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		if errResp != nil {
			if field, msg, ok := firstDetail(errResp.Error.Details); ok {
				return domain.NewValidationError(field, msg)
			}
		}

		return domain.NewValidationError("", message)

	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return domain.NewUnavailableError(serviceName, "access denied: "+message)

	case status == http.StatusTooManyRequests, status >= http.StatusInternalServerError:
		return domain.NewUnavailableError(serviceName, message)

	default:
		return domain.NewValidationError("", message)
	}
}

// firstDetail picks the alphabetically first field so the result does not
// depend on map order.
func firstDetail(details map[string]string) (string, string, bool) {
	if len(details) == 0 {
		return "", "", false
	}

	fields := make([]string, 0, len(details))
	for f := range details {
		fields = append(fields, f)
	}

	sort.Strings(fields)

	return fields[0], details[fields[0]], true
}

func defaultMessageForStatus(status int, operation string) string {
	switch status {
	case http.StatusNotFound:
		return "resource not found"
	case http.StatusConflict:
		return "resource conflict"
	case http.StatusBadRequest:
		return "invalid request"
	case http.StatusUnauthorized, http.StatusForbidden:
		return "access denied"
	case http.StatusTooManyRequests:
		return "rate limit exceeded"
	case http.StatusServiceUnavailable:
		return "service temporarily unavailable"
	default:
		return fmt.Sprintf("%s failed with status %d", operation, status)
	}
}

// MapRemoteCode maps an envelope code to a domain error, for callers that
// only have the decoded body.
func MapRemoteCode(code, message, serviceName, entity, entityID string) error {
	switch code {
	case RemoteCodeNotFound:
		return domain.NewNotFoundError(entity, entityID)
	case RemoteCodeValidation, RemoteCodeBadRequest:
		return domain.NewValidationError("", message)
	case RemoteCodeConflict:
		return domain.NewConflictError(entity, message)
	default:
		return domain.NewUnavailableError(serviceName, message)
	}
}
