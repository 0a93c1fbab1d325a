package flow

import "strings"

const (
	// Reserved code/message for a flow the connector does not support.
	NotImplementedCode    = "IR_00"
	NotImplementedMessage = "This flow is not implemented by the selected connector"

	// Fallbacks so that an ErrorResponse never carries an empty code or
	// message, whatever the connector sent.
	DefaultErrorCode    = "NO_ERROR_CODE"
	DefaultErrorMessage = "NO_ERROR_MESSAGE"

	transportErrorCode = "CONNECTOR_UNAVAILABLE"
)

// ErrorResponse is the single error shape that crosses the connector
// boundary. It is flat on purpose: no nested or raw error objects, so it can
// be logged, serialized, and surfaced to callers uniformly.
type ErrorResponse struct {
	Code    string  `json:"code"`
	Message string  `json:"message"`
	Reason  *string `json:"reason,omitempty"`
}

// NewErrorResponse builds an ErrorResponse. Construction is total: empty
// code or message fall back to the fixed defaults.
func NewErrorResponse(code, message string, reason *string) ErrorResponse {
	if strings.TrimSpace(code) == "" {
		code = DefaultErrorCode
	}
	if strings.TrimSpace(message) == "" {
		message = DefaultErrorMessage
	}
	return ErrorResponse{Code: code, Message: message, Reason: reason}
}

// NewNotImplemented returns the reserved error for an unsupported
// flow/connector combination.
func NewNotImplemented() ErrorResponse {
	return ErrorResponse{Code: NotImplementedCode, Message: NotImplementedMessage}
}

// FromTransportError normalizes a transport-level failure (connection
// refused, timeout, cancelled context) into the error shape callers see.
func FromTransportError(err error) ErrorResponse {
	reason := err.Error()
	return ErrorResponse{
		Code:    transportErrorCode,
		Message: "Failed to reach the connector",
		Reason:  &reason,
	}
}
