package driveaccess

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// unknownErrorMessage is the message produced whenever a failure carries no
// usable message of its own. Callers can always rely on a non-empty message.
const unknownErrorMessage = "Unknown error occurred"

var (
	ErrAPIError           = errors.New("api error")
	ErrTransportError     = errors.New("transport error")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidResourceURI = errors.New("invalid resource uri")
	ErrUnknown            = errors.New(unknownErrorMessage)
)

type wrapError struct {
	underlying error
	msg        string
	cause      error
}

var _ error = (*wrapError)(nil)

func newAPIError(msg string, cause error) error {
	return &wrapError{
		underlying: ErrAPIError,
		msg:        msg,
		cause:      normalizeError(cause),
	}
}

func newTransportError(msg string, cause error) error {
	return &wrapError{
		underlying: ErrTransportError,
		msg:        msg,
		cause:      normalizeError(cause),
	}
}

func (err *wrapError) Error() string {
	if err == nil {
		return "(*wrapError)(nil)"
	}
	message := err.underlying.Error() + ": " + err.msg
	if err.cause != nil {
		message += ": " + err.cause.Error()
	}
	return message
}

func (err *wrapError) Unwrap() []error {
	if err.cause == nil {
		return []error{err.underlying}
	}
	return []error{err.underlying, err.cause}
}

// normalizeError is the single point where heterogeneous failure values
// become one contract: an error whose message is never empty. A nil error
// stays nil; an error with an empty message collapses to ErrUnknown; every
// other error passes through unchanged, preserving its type and wrapping
// chain.
func normalizeError(err error) error {
	if err == nil {
		return nil
	}
	if strings.TrimSpace(err.Error()) == "" {
		return ErrUnknown
	}
	return err
}

// APIError represents a structured non-2xx response from the access service.
type APIError struct {
	// StatusCode is the HTTP response status code.
	StatusCode int

	// Code is the machine-readable error code, when the service provides one.
	Code string

	// Message is the server-provided error description. Never empty: when
	// the response body carries no recognizable message this is
	// "Unknown error occurred".
	Message string
}

var _ error = (*APIError)(nil)

func (err *APIError) Error() string {
	if err.Code != "" {
		return fmt.Sprintf("api error: HTTP %d: %s (%s)", err.StatusCode, err.Message, err.Code)
	}
	return fmt.Sprintf("api error: HTTP %d: %s", err.StatusCode, err.Message)
}

// Is makes APIError match ErrAPIError with errors.Is.
func (err *APIError) Is(target error) bool {
	return target == ErrAPIError
}

// IsNotFound reports whether err is a 404 response from the access service.
func IsNotFound(err error) bool {
	var apiError *APIError
	return errors.As(err, &apiError) && apiError.StatusCode == 404
}

// IsForbidden reports whether err is a 403 response from the access service.
func IsForbidden(err error) bool {
	var apiError *APIError
	return errors.As(err, &apiError) && apiError.StatusCode == 403
}

// parseAPIError builds an *APIError from a non-2xx response body. The service
// usually returns {"message": "..."} with an optional "code", but some
// deployments nest the description under "error" either as an object or as a
// bare string. Anything unrecognizable yields the generic unknown message.
func parseAPIError(statusCode int, body []byte) *APIError {
	apiError := &APIError{StatusCode: statusCode, Message: unknownErrorMessage}

	var envelope struct {
		Message string          `json:"message"`
		Code    string          `json:"code"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return apiError
	}
	apiError.Code = envelope.Code
	if envelope.Message != "" {
		apiError.Message = envelope.Message
		return apiError
	}

	if len(envelope.Error) > 0 {
		var nested struct {
			Message string `json:"message"`
			Code    string `json:"code"`
		}
		if err := json.Unmarshal(envelope.Error, &nested); err == nil && nested.Message != "" {
			apiError.Message = nested.Message
			if nested.Code != "" {
				apiError.Code = nested.Code
			}
			return apiError
		}
		var plain string
		if err := json.Unmarshal(envelope.Error, &plain); err == nil && plain != "" {
			apiError.Message = plain
			return apiError
		}
	}
	return apiError
}
