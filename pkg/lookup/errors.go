package lookup

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies lookup failures.
type Kind int

const (
	KindUnexpected Kind = iota
	KindValidation
	KindConfiguration
	KindUpstreamApplication
	KindUpstreamTransport
	KindNetwork
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConfiguration:
		return "configuration"
	case KindUpstreamApplication:
		return "upstream_application"
	case KindUpstreamTransport:
		return "upstream_transport"
	case KindNetwork:
		return "network"
	default:
		return "unexpected"
	}
}

// Error is the only error type returned by Service.
type Error struct {
	Kind Kind
	// StatusCode is the provider's status for KindUpstreamTransport.
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s error: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// HTTPStatus maps the error to the status reported to callers.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation, KindUpstreamApplication:
		return http.StatusBadRequest
	case KindConfiguration:
		return http.StatusInternalServerError
	case KindUpstreamTransport:
		if e.StatusCode >= 400 && e.StatusCode <= 599 {
			return e.StatusCode
		}
		return http.StatusBadGateway
	case KindNetwork:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Title is the short error class shown next to the message.
func (e *Error) Title() string {
	switch e.Kind {
	case KindValidation:
		return "Invalid request"
	case KindConfiguration:
		return "Server configuration error"
	case KindUpstreamApplication:
		return "WHOIS lookup failed"
	case KindUpstreamTransport:
		return "External API error"
	case KindNetwork:
		return "Network error"
	default:
		return "Internal server error"
	}
}

func newError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// AsError converts any error into an *Error, treating unknown errors as
// unexpected.
func AsError(err error) *Error {
	var lerr *Error
	if errors.As(err, &lerr) {
		return lerr
	}
	return newError(KindUnexpected, "An unexpected error occurred", err)
}
