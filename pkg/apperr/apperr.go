package apperr

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// Kind classifies a failed platform call for the global error surface.
type Kind string

const (
	KindNetwork    Kind = "network"
	KindServer     Kind = "server"
	KindNotFound   Kind = "not_found"
	KindPermission Kind = "permission"
	KindTimeout    Kind = "timeout"
	KindGeneric    Kind = "generic"
)

// Error carries the classification plus everything needed to render a
// human-readable message: the HTTP status (0 for transport failures) and
// the backend message when one was present in the response body.
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ClassifyStatus maps an HTTP status code onto the error taxonomy.
// 429 is grouped with server errors since it indicates backend pressure,
// not a caller mistake.
func ClassifyStatus(status int) Kind {
	switch {
	case status == http.StatusRequestTimeout:
		return KindTimeout
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindPermission
	case status == http.StatusTooManyRequests || status >= 500:
		return KindServer
	default:
		return KindGeneric
	}
}

// FromStatus builds a classified error from an HTTP response status and
// the backend-provided message (may be empty).
func FromStatus(status int, message string) *Error {
	if message == "" {
		message = http.StatusText(status)
	}
	return &Error{
		Kind:       ClassifyStatus(status),
		StatusCode: status,
		Message:    message,
	}
}

// FromTransport classifies an error raised before any HTTP response was
// received: timeouts and cancellations map to timeout, everything else
// to network.
func FromTransport(err error) *Error {
	kind := KindNetwork
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		kind = KindTimeout
	}
	return &Error{
		Kind:    kind,
		Message: err.Error(),
		Err:     err,
	}
}

// Validation builds a generic client-side validation error. These never
// correspond to a network call.
func Validation(message string) *Error {
	return &Error{Kind: KindGeneric, Message: message}
}

// KindOf extracts the classification from any error chain, defaulting to
// generic for unclassified errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindGeneric
}
