// Package apierror defines the typed error carried by every failed
// remote call. Call sites branch on the Kind rather than on message
// text; the message is what the stores surface to the UI.
package apierror

import (
	"net/http"
	"strings"

	"storefront/internal/errors"
)

// Kind classifies a remote failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindNetwork      // Transport failure; the request may never have reached the server.
	KindValidation   // The server rejected the payload (400/422).
	KindUnauthorized // Missing or expired credentials (401).
	KindForbidden    // Authenticated but not allowed (403).
	KindNotFound     // No such resource (404).
	KindConflict     // State conflict, e.g. duplicate email (409).
	KindServer       // Server-side failure (5xx).
)

// String returns the kind's name for logging.
func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindServer:
		return "server"
	default:
		return "unknown"
	}
}

// Error is a failed remote call.
type Error struct {
	Kind       Kind
	StatusCode int    // HTTP status, zero for transport failures.
	Message    string // Server-provided or transport error message.
	cause      error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the transport error that caused this failure, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// FromStatus builds an Error for a non-2xx response.
func FromStatus(statusCode int, message string) *Error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return &Error{
		Kind:       kindForStatus(statusCode),
		StatusCode: statusCode,
		Message:    message,
	}
}

// Network wraps a transport failure.
func Network(err error) *Error {
	return &Error{
		Kind:    KindNetwork,
		Message: err.Error(),
		cause:   err,
	}
}

func kindForStatus(statusCode int) Kind {
	switch {
	case statusCode == http.StatusUnauthorized:
		return KindUnauthorized
	case statusCode == http.StatusForbidden:
		return KindForbidden
	case statusCode == http.StatusNotFound:
		return KindNotFound
	case statusCode == http.StatusConflict:
		return KindConflict
	case statusCode == http.StatusBadRequest ||
		statusCode == http.StatusUnprocessableEntity:
		return KindValidation
	case statusCode >= 500:
		return KindServer
	default:
		return KindUnknown
	}
}

// KindOf extracts the kind from anywhere in err's tree.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}

	return KindUnknown
}

// MessageOf flattens err to the string surfaced in store state: the
// server's message for typed errors, err.Error() otherwise.
func MessageOf(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}

	return err.Error()
}

// IsAuthFailure reports whether err should force a logout. Typed
// unauthorized errors match structurally; untyped errors fall back to
// the message heuristic the web client used.
func IsAuthFailure(err error) bool {
	if err == nil {
		return false
	}
	if KindOf(err) == KindUnauthorized {
		return true
	}

	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "401") || strings.Contains(msg, "unauthorized")
}
