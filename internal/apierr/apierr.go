// Package apierr classifies backend and transport failures into the small
// set of outcomes the rest of the client is allowed to react to. Views only
// catch-and-notify; the HTTP pipeline and session manager are the only
// places that classify.
package apierr

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

type Kind int

const (
	KindValidation Kind = iota
	KindAuth
	KindConnectivity
	KindServer
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindConnectivity:
		return "connectivity"
	case KindServer:
		return "server"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	}
	return "unknown"
}

// Error is a classified request failure. Status is zero when the request
// never reached the backend.
type Error struct {
	Kind    Kind
	Status  int
	Code    string // backend-supplied `error` field
	Message string // backend-supplied `message` field
	Base    error  // transport error, if any
}

func (e *Error) Error() string {
	if e.Base != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Base)
	}
	if e.Code != "" {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.Status, e.Code)
	}
	return fmt.Sprintf("%s (%d)", e.Kind, e.Status)
}

func (e *Error) Unwrap() error { return e.Base }

// tokenErrorCodes are the backend signals that mean the bearer credential
// itself is bad. Any of them forces a session clear, same as a plain 401.
var tokenErrorCodes = map[string]bool{
	"Invalid token signature": true,
	"Invalid token format":    true,
	"Token expired":           true,
	"Unsupported token":       true,
	"Invalid token":           true,
}

// IsAuthSignal reports whether a status/code pair must invalidate the session.
func IsAuthSignal(status int, code string) bool {
	return status == http.StatusUnauthorized || tokenErrorCodes[code]
}

// FromResponse classifies a non-2xx backend response.
func FromResponse(status int, code, message string) *Error {
	e := &Error{Status: status, Code: code, Message: message}
	switch {
	case IsAuthSignal(status, code):
		e.Kind = KindAuth
	case status == http.StatusNotFound:
		e.Kind = KindNotFound
	case status == http.StatusConflict:
		e.Kind = KindConflict
	case status >= 500:
		e.Kind = KindServer
	default:
		e.Kind = KindValidation
	}
	return e
}

// FromTransport classifies an error raised before any response arrived.
// Timeouts and connection failures are connectivity, never auth.
func FromTransport(err error) *Error {
	return &Error{Kind: KindConnectivity, Base: err}
}

// IsTransport reports whether err looks like a network-level failure.
func IsTransport(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne)
}

func kindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

func IsAuth(err error) bool         { k, ok := kindOf(err); return ok && k == KindAuth }
func IsConnectivity(err error) bool { k, ok := kindOf(err); return ok && k == KindConnectivity }
func IsValidation(err error) bool   { k, ok := kindOf(err); return ok && k == KindValidation }

// UserMessage derives the human-readable notice for a failure, preferring
// the backend message when one was returned.
func (e *Error) UserMessage() string {
	switch e.Kind {
	case KindConnectivity:
		return "Unable to connect to the server. Please try again."
	case KindAuth:
		if e.Code == "Token expired" {
			return "Your session has expired. Please login again."
		}
		if e.Message != "" {
			return e.Message
		}
		return "Session expired. Please login again."
	case KindNotFound:
		if e.Message != "" {
			return e.Message
		}
		return "The requested resource was not found."
	case KindConflict:
		if e.Message != "" {
			return e.Message
		}
		return "This action conflicts with existing data. Please refresh and try again."
	case KindServer:
		return "Server error occurred. Please try again later."
	}
	switch e.Status {
	case http.StatusForbidden:
		return "You do not have permission to perform this action."
	case http.StatusUnprocessableEntity:
		return "Invalid data provided. Please check all fields and try again."
	}
	if e.Message != "" {
		return e.Message
	}
	return "Invalid request. Please check your input and try again."
}

// Message extracts the user-facing text from any error.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.UserMessage()
	}
	return "An unexpected error occurred. Please try again."
}
