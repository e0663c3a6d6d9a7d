// Package apperrors defines the failure taxonomy shared by every stage of
// the discovery pipeline. Each failure crossing a component boundary is one
// of six kinds, carrying the transport status code, a caller-safe message
// and whether an automatic re-attempt can help.
package apperrors

import (
	"context"
	"errors"
	"fmt"
	"net"
)

type Kind string

const (
	KindValidation Kind = "VALIDATION"
	KindAuth       Kind = "AUTH"
	KindAPI        Kind = "API"
	KindRateLimit  Kind = "RATE_LIMIT"
	KindNetwork    Kind = "NETWORK"
	KindServer     Kind = "SERVER"
)

type kindInfo struct {
	status    int
	retryable bool
	message   string
}

var kinds = map[Kind]kindInfo{
	KindValidation: {400, false, "Please check your input and try again."},
	KindAuth:       {401, false, "Service authentication failed."},
	KindAPI:        {503, true, "Unable to fetch music data. Please try again later."},
	KindRateLimit:  {429, true, "Too many requests. Please wait and try again."},
	KindNetwork:    {502, true, "Network connection failed."},
	KindServer:     {500, true, "An unexpected error occurred."},
}

// Error is the classified failure type used throughout the service. The
// Cause is kept for diagnostics only and is never shown to callers outside
// a development environment.
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
	Retryable  bool
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New builds an Error of the given kind. An empty message selects the
// kind's default. Unknown kinds collapse to SERVER.
func New(kind Kind, message string, cause error) *Error {
	info, ok := kinds[kind]
	if !ok {
		kind = KindServer
		info = kinds[KindServer]
	}
	if message == "" {
		message = info.message
	}
	return &Error{
		Kind:       kind,
		StatusCode: info.status,
		Message:    message,
		Retryable:  info.retryable,
		Cause:      cause,
	}
}

func Validation(message string) *Error { return New(KindValidation, message, nil) }

func Auth(cause error) *Error { return New(KindAuth, "", cause) }

func API(message string, cause error) *Error { return New(KindAPI, message, cause) }

func RateLimit(cause error) *Error { return New(KindRateLimit, "", cause) }

func Network(message string, cause error) *Error { return New(KindNetwork, message, cause) }

func Server(cause error) *Error { return New(KindServer, "", cause) }

// AsError extracts the classified error from err's chain, if any.
func AsError(err error) (*Error, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// KindOf returns the kind for err. Unclassified errors report SERVER.
func KindOf(err error) Kind {
	if ae, ok := AsError(err); ok {
		return ae.Kind
	}
	return KindServer
}

// IsRetryable reports whether a re-attempt may succeed. Unclassified errors
// are treated as retryable server faults.
func IsRetryable(err error) bool {
	if ae, ok := AsError(err); ok {
		return ae.Retryable
	}
	return true
}

// Classify normalizes an arbitrary error into an *Error. Already-classified
// errors pass through unchanged; timeouts and transport faults become
// NETWORK; everything else becomes SERVER.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}
	if ae, ok := AsError(err); ok {
		return ae
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return Network("Request timed out.", err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return Network("", err)
	}
	return Server(err)
}
