package client

import (
	stderrors "errors"

	"github.com/pkg/errors"
)

// ErrorKind classifies a failed operation.
type ErrorKind string

const (
	KindValidation     ErrorKind = "validation"
	KindAuthentication ErrorKind = "authentication"
	KindAuthorization  ErrorKind = "authorization"
	KindNotFound       ErrorKind = "not_found"
	KindServer         ErrorKind = "server"
	KindNetwork        ErrorKind = "network"
)

// Error is the typed failure every operation returns. Nothing is retried:
// every failure is terminal for that call and surfaced to the operator.
type Error struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// NewValidationError reports a blank or malformed input caught before any
// network call.
func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NewAuthenticationError reports rejected credentials. The message surfaces
// verbatim to the operator.
func NewAuthenticationError(message string) *Error {
	return &Error{Kind: KindAuthentication, Message: message}
}

// NewAuthorizationError reports a 401 on an authenticated call.
func NewAuthorizationError(message string) *Error {
	return &Error{Kind: KindAuthorization, Message: message}
}

// NewNotFoundError reports a missing entity.
func NewNotFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// NewServerError reports a 5xx response.
func NewServerError(message string) *Error {
	return &Error{Kind: KindServer, Message: message}
}

// NewNetworkError reports an unreachable backend, wrapping the transport
// cause.
func NewNetworkError(message string, cause error) *Error {
	return &Error{Kind: KindNetwork, Message: message, cause: errors.Wrap(cause, message)}
}

func isKind(err error, kind ErrorKind) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func IsValidation(err error) bool     { return isKind(err, KindValidation) }
func IsAuthentication(err error) bool { return isKind(err, KindAuthentication) }
func IsAuthorization(err error) bool  { return isKind(err, KindAuthorization) }
func IsNotFound(err error) bool       { return isKind(err, KindNotFound) }
func IsServer(err error) bool         { return isKind(err, KindServer) }
func IsNetwork(err error) bool        { return isKind(err, KindNetwork) }
