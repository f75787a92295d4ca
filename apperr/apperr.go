// Package apperr carries the error vocabulary shared by services and
// controllers. Services return *Error values tagged with a Kind; the HTTP
// layer flattens them into the uniform response envelope without ever
// exposing the wrapped cause to the client.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for status mapping and logging.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindNotFound      Kind = "not_found"
	KindAuthorization Kind = "authorization"
	KindConflict      Kind = "conflict"
	KindExternal      Kind = "external_service"
	KindInternal      Kind = "internal"
)

// Error is the tagged result error for every service operation.
type Error struct {
	Kind    Kind
	Code    string // machine-readable short code, e.g. "invite_limit_reached"
	Message string // safe to show to the client
	Status  int    // HTTP status equivalent
	Err     error  // wrapped cause, logged but never returned to the client
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Code, e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s (%s): %s", e.Code, e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Validation reports malformed or out-of-range input.
func Validation(code, message string) *Error {
	return &Error{Kind: KindValidation, Code: code, Message: message, Status: http.StatusBadRequest}
}

// NotFound reports a missing entity.
func NotFound(code, message string) *Error {
	return &Error{Kind: KindNotFound, Code: code, Message: message, Status: http.StatusNotFound}
}

// Unauthorized reports an actor that is not permitted to perform the operation.
func Unauthorized(code, message string) *Error {
	return &Error{Kind: KindAuthorization, Code: code, Message: message, Status: http.StatusUnauthorized}
}

// Conflict reports a state clash: duplicate active engagement, rate limit,
// or an invite that has already been transitioned.
func Conflict(code, message string) *Error {
	return &Error{Kind: KindConflict, Code: code, Message: message, Status: http.StatusBadRequest}
}

// External reports a downstream provider failure. The status depends on the
// cause: notification delivery surfaces as 400, scheduling as 500.
func External(status int, code, message string, cause error) *Error {
	return &Error{Kind: KindExternal, Code: code, Message: message, Status: status, Err: cause}
}

// Internal wraps an unexpected error behind a generic client message.
func Internal(code string, cause error) *Error {
	return &Error{
		Kind:    KindInternal,
		Code:    code,
		Message: "Internal error. Please refresh the page and try again. If error persists, please contact the team.",
		Status:  http.StatusInternalServerError,
		Err:     cause,
	}
}

// KindOf returns the Kind of err if it is (or wraps) an *Error, and
// KindInternal otherwise.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
