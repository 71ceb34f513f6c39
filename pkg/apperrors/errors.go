package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies a domain error so the HTTP boundary can map it to a
// status code without matching on message strings.
type Kind string

const (
	KindValidation      Kind = "validation"
	KindUnauthenticated Kind = "unauthenticated"
	KindNotFound        Kind = "not_found"
	KindState           Kind = "state"
	KindConflict        Kind = "conflict"
	KindAuthorization   Kind = "authorization"
	KindSecurity        Kind = "security"
	KindGateway         Kind = "gateway"
	KindInternal        Kind = "internal"
)

type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string // field-level breakdown, validation only
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

// Validation builds a validation error carrying per-field messages.
func Validation(message string, fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: message, Fields: fields}
}

func Unauthenticated(message string) *Error {
	return New(KindUnauthenticated, message)
}

func NotFound(message string) *Error      { return New(KindNotFound, message) }
func State(message string) *Error         { return New(KindState, message) }
func Conflict(message string) *Error      { return New(KindConflict, message) }
func Authorization(message string) *Error { return New(KindAuthorization, message) }
func Security(message string) *Error      { return New(KindSecurity, message) }
func Gateway(message string, cause error) *Error {
	return Wrap(KindGateway, message, cause)
}

// KindOf returns the Kind of err, or KindInternal for anything that is not
// an *Error. Unexpected failures must not leak detail to the caller.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// FieldsOf returns the field breakdown if err carries one.
func FieldsOf(err error) map[string]string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Fields
	}
	return nil
}

// MessageOf returns the user-facing message of err. Internal errors get a
// generic message; the real cause stays in the logs.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Internal server error"
}
