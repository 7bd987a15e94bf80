// Package apperr defines the error taxonomy shared by all domain services:
// not-found, conflict, validation, and store errors. Handlers return these
// unwrapped; the echo error handler in this package maps them to HTTP status
// codes and JSON message payloads.
package apperr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Kind classifies an error for HTTP mapping.
type Kind int

const (
	KindStore Kind = iota
	KindNotFound
	KindConflict
	KindValidation
	KindUnauthorized
	KindForbidden
)

// Error carries a classification and a caller-facing message. A wrapped
// cause, when present, is logged but never sent to the client.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func Unauthorized(format string, args ...interface{}) *Error {
	return &Error{Kind: KindUnauthorized, Message: fmt.Sprintf(format, args...)}
}

func Forbidden(format string, args ...interface{}) *Error {
	return &Error{Kind: KindForbidden, Message: fmt.Sprintf(format, args...)}
}

// Store wraps an underlying data-store failure. The message shown to the
// client is always generic.
func Store(err error) *Error {
	return &Error{Kind: KindStore, Message: "Server Error", Err: err}
}

// KindOf returns the classification of err, defaulting to KindStore for
// anything outside the taxonomy.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindStore
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// IsConflict reports whether err is a conflict error.
func IsConflict(err error) bool { return KindOf(err) == KindConflict }

// uniqueViolation is the PostgreSQL error code for UNIQUE constraint breaks.
const uniqueViolation = "23505"

// FromDB translates repository-level errors into the taxonomy: pgx.ErrNoRows
// becomes a not-found error with notFoundMsg, a unique-constraint violation
// becomes a conflict with conflictMsg, and anything else is a store error.
func FromDB(err error, notFoundMsg, conflictMsg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return NotFound("%s", notFoundMsg)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return Conflict("%s", conflictMsg)
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Store(err)
}
