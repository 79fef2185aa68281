package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindReferenced
	KindConflict
)

// Error is the error type use cases return for anything the client should
// see. Message is safe to expose; Err is logged only.
type Error struct {
	Kind    Kind
	Message string
	Details interface{}
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation, KindReferenced, KindConflict:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Referenced(msg string) *Error {
	return &Error{Kind: KindReferenced, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

// Internal wraps a storage or unexpected failure. The client sees only
// "Failed to <op>".
func Internal(op string, err error) *Error {
	return &Error{Kind: KindInternal, Message: "Failed to " + op, Err: err}
}

// From returns err as an *Error, wrapping unknown errors as internal.
func From(err error, op string) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Internal(op, err)
}

func IsKind(err error, kind Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == kind
}
