package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies every failure the service reports.
type Kind uint8

const (
	// KindBadRequest means the caller sent malformed, missing or invalid input.
	KindBadRequest Kind = iota + 1
	// KindInternal means an invariant the service guarantees was violated.
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// HTTPStatus maps an error kind to its response status.
func HTTPStatus(k Kind) int {
	if k == KindBadRequest {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindBadRequest:
		return "Bad request: " + e.Message
	default:
		return "Internal server error: " + e.Message
	}
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func BadRequest(msg string) *Error {
	return &Error{Kind: KindBadRequest, Message: msg}
}

func BadRequestf(format string, args ...any) *Error {
	return &Error{Kind: KindBadRequest, Message: fmt.Sprintf(format, args...)}
}

// Internal keeps cause for logging only; Message is what the caller sees.
func Internal(msg string, cause error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Cause: cause}
}

// From classifies err. Anything that is not an *Error is treated as internal
// and its text is not exposed.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("unexpected failure", err)
}
