// Package apperror defines the error kinds shared by every module.
// The response translator maps a kind to an HTTP status, so modules only
// decide what went wrong, never how it is rendered.
package apperror

import "errors"

// Kind classifies a domain error.
type Kind uint8

const (
	// KindInternal is any failure the client cannot act on.
	KindInternal Kind = iota
	// KindValidation covers malformed input and business-rule violations.
	KindValidation
	// KindUnauthenticated means no usable principal was presented.
	KindUnauthenticated
	// KindForbidden means the principal lacks the required role or ownership.
	KindForbidden
	// KindNotFound means no entity exists for the given key.
	KindNotFound
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not found"
	default:
		return "internal"
	}
}

// kindError lets callers match a whole kind with errors.Is.
type kindError Kind

func (k kindError) Error() string {
	return Kind(k).String()
}

// Kind-level sentinels for errors.Is checks.
var (
	ErrUnauthenticated error = kindError(KindUnauthenticated)
	ErrForbidden       error = kindError(KindForbidden)
)

// Error is a domain error with a client-safe message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// New creates a domain error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates a domain error of the given kind around a cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Validation is shorthand for New(KindValidation, message).
func Validation(message string) *Error {
	return New(KindValidation, message)
}

// NotFound is shorthand for New(KindNotFound, message).
func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

// Forbidden is shorthand for New(KindForbidden, message).
func Forbidden(message string) *Error {
	return New(KindForbidden, message)
}

// Unauthenticated is shorthand for New(KindUnauthenticated, message).
func Unauthenticated(message string) *Error {
	return New(KindUnauthenticated, message)
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the kind sentinel matching e.
func (e *Error) Is(target error) bool {
	k, ok := target.(kindError)
	return ok && Kind(k) == e.Kind
}

// KindOf returns the kind of the first domain error in err's chain.
// Errors without a kind are internal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	var k kindError
	if errors.As(err, &k) {
		return Kind(k)
	}
	return KindInternal
}

// MessageOf returns the client-safe message for err.
// Internal errors never expose their text.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Kind != KindInternal {
		return appErr.Message
	}
	var k kindError
	if errors.As(err, &k) && Kind(k) != KindInternal {
		return Kind(k).String()
	}
	return "internal server error"
}
