package ledger

import (
	"fmt"
)

// Kind classifies a rejected ledger operation. Every failure is a
// whole-operation abort: the transaction wrapping the call rolls back, so
// state is guaranteed unchanged whenever an *Error is returned.
type Kind uint

const (
	KindUnknown Kind = iota
	KindUnauthorized
	KindInvalidState
	KindInvariantViolation
	KindBoundsViolation
	KindNotFound
)

// String returns the wire code for the kind.
func (k Kind) String() string {
	switch k {
	case KindUnauthorized:
		return "UNAUTHORIZED"
	case KindInvalidState:
		return "INVALID_STATE"
	case KindInvariantViolation:
		return "INVARIANT_VIOLATION"
	case KindBoundsViolation:
		return "BOUNDS_VIOLATION"
	case KindNotFound:
		return "NOT_FOUND"
	default:
		return "UNKNOWN"
	}
}

// Error carries the error kind plus a human-readable reason.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches errors by kind so callers can test with errors.Is against the
// exported sentinels below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels for errors.Is checks.
var (
	ErrUnauthorized       = &Error{Kind: KindUnauthorized, Message: "unauthorized"}
	ErrInvalidState       = &Error{Kind: KindInvalidState, Message: "invalid state"}
	ErrInvariantViolation = &Error{Kind: KindInvariantViolation, Message: "invariant violation"}
	ErrBoundsViolation    = &Error{Kind: KindBoundsViolation, Message: "bounds violation"}
	ErrNotFound           = &Error{Kind: KindNotFound, Message: "not found"}
)

func unauthorizedf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindUnauthorized, Message: fmt.Sprintf(format, args...)}
}

func invalidStatef(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidState, Message: fmt.Sprintf(format, args...)}
}

func invariantf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvariantViolation, Message: fmt.Sprintf(format, args...)}
}

func boundsf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindBoundsViolation, Message: fmt.Sprintf(format, args...)}
}

func notFoundf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}
