package mesto

import "errors"

// ErrorKind is the closed set of failure categories the HTTP boundary
// knows how to report.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindAuth
	KindForbidden
	KindNotFound
	KindConflict
)

// Error is the tagged error variant raised by aggregates, guards and
// repositories. Details carries the client-facing constraint messages
// for validation failures.
type Error struct {
	Kind    ErrorKind
	Message string
	Details []string
}

func (e *Error) Error() string {
	return e.Message
}

func NewValidationError(message string, details ...string) *Error {
	return &Error{Kind: KindValidation, Message: message, Details: details}
}

func NewAuthError(message string) *Error {
	return &Error{Kind: KindAuth, Message: message}
}

func NewForbiddenError(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func NewNotFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func NewConflictError(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

var (
	ErrAuthRequired   = NewAuthError("authorization required")
	ErrBadToken       = NewAuthError("invalid or expired token")
	ErrBadCredentials = NewAuthError("incorrect email or password")
	ErrUserNotFound   = NewNotFoundError("user not found")
	ErrCardNotFound   = NewNotFoundError("card not found")
	ErrCardForbidden  = NewForbiddenError("cannot delete another user's card")
	ErrEmailTaken     = NewConflictError("user with this email already exists")
	ErrInvalidUserID  = NewValidationError("invalid user id")
	ErrInvalidCardID  = NewValidationError("invalid card id")
)

// KindOf reports the category of err. Anything that is not an *Error is
// an unclassified internal failure.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
