package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies business failures so the HTTP layer can map each one
// to a distinct status code and message.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindReferenceNotFound
	KindForbidden
	KindUnauthorized
	KindAlreadyApproved
	KindAlreadyFinal
	KindConflict
	KindStoreUnavailable
)

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

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Validation(message string) *Error {
	return New(KindValidation, message)
}

func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

func ReferenceNotFound(message string) *Error {
	return New(KindReferenceNotFound, message)
}

func Forbidden(message string) *Error {
	return New(KindForbidden, message)
}

func Unauthorized(message string) *Error {
	return New(KindUnauthorized, message)
}

func AlreadyApproved(message string) *Error {
	return New(KindAlreadyApproved, message)
}

func AlreadyFinal(message string) *Error {
	return New(KindAlreadyFinal, message)
}

func Conflict(message string) *Error {
	return New(KindConflict, message)
}

func StoreUnavailable(err error) *Error {
	return Wrap(KindStoreUnavailable, "data store unavailable", err)
}

// KindOf returns the Kind of err, or KindUnknown when err does not carry
// one.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}
