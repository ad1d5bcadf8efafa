package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	// KindNoMarks: the owner exists, but there is nothing to aggregate.
	KindNoMarks
	KindInvalidReference
	KindValidationFailed
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindNoMarks:
		return "no_marks"
	case KindInvalidReference:
		return "invalid_reference"
	case KindValidationFailed:
		return "validation_failed"
	default:
		return "internal"
	}
}

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...interface{}) error {
	return newError(KindNotFound, format, args...)
}

func NoMarks(format string, args ...interface{}) error {
	return newError(KindNoMarks, format, args...)
}

func InvalidReference(format string, args ...interface{}) error {
	return newError(KindInvalidReference, format, args...)
}

func ValidationFailed(format string, args ...interface{}) error {
	return newError(KindValidationFailed, format, args...)
}

// KindOf returns KindUnknown for errors that did not originate here.
func KindOf(err error) Kind {
	appErr := &Error{}
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
