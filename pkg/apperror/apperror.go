package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an error for transport mapping.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindAuth
	KindAuthorization
	KindRateLimited
	KindUpstream
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindAuth:
		return "auth"
	case KindAuthorization:
		return "authorization"
	case KindRateLimited:
		return "rate_limited"
	case KindUpstream:
		return "upstream"
	default:
		return "internal"
	}
}

// Validation error codes
const (
	CodeMissingField  = "missing_field"
	CodeInvalidFormat = "invalid_format"
)

// Error is the application error carried from usecases to handlers.
type Error struct {
	Kind    Kind
	Code    string
	Field   string
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

// Is matches sentinels by identity first, then by kind+code+field so that
// MissingField("symptoms") matches another MissingField("symptoms").
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if e == t {
		return true
	}
	return t.Code != "" && e.Kind == t.Kind && e.Code == t.Code && e.Field == t.Field
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// MissingField reports the first absent required input.
func MissingField(field string) *Error {
	return &Error{
		Kind:    KindValidation,
		Code:    CodeMissingField,
		Field:   field,
		Message: field + " is required",
	}
}

// InvalidFormat reports input that is present but unparsable.
func InvalidFormat(field string, err error) *Error {
	return &Error{
		Kind:    KindValidation,
		Code:    CodeInvalidFormat,
		Field:   field,
		Message: field + " has an invalid format",
		Err:     err,
	}
}

// KindOf returns the kind of the first *Error in the chain, KindInternal otherwise.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// As is a shorthand for errors.As into *Error.
func As(err error) (*Error, bool) {
	var appErr *Error
	ok := errors.As(err, &appErr)
	return appErr, ok
}
