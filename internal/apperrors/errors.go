// Package apperrors defines the closed error taxonomy the operations report
// through: validation, not-found, conflict and storage. Handlers map kinds to
// HTTP statuses; repositories classify driver errors here and nowhere else.
package apperrors

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Kind classifies an operation failure
type Kind int

const (
	// KindStorage is any persistence failure not classified more precisely
	KindStorage Kind = iota
	// KindValidation is malformed or out-of-range input, nothing persisted
	KindValidation
	// KindNotFound is a referenced entity missing where one is required
	KindNotFound
	// KindConflict is a uniqueness violation the operation must reject
	KindConflict
)

// Error is a classified operation failure
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

func (e *Error) Unwrap() error { return e.Err }

// Validationf builds a validation error
func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf builds a not-found error
func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflictf builds a conflict error
func Conflictf(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// Storage wraps an unclassified persistence failure
func Storage(err error) *Error {
	return &Error{Kind: KindStorage, Err: err}
}

// FromStore classifies a GORM error at the storage boundary. Requires the
// connection to run with TranslateError so driver-specific duplicate-key
// errors arrive as gorm.ErrDuplicatedKey.
func FromStore(err error) *Error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &Error{Kind: KindNotFound, Err: err}
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &Error{Kind: KindConflict, Err: err}
	default:
		return &Error{Kind: KindStorage, Err: err}
	}
}

// KindOf reports the kind of err, KindStorage for unclassified errors
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStorage
}
