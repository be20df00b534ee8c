package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an error for transport-level status mapping.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindNotFound      Kind = "not_found"
	KindUpload        Kind = "upload"
	KindPersistence   Kind = "persistence"
	KindConfiguration Kind = "configuration"
)

// Error is the single error type the adapters and repositories return for
// expected failure modes. The wrapped cause keeps the raw backend message.
type Error struct {
	Kind      Kind
	Message   string
	Duplicate bool
	Err       error
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

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func NotFound(resource string) *Error {
	return &Error{Kind: KindNotFound, Message: resource + " not found"}
}

func Upload(message string, err error) *Error {
	return &Error{Kind: KindUpload, Message: message, Err: err}
}

func Persistence(message string, err error) *Error {
	return &Error{Kind: KindPersistence, Message: message, Err: err}
}

// DuplicateKey marks a uniqueness violation. It is still a persistence
// error, but handlers answer it with a conflict status.
func DuplicateKey(message string, err error) *Error {
	return &Error{Kind: KindPersistence, Message: message, Duplicate: true, Err: err}
}

func Configuration(message string, err error) *Error {
	return &Error{Kind: KindConfiguration, Message: message, Err: err}
}

func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}

func IsUpload(err error) bool {
	return KindOf(err) == KindUpload
}

func IsDuplicate(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Duplicate
}
