package domain

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	ErrValidation  ErrorKind = "validation"
	ErrRemoteWrite ErrorKind = "remote_write"
	ErrRemoteRead  ErrorKind = "remote_read"
	ErrAuth        ErrorKind = "auth"
)

// OperationError is the single failure shape surfaced to the user. Validation
// failures abort an operation before any write; remote failures leave the
// in-memory state at its last successfully fetched value.
type OperationError struct {
	Kind    ErrorKind
	Message string
}

func (e *OperationError) Error() string {
	return e.Message
}

func Validationf(format string, args ...any) error {
	return &OperationError{Kind: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

func RemoteWritef(format string, args ...any) error {
	return &OperationError{Kind: ErrRemoteWrite, Message: fmt.Sprintf(format, args...)}
}

func RemoteReadf(format string, args ...any) error {
	return &OperationError{Kind: ErrRemoteRead, Message: fmt.Sprintf(format, args...)}
}

func Authf(format string, args ...any) error {
	return &OperationError{Kind: ErrAuth, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the error's kind, or empty for errors outside the taxonomy.
func KindOf(err error) ErrorKind {
	var op *OperationError
	if errors.As(err, &op) {
		return op.Kind
	}
	return ""
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	return KindOf(err) == ErrValidation
}
