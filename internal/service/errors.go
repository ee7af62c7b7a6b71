package service

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrValidation           = errors.New("validation failed")
	ErrNotFound             = errors.New("not found")
	ErrConflict             = errors.New("already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidSignature     = errors.New("invalid signature")
	ErrConfigurationMissing = errors.New("essential configuration missing")
	ErrPersistence          = errors.New("failed to persist")
)

// Error pairs a sentinel kind with the message shown to the client.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, message string) error {
	return &Error{Kind: kind, Message: message}
}

// conflictOr turns a unique-key violation into a conflict error.
func conflictOr(err error, message string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return newError(ErrConflict, message)
	}
	return err
}
