package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a typed domain error with HTTP awareness.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Field   string `json:"field,omitempty"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches errors by code so clones compare equal to their template.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) || e == nil || t == nil {
		return false
	}
	return e.Code == t.Code
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Predefined errors for common scenarios.
var (
	ErrMissingToken       = New("MISSING_TOKEN", http.StatusUnauthorized, "Token não fornecido")
	ErrInvalidToken       = New("INVALID_TOKEN", http.StatusUnauthorized, "Token inválido")
	ErrDuplicateUser      = New("DUPLICATE_USER", http.StatusBadRequest, "Utilizador administrador já existe! Use as credenciais existentes para iniciar sessão.")
	ErrInvalidCredentials = New("INVALID_CREDENTIALS", http.StatusUnauthorized, "Credenciais inválidas")
	ErrDanglingReference  = New("DANGLING_REFERENCE", http.StatusBadRequest, "referenced record does not exist")
	ErrStorage            = New("STORAGE_FAILURE", http.StatusBadRequest, "storage failure")
	ErrNotFound           = New("NOT_FOUND", http.StatusNotFound, "Recurso não encontrado")
	ErrValidation         = New("VALIDATION_ERROR", http.StatusBadRequest, "validation failed")
	ErrInternal           = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal server error")
	ErrCacheMiss          = New("CACHE_MISS", http.StatusNotFound, "cache miss")
)

// DanglingReference reports a foreign key that names no existing row.
func DanglingReference(field, message string) *Error {
	clone := Clone(ErrDanglingReference, message)
	clone.Field = field
	return clone
}

// Storage wraps a driver error; the raw driver text becomes the message.
func Storage(err error, status int) *Error {
	if status == 0 {
		status = ErrStorage.Status
	}
	message := ErrStorage.Message
	if root := rootCause(err); root != nil {
		message = root.Error()
	}
	return &Error{Code: ErrStorage.Code, Status: status, Message: message, Err: err}
}

func rootCause(err error) error {
	for err != nil {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
	return nil
}

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}
