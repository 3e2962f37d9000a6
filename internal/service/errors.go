package service

import (
	"errors"
	"fmt"

	"github.com/ridwanfathin/invoice-builder-service/internal/repository"
)

// Common errors
var (
	ErrUserAlreadyExists    = errors.New("user with this email already exists")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrPasswordMismatch     = errors.New("passwords do not match")
	ErrUserNotFound         = repository.ErrUserNotFound
	ErrDraftNotFound        = repository.ErrDraftNotFound
	ErrInvoiceNotFound      = repository.ErrInvoiceNotFound
	ErrNoOwner              = errors.New("no authenticated owner")
	ErrMissingInvoiceNumber = errors.New("invoice number is required")
	ErrPersistFailure       = errors.New("failed to persist invoice")
)

// ServiceError records the operation that failed
type ServiceError struct {
	Op  string
	Err error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func opError(op string, err error) error {
	return &ServiceError{Op: op, Err: err}
}
