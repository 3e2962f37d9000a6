package repository

import "errors"

// Lookup failures shared by every store implementation
var (
	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrDraftNotFound   = errors.New("draft not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrDuplicateEmail  = errors.New("email already registered")
)
