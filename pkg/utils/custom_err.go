package utils

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")

	ErrItemNotFound  = errors.New("inventory item not found")
	ErrAlertNotFound = errors.New("alert not found")
	ErrBadCategory   = errors.New("unknown carbon category")
	ErrInvalidLimit  = errors.New("invalid limit parameter")

	ErrDatabaseError = errors.New("database error")
)
