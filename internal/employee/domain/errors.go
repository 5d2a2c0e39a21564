package domain

import "errors"

var (
	ErrNotFound       = errors.New("employee_not_found")
	ErrInvalidID      = errors.New("invalid_employee_id")
	ErrDuplicateEmail = errors.New("duplicate_email")
)
