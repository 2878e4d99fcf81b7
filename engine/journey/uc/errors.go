package uc

import "errors"

var (
	// ErrClientIDRequired is returned when the client_id field is empty
	ErrClientIDRequired = errors.New("client_id is required")
	// ErrModuleSlugRequired is returned when the module_slug field is empty
	ErrModuleSlugRequired = errors.New("module_slug is required")
	// ErrUserNotFound is returned when no user exists for a client_id
	ErrUserNotFound = errors.New("user not found")
)

// IsValidation reports whether err is a missing-field validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrClientIDRequired) || errors.Is(err, ErrModuleSlugRequired)
}
