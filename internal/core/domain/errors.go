package domain

import "errors"

// Closed error-kind set for the user store and auth flows. The HTTP error
// handler switches on these exhaustively; repositories must map driver
// failures onto them instead of letting driver types escape.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidID          = errors.New("invalid id format")
)

// DuplicateKeyError reports that a storage uniqueness constraint rejected an
// insert. Field names the violated field so the client message can include it.
type DuplicateKeyError struct {
	Field string
}

func (e *DuplicateKeyError) Error() string {
	return e.Field + " already exists"
}
