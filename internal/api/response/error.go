package response

import "fmt"

// Error is an API-level failure carrying the HTTP status and the stable
// machine code clients branch on. Handlers and middleware return it; the
// central error handler renders it through the envelope.
type Error struct {
	Status  int
	Code    string
	Message string
}

func NewError(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
