package domain

import "fmt"

// ValidationError marks a client mistake: a missing or mistyped order
// field. The HTTP layer maps it to 400 with the message passed through.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}
