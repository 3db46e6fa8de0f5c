package scheduling

import (
	"errors"
	"fmt"
)

// ValidationError rejects a malformed reservation request before it
// reaches the write path.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(format string, args ...any) error {
	return &ValidationError{
		Code:    "validationError",
		Message: fmt.Sprintf(format, args...),
	}
}

// IsValidationError reports whether err is a request validation error.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
