package availability

import (
	"errors"
	"fmt"
)

// ConfigError reports a doctor-profile misconfiguration (non-positive slot
// duration, unparsable template times). It is never defaulted away; the
// operator has to fix the profile.
type ConfigError struct {
	Code    string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewConfigError(format string, args ...any) error {
	return &ConfigError{
		Code:    "invalidConfiguration",
		Message: fmt.Sprintf(format, args...),
	}
}

// IsConfigError reports whether err is a profile configuration error.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
