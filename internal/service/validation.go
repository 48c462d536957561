package service

import (
	"errors"
	"fmt"
)

// ErrValidation marks input rejected before any write.  Wrapped errors
// carry the specific field message; handlers map the class to 400.
var ErrValidation = errors.New("validation failed")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
