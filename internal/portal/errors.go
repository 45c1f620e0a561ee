package portal

import (
	"errors"
	"fmt"
)

// ErrPostNotFound is returned when a post does not exist or is not visible to
// the requesting viewer. The two causes are deliberately indistinguishable so
// that unpublished posts do not leak their existence.
var ErrPostNotFound = errors.New("post not found")

// ErrConflict is returned when the store could not apply a toggle atomically
// because of contention. The operation is idempotent and safe to retry.
var ErrConflict = errors.New("conflicting concurrent update")

// ValidationError reports invalid authoring input. It is surfaced to the
// author and never silently coerced.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
