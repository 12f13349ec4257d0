package overlay

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// ErrValidation is matched by every ValidationError.
var ErrValidation = errors.New("validation failed")

// ValidationError reports why an input was rejected. Violations holds every
// problem found, not just the first.
type ValidationError struct {
	Violations []error
}

func newValidationError(errs ...error) *ValidationError {
	return &ValidationError{Violations: errs}
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Error())
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(msgs, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Unwrap() []error {
	return e.Violations
}

// asValidationError turns an aggregated multierr error into a ValidationError,
// or returns nil when there was nothing wrong.
func asValidationError(err error) error {
	if err == nil {
		return nil
	}
	return newValidationError(multierr.Errors(err)...)
}
