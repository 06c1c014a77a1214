package window

import (
	"fmt"

	"go.uber.org/multierr"
)

// Assert returns nil if statement holds, otherwise a GeneralError carrying message.
// It does not log; callers decide where the message goes.
func Assert(statement bool, message string) error {
	if statement {
		return nil
	}
	return fail("window.Assert", GeneralError, fmt.Errorf("%w: %s", ErrInvalidArgument, message))
}

// Validate combines the results of several checks into one error.
func Validate(checks ...error) error {
	return multierr.Combine(checks...)
}
