package errs

import "errors"

// IsInvalidArgument reports whether err was caused by a caller supplying a
// bad value, as opposed to addressing a missing object or a state conflict.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrValueIsInvalid) ||
		errors.Is(err, ErrValueIsOutOfRange) ||
		errors.Is(err, ErrValueIsRequired)
}
