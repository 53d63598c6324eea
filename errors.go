// SPDX-License-Identifier: MIT

package openmeta

import (
	"errors"
	"fmt"
)

// errInvalidFormat is the sentinel wrapped by every InvalidFormatError
// constructed without a more specific inner error.
var errInvalidFormat = &InvalidFormatError{Err: errors.New("invalid format")}

// InvalidFormatError reports that container or decoder input did not match
// the structure its format requires. Scanners return a ScanStatus instead
// of an error (they have no error return); decoders and the BMFF walker's
// collaborators use InvalidFormatError for malformed payloads they cannot
// shallowly route around.
type InvalidFormatError struct {
	Err error
}

func (e *InvalidFormatError) Error() string {
	return "invalid format: " + e.Err.Error()
}

// Is reports whether target is also an InvalidFormatError, so callers can
// use errors.Is(err, openmeta.ErrInvalidFormat) regardless of the wrapped
// detail.
func (e *InvalidFormatError) Is(target error) bool {
	_, ok := target.(*InvalidFormatError)
	return ok
}

func (e *InvalidFormatError) Unwrap() error {
	return e.Err
}

// ErrInvalidFormat is the sentinel to compare against with errors.Is.
var ErrInvalidFormat = errInvalidFormat

func newInvalidFormatErrorf(format string, args ...any) error {
	return &InvalidFormatError{Err: fmt.Errorf(format, args...)}
}

// IsInvalidFormat reports whether err is (or wraps) an InvalidFormatError.
func IsInvalidFormat(err error) bool {
	return errors.Is(err, errInvalidFormat)
}
