// SPDX-License-Identifier: MIT

package planar

import "errors"

var (
	// ErrInvalidSize indicates non-positive grid width or height.
	ErrInvalidSize = errors.New("planar: width and height must be > 0")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("planar: invalid option supplied")
)
