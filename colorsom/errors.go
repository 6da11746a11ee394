// SPDX-License-Identifier: MIT

package colorsom

import "errors"

var (
	// ErrInvalidSize indicates non-positive width or height.
	ErrInvalidSize = errors.New("colorsom: width and height must be > 0")

	// ErrBadColor indicates a string that is not "#RRGGBB".
	ErrBadColor = errors.New("colorsom: colour must be #RRGGBB")

	// ErrNotColorMap indicates a map whose weights are not 3-dimensional.
	ErrNotColorMap = errors.New("colorsom: weights must be 3-dimensional")
)
