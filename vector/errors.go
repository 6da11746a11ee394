// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"fmt"
)

// Sentinel errors for vector operations. Match with errors.Is; call sites
// wrap them with the failing operation name.
var (
	// ErrDimensionMismatch indicates two operands of unequal dimension.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrOutOfRange indicates a component index outside [0, Dim).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrInvalidDimension indicates a requested dimension that is not > 0.
	ErrInvalidDimension = errors.New("vector: dimension must be > 0")

	// ErrNilVector indicates a nil *Vector operand.
	ErrNilVector = errors.New("vector: nil vector")
)

// vectorErrorf wraps err with the operation that produced it.
func vectorErrorf(op string, err error) error {
	return fmt.Errorf("vector.%s: %w", op, err)
}

// indexErrorf wraps ErrOutOfRange with the offending index and dimension.
func indexErrorf(op string, i, dim int) error {
	return fmt.Errorf("vector.%s(%d) on dim %d: %w", op, i, dim, ErrOutOfRange)
}

// validateSameDim is the single guard used by every binary operation.
func validateSameDim(op string, a, b *Vector) error {
	if a == nil || b == nil {
		return vectorErrorf(op, ErrNilVector)
	}
	if len(a.data) != len(b.data) {
		return fmt.Errorf("vector.%s: %d vs %d: %w", op, len(a.data), len(b.data), ErrDimensionMismatch)
	}

	return nil
}
