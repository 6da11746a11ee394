// SPDX-License-Identifier: MIT

package som

import (
	"errors"
	"fmt"
)

// Sentinel errors for cells, maps and training runs.
var (
	// ErrKeyNotFound is returned when reading an attribute that was never set.
	ErrKeyNotFound = errors.New("som: attribute key not found")

	// ErrInvalidIterationCount is returned by Start when iterations <= 0.
	ErrInvalidIterationCount = errors.New("som: iteration count must be > 0")

	// ErrEmptyInputSet is returned by Start when there is nothing to sample.
	ErrEmptyInputSet = errors.New("som: input set is empty")

	// ErrNilInput indicates a nil vector inside the input set.
	ErrNilInput = errors.New("som: input vector is nil")

	// ErrEmptyMap indicates a map built from zero cells.
	ErrEmptyMap = errors.New("som: map has no cells")

	// ErrNilCell indicates a nil *Cell passed to NewMap.
	ErrNilCell = errors.New("som: cell is nil")

	// ErrNilMap indicates a nil *Map passed to NewTrainer.
	ErrNilMap = errors.New("som: map is nil")

	// ErrNilCalculator indicates a nil Calculator passed to NewTrainer.
	ErrNilCalculator = errors.New("som: calculator is nil")

	// ErrInvalidGrid indicates non-positive grid width or height.
	ErrInvalidGrid = errors.New("som: grid width and height must be > 0")

	// ErrCellNotFound is returned by Locate when no cell sits at a position.
	ErrCellNotFound = errors.New("som: no cell at position")

	// ErrNoBestMatch is returned when no cell has a finite distance to the
	// sampled input (e.g. the calculator produced NaN or +Inf everywhere).
	ErrNoBestMatch = errors.New("som: no best-matching cell")

	// ErrRunInProgress is returned when Start is called from inside a
	// callback of a run that has not finished.
	ErrRunInProgress = errors.New("som: training run already in progress")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("som: invalid option supplied")
)

// trainerErrorf wraps err with the iteration it happened in.
func trainerErrorf(op string, iteration int, err error) error {
	return fmt.Errorf("som.%s: iteration %d: %w", op, iteration, err)
}
