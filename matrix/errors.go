// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Public operations return these (wrapped with call-site context via
// matrixErrorf / boundsErrorf) and tests match them via errors.Is.
// No public method panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Wrappers add
// the operation tag and the offending values (indices, lengths, shapes) so a
// log line alone is enough to reproduce the failure.

var (
	// ErrOutOfBounds indicates that a logical (row, col) index is outside the matrix.
	ErrOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrBufferLength indicates a supplied buffer whose length is not rows*cols.
	ErrBufferLength = errors.New("matrix: buffer length does not match dimensions")

	// ErrDimensionMismatch indicates a row/column of the wrong length for the
	// current shape, including concat inputs whose non-concat extent differs.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrBadShape is returned when requested dimensions are negative.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrRaggedData indicates nested input rows of unequal length.
	ErrRaggedData = errors.New("matrix: ragged input rows")

	// ErrBadWindow indicates a non-positive block window.
	ErrBadWindow = errors.New("matrix: window must be > 0")

	// ErrBadAxis indicates an axis other than AxisRows or AxisCols.
	ErrBadAxis = errors.New("matrix: axis must be 0 (rows) or 1 (cols)")

	// ErrEmptyInput indicates an operation that needs at least one operand.
	ErrEmptyInput = errors.New("matrix: empty input")

	// ErrNilMatrix indicates that a nil *Matrix was passed where a value is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilBuffer indicates that a nil *buffer.Buffer was supplied as storage.
	ErrNilBuffer = errors.New("matrix: nil buffer")
)

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// boundsErrorf reports the offending coordinates together with the logical shape.
func boundsErrorf(tag string, i, j int, d Dim) error {
	return fmt.Errorf("%s: (%d, %d) is out of bounds for (%d, %d) matrix: %w",
		tag, i, j, d.Rows, d.Cols, ErrOutOfBounds)
}

// lengthErrorf reports a got/want length pair.
func lengthErrorf(tag, what string, got, want int, err error) error {
	return fmt.Errorf("%s: %s of length %d does not match %d: %w", tag, what, got, want, err)
}
