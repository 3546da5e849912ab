// SPDX-License-Identifier: MIT

// Package matrix - factories.
//
// Purpose:
//   - Zeros / FromData / FromFlatData / FromBuffer / FromMatrix / Concat build fresh matrices.
//   - Every factory returns an untransposed matrix whose physical layout equals
//     its logical layout, except FromBuffer which adopts the caller's buffer.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/numflow/buffer"
)

const (
	ctxZeros      = "matrix.Zeros"
	ctxFromData   = "matrix.FromData"
	ctxFromMatrix = "matrix.FromMatrix"
	ctxFromFlat   = "matrix.FromFlatData"
	ctxConcat     = "matrix.Concat"
)

// Axis selects rows (0) or columns (1).
type Axis int

const (
	// AxisRows stacks/partitions along rows.
	AxisRows Axis = 0
	// AxisCols stacks/partitions along columns.
	AxisCols Axis = 1
)

func (a Axis) valid() bool { return a == AxisRows || a == AxisCols }

// Zeros returns a zero matrix of shape d (Float32 unless WithKind is given).
func Zeros(d Dim, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	m, err := New(o.kind, d)
	if err != nil {
		return nil, matrixErrorf(ctxZeros, err)
	}

	return m, nil
}

// FromData copies nested rows into a new matrix. Rows must share one length.
// An empty slice yields a 0×0 matrix.
// Errors: ErrRaggedData.
func FromData(data [][]float64, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	d := Dim{Rows: len(data)}
	if d.Rows > 0 {
		d.Cols = len(data[0])
	}
	for i, row := range data {
		if len(row) != d.Cols {
			return nil, fmt.Errorf("%s: row %d has length %d, want %d: %w",
				ctxFromData, i, len(row), d.Cols, ErrRaggedData)
		}
	}
	m, err := New(o.kind, d)
	if err != nil {
		return nil, matrixErrorf(ctxFromData, err)
	}

	return m.Fill(func(i, j int) float64 { return data[i][j] }), nil
}

// FromFlatData copies row-major data into a new d-shaped matrix.
// Errors: ErrBufferLength, ErrBadShape.
func FromFlatData(data []float64, d Dim, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	if d.Rows < 0 || d.Cols < 0 {
		return nil, matrixErrorf(ctxFromFlat, ErrBadShape)
	}
	if len(data) != d.Size() {
		return nil, lengthErrorf(ctxFromFlat, "data", len(data), d.Size(), ErrBufferLength)
	}
	m, err := New(o.kind, d)
	if err != nil {
		return nil, matrixErrorf(ctxFromFlat, err)
	}

	return m.Fill(func(i, j int) float64 { return data[i*d.Cols+j] }), nil
}

// FromBuffer adopts buf (no copy) as a d-shaped matrix of the buffer's own kind.
// Errors: ErrNilBuffer, ErrBufferLength.
func FromBuffer(buf *buffer.Buffer, d Dim) (*Matrix, error) {
	return NewWithBuffer(d, buf)
}

// FromMatrix returns an untransposed copy of src's logical contents with the
// same storage kind.
func FromMatrix(src *Matrix) (*Matrix, error) {
	if src == nil {
		return nil, matrixErrorf(ctxFromMatrix, ErrNilMatrix)
	}
	out, err := New(src.Kind(), src.Dims())
	if err != nil {
		return nil, matrixErrorf(ctxFromMatrix, err)
	}

	return out.Fill(src.at), nil
}

// Concat joins ms along axis in input order. AxisRows appends every row of
// every input (all inputs need equal Cols); AxisCols appends columns (equal
// Rows). The result takes the first input's storage kind.
//
// Errors:
//   - ErrEmptyInput when ms is empty; ErrNilMatrix for a nil element.
//   - ErrBadAxis.
//   - ErrDimensionMismatch naming the first offending input.
//
// Complexity: O(total cells).
func Concat(ms []*Matrix, axis Axis) (*Matrix, error) {
	if len(ms) == 0 {
		return nil, matrixErrorf(ctxConcat, ErrEmptyInput)
	}
	if !axis.valid() {
		return nil, matrixErrorf(ctxConcat, ErrBadAxis)
	}
	if ms[0] == nil {
		return nil, matrixErrorf(ctxConcat, ErrNilMatrix)
	}

	// Stage 1: walk inputs in order, failing at the first length mismatch the
	// per-row/per-col append would hit.
	first := ms[0].Dims()
	out := first
	if axis == AxisRows {
		out.Rows = 0
	} else {
		out.Cols = 0
	}
	for k, m := range ms {
		if m == nil {
			return nil, matrixErrorf(ctxConcat, ErrNilMatrix)
		}
		d := m.Dims()
		if axis == AxisRows {
			if d.Rows > 0 && d.Cols != first.Cols {
				return nil, fmt.Errorf("%s: input %d: %w", ctxConcat, k,
					lengthErrorf("AddRow", "row", d.Cols, first.Cols, ErrDimensionMismatch))
			}
			out.Rows += d.Rows
		} else {
			if d.Cols > 0 && d.Rows != first.Rows {
				return nil, fmt.Errorf("%s: input %d: %w", ctxConcat, k,
					lengthErrorf("AddCol", "col", d.Rows, first.Rows, ErrDimensionMismatch))
			}
			out.Cols += d.Cols
		}
	}

	// Stage 2: single allocation, copy blocks.
	res, err := New(ms[0].Kind(), out)
	if err != nil {
		return nil, matrixErrorf(ctxConcat, err)
	}
	base := 0
	for _, m := range ms {
		d := m.Dims()
		for i := 0; i < d.Rows; i++ {
			for j := 0; j < d.Cols; j++ {
				if axis == AxisRows {
					res.put(base+i, j, m.at(i, j))
				} else {
					res.put(i, base+j, m.at(i, j))
				}
			}
		}
		if axis == AxisRows {
			base += d.Rows
		} else {
			base += d.Cols
		}
	}

	return res, nil
}
