// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise arithmetic (Add, Sub, Hadamard, Scale) and broadcast
//     centering (CenterColumns, CenterRows) over logical indices.
//
// Determinism & Performance:
//   - Fixed loop order i→j; transposed operands are read through the view.
//   - Binary ops keep the left operand's kind; centering and Scale produce
//     Float32 since their results are fractional in general.
//   - O(r*c) time and one output allocation per call.

package matrix

import "github.com/katalvlaran/numflow/buffer"

const (
	opAdd      = "Add"
	opSub      = "Sub"
	opHadamard = "Hadamard"
	opScale    = "Scale"
	opCenter   = "Center"
)

// zipWith applies fn cell by cell to two equally shaped matrices.
func zipWith(tag string, a, b *Matrix, fn func(x, y float64) float64) (*Matrix, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(tag, ErrNilMatrix)
	}
	if a.Dims() != b.Dims() {
		return nil, matrixErrorf(tag, ErrDimensionMismatch)
	}
	out, err := New(a.Kind(), a.Dims())
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return out.Fill(func(i, j int) float64 { return fn(a.at(i, j), b.at(i, j)) }), nil
}

// Add returns a + b.
func Add(a, b *Matrix) (*Matrix, error) {
	return zipWith(opAdd, a, b, func(x, y float64) float64 { return x + y })
}

// Sub returns a - b.
func Sub(a, b *Matrix) (*Matrix, error) {
	return zipWith(opSub, a, b, func(x, y float64) float64 { return x - y })
}

// Hadamard returns the element-wise product a ⊙ b.
func Hadamard(a, b *Matrix) (*Matrix, error) {
	return zipWith(opHadamard, a, b, func(x, y float64) float64 { return x * y })
}

// Scale returns alpha * m as a Float32 matrix.
func Scale(m *Matrix, alpha float64) (*Matrix, error) {
	if m == nil {
		return nil, matrixErrorf(opScale, ErrNilMatrix)
	}
	out, err := New(buffer.Float32, m.Dims())
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return out.Fill(func(i, j int) float64 { return alpha * m.at(i, j) }), nil
}

// CenterColumns subtracts each column's mean from its cells.
func CenterColumns(m *Matrix) (*Matrix, error) {
	if m == nil {
		return nil, matrixErrorf(opCenter, ErrNilMatrix)
	}
	means := descriptionMeans(DescribeColumns(m, DescribeOptions{}))

	return broadcast(m, func(i, j int) float64 { return m.at(i, j) - means[j] })
}

// CenterRows subtracts each row's mean from its cells.
func CenterRows(m *Matrix) (*Matrix, error) {
	if m == nil {
		return nil, matrixErrorf(opCenter, ErrNilMatrix)
	}
	means := descriptionMeans(DescribeRows(m, DescribeOptions{}))

	return broadcast(m, func(i, j int) float64 { return m.at(i, j) - means[i] })
}

func broadcast(m *Matrix, f func(i, j int) float64) (*Matrix, error) {
	out, err := New(buffer.Float32, m.Dims())
	if err != nil {
		return nil, matrixErrorf(opCenter, err)
	}

	return out.Fill(f), nil
}

func descriptionMeans(ds []Description) []float64 {
	means := make([]float64, len(ds))
	for i, d := range ds {
		means[i] = d.Mean
	}

	return means
}
