// SPDX-License-Identifier: MIT
// Package matrix_test covers structural edits and concatenation.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/numflow/buffer"
	"github.com/katalvlaran/numflow/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAddRow appends a last row.
func TestAddRow(t *testing.T) {
	m := simple3x3(t)
	require.NoError(t, m.AddRow([]float64{1, 2, 3}))

	assert.Equal(t, matrix.Dim{Rows: 4, Cols: 3}, m.Dims())
	requireEqual(t, mustData(t, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
		{1, 2, 3},
	}), m)

	err := m.AddRow([]float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	assert.Contains(t, err.Error(), "row of length 2 does not match 3")
}

// TestAddCol appends a last column.
func TestAddCol(t *testing.T) {
	m := simple3x3(t)
	require.NoError(t, m.AddCol([]float64{1, 2, 3}))

	requireEqual(t, mustData(t, [][]float64{
		{1, 2, 3, 1},
		{4, 5, 6, 2},
		{7, 8, 9, 3},
	}), m)
	require.ErrorIs(t, m.AddCol([]float64{1}), matrix.ErrDimensionMismatch)
}

// TestAddRow_Transposed keeps orientation: the new row lands at the new
// logical row index and the flag survives.
func TestAddRow_Transposed(t *testing.T) {
	m := mustData(t, [][]float64{{1, 2, 3}, {4, 5, 6}}).Transpose() // 3×2: [1 4][2 5][3 6]
	require.NoError(t, m.AddRow([]float64{7, 8}))

	assert.True(t, m.Transposed())
	assert.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}, {7, 8}}, m.ToArrays())
}

// TestAddRow_KeepsIdentity ensures merge swaps state inside the same pointer.
func TestAddRow_KeepsIdentity(t *testing.T) {
	m := mustData(t, [][]float64{{1}}, matrix.WithKind(buffer.Int32))
	alias := m
	require.NoError(t, m.AddRow([]float64{2}))
	assert.Equal(t, 2, alias.Rows())
	assert.Equal(t, buffer.Int32, alias.Kind())
}

// TestForceReshape_Smaller truncates.
func TestForceReshape_Smaller(t *testing.T) {
	m := simple3x3(t)
	require.NoError(t, m.ForceReshape(matrix.Dim{Rows: 2, Cols: 2}))
	requireEqual(t, mustData(t, [][]float64{{1, 2}, {4, 5}}), m)
}

// TestForceReshape_Larger pads with zeros.
func TestForceReshape_Larger(t *testing.T) {
	m := simple3x3(t)
	require.NoError(t, m.ForceReshape(matrix.Dim{Rows: 4, Cols: 4}))
	requireEqual(t, mustData(t, [][]float64{
		{1, 2, 3, 0},
		{4, 5, 6, 0},
		{7, 8, 9, 0},
		{0, 0, 0, 0},
	}), m)
}

// TestForceReshape_Same is a value-preserving no-op.
func TestForceReshape_Same(t *testing.T) {
	m := simple3x3(t)
	require.NoError(t, m.ForceReshape(m.Dims()))
	requireEqual(t, simple3x3(t), m)
	require.ErrorIs(t, m.ForceReshape(matrix.Dim{Rows: -1}), matrix.ErrBadShape)
}

// TestConcat_Rows stacks rows in input order.
func TestConcat_Rows(t *testing.T) {
	m := mustData(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	n := mustData(t, [][]float64{{7, 8, 9}})

	got, err := matrix.Concat([]*matrix.Matrix{m, n}, matrix.AxisRows)
	require.NoError(t, err)
	requireEqual(t, simple3x3(t), got)
}

// TestConcat_Cols stacks columns; transposed inputs contribute logical columns.
func TestConcat_Cols(t *testing.T) {
	a := mustData(t, [][]float64{{1}, {4}})
	b := mustData(t, [][]float64{{2, 5}, {3, 6}}).Transpose() // logical [[2 3][5 6]]

	got, err := matrix.Concat([]*matrix.Matrix{a, b}, matrix.AxisCols)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, got.ToArrays())
}

// TestConcat_Errors covers every failure mode.
func TestConcat_Errors(t *testing.T) {
	_, err := matrix.Concat(nil, matrix.AxisRows)
	require.ErrorIs(t, err, matrix.ErrEmptyInput)

	a := mustData(t, [][]float64{{1, 2}})
	_, err = matrix.Concat([]*matrix.Matrix{a}, matrix.Axis(2))
	require.ErrorIs(t, err, matrix.ErrBadAxis)

	_, err = matrix.Concat([]*matrix.Matrix{a, nil}, matrix.AxisRows)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Concat([]*matrix.Matrix{a, mustData(t, [][]float64{{1, 2, 3}})}, matrix.AxisRows)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	assert.Contains(t, err.Error(), "input 1")

	_, err = matrix.Concat([]*matrix.Matrix{a, mustData(t, [][]float64{{1}, {2}})}, matrix.AxisCols)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
