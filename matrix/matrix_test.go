// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for construction, access and
// transposition.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numflow/buffer"
	"github.com/katalvlaran/numflow/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGet_RowMajor verifies plain indexed access.
func TestGet_RowMajor(t *testing.T) {
	m := simple3x3(t)

	v, err := m.Get(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	v, err = m.Get(2, 0)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)
	assert.Equal(t, matrix.Dim{Rows: 3, Cols: 3}, m.Dims())
}

// TestGet_OutOfBounds checks the sentinel and that the message names the
// coordinates and the logical shape.
func TestGet_OutOfBounds(t *testing.T) {
	m := simple3x3(t)

	_, err := m.Get(6, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfBounds)
	assert.Contains(t, err.Error(), "(6, 2) is out of bounds for (3, 3)")

	_, err = m.Get(2, 6)
	require.ErrorIs(t, err, matrix.ErrOutOfBounds)

	_, err = m.Get(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfBounds)

	require.ErrorIs(t, m.Set(0, 3, 1), matrix.ErrOutOfBounds)
	assert.Panics(t, func() { m.MustGet(3, 0) })
}

// TestSet_Get validates a write followed by a read.
func TestSet_Get(t *testing.T) {
	m := simple3x3(t)
	require.NoError(t, m.Set(0, 1, 3))
	assert.Equal(t, 3.0, m.MustGet(0, 1))
}

// TestTranspose_Access checks transposed reads and that no data moved.
func TestTranspose_Access(t *testing.T) {
	m := simple3x3(t)
	before := m.Raw().Float64s()

	m.Transpose()
	assert.True(t, m.Transposed())
	assert.Equal(t, 1.0, m.MustGet(0, 0))
	assert.Equal(t, 3.0, m.MustGet(2, 0))
	assert.Equal(t, before, m.Raw().Float64s())
}

// TestTranspose_NonSquare checks that logical dims swap and get(i,j) == orig.get(j,i).
func TestTranspose_NonSquare(t *testing.T) {
	orig := mustData(t, [][]float64{{0, 1, 2}, {3, 4, 5}})
	tr := mustData(t, [][]float64{{0, 1, 2}, {3, 4, 5}}).Transpose()

	require.Equal(t, matrix.Dim{Rows: 3, Cols: 2}, tr.Dims())
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			assert.Equal(t, orig.MustGet(j, i), tr.MustGet(i, j))
		}
	}
	require.NoError(t, tr.Set(2, 1, 50))
	assert.Equal(t, 50.0, tr.MustGet(2, 1))
	assert.Equal(t, 50.0, tr.Raw().Float64s()[5])
}

// TestTranspose_RoundTrip checks that two transpositions restore equality.
func TestTranspose_RoundTrip(t *testing.T) {
	m := mustData(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	ref := mustData(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	requireEqual(t, ref, m.Transpose().Transpose())
}

// TestFromMatrix_Transposed materializes a transposed view.
func TestFromMatrix_Transposed(t *testing.T) {
	m := mustData(t, [][]float64{{0, 1}, {2, 3}, {4, 5}})
	m.Transpose()

	n, err := matrix.FromMatrix(m)
	require.NoError(t, err)
	assert.False(t, n.Transposed())
	requireEqual(t, mustData(t, [][]float64{{0, 2, 4}, {1, 3, 5}}), n)

	_, err = matrix.FromMatrix(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestZeros builds a zero matrix with the default kind.
func TestZeros(t *testing.T) {
	m, err := matrix.Zeros(matrix.Dim{Rows: 3, Cols: 2})
	require.NoError(t, err)
	assert.Equal(t, buffer.Float32, m.Kind())
	requireEqual(t, mustData(t, [][]float64{{0, 0}, {0, 0}, {0, 0}}), m)

	_, err = matrix.Zeros(matrix.Dim{Rows: -1, Cols: 2})
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestNewWithBuffer_Length rejects a buffer of the wrong size.
func TestNewWithBuffer_Length(t *testing.T) {
	_, err := matrix.NewWithBuffer(matrix.Dim{Rows: 2, Cols: 2}, buffer.NewInt32(3))
	require.ErrorIs(t, err, matrix.ErrBufferLength)
	assert.Contains(t, err.Error(), "length 3 does not match 4")

	m, err := matrix.FromBuffer(buffer.FromInt32([]int32{1, 2, 3, 4}), matrix.Dim{Rows: 2, Cols: 2})
	require.NoError(t, err)
	assert.Equal(t, buffer.Int32, m.Kind())
	assert.Equal(t, 3.0, m.MustGet(1, 0))

	require.ErrorIs(t, m.Load(buffer.NewInt32(5)), matrix.ErrBufferLength)
	require.NoError(t, m.Load(buffer.FromInt32([]int32{4, 3, 2, 1})))
	assert.Equal(t, 2.0, m.MustGet(1, 0))
}

// TestNewWithBuffer_Nil rejects missing storage instead of panicking.
func TestNewWithBuffer_Nil(t *testing.T) {
	_, err := matrix.NewWithBuffer(matrix.Dim{Rows: 1, Cols: 1}, nil)
	require.ErrorIs(t, err, matrix.ErrNilBuffer)

	_, err = matrix.FromBuffer(nil, matrix.Dim{})
	require.ErrorIs(t, err, matrix.ErrNilBuffer)

	m := mustData(t, [][]float64{{1}})
	require.ErrorIs(t, m.Load(nil), matrix.ErrNilBuffer)
	assert.Equal(t, 1.0, m.MustGet(0, 0))
}

// TestFromData_Ragged rejects rows of unequal length.
func TestFromData_Ragged(t *testing.T) {
	_, err := matrix.FromData([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRaggedData)

	empty, err := matrix.FromData(nil)
	require.NoError(t, err)
	assert.Equal(t, matrix.Dim{}, empty.Dims())
}

// TestUint8_Storage pins wraparound through the matrix surface.
func TestUint8_Storage(t *testing.T) {
	m := mustData(t, [][]float64{{256, -1, 3.7}}, matrix.WithKind(buffer.Uint8))
	assert.Equal(t, [][]float64{{0, 255, 3}}, m.ToArrays())
}

// TestFill_Broadcast covers both fill forms.
func TestFill_Broadcast(t *testing.T) {
	m, err := matrix.Zeros(matrix.Dim{Rows: 2, Cols: 3})
	require.NoError(t, err)

	m.FillValue(7)
	assert.Equal(t, [][]float64{{7, 7, 7}, {7, 7, 7}}, m.ToArrays())

	m.Fill(func(i, j int) float64 { return float64(10*i + j) })
	assert.Equal(t, [][]float64{{0, 1, 2}, {10, 11, 12}}, m.ToArrays())
}

// TestRowCol returns copies of logical vectors.
func TestRowCol(t *testing.T) {
	m := simple3x3(t)

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6}, row)

	col, err := m.Col(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 5, 8}, col)

	_, err = m.Row(3)
	require.ErrorIs(t, err, matrix.ErrOutOfBounds)
	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfBounds)
}

// TestEqual_Strict confirms strict equality semantics.
func TestEqual_Strict(t *testing.T) {
	a := mustData(t, [][]float64{{math.NaN()}})
	b := mustData(t, [][]float64{{math.NaN()}})
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(nil))
	assert.False(t, simple3x3(t).Equal(mustData(t, [][]float64{{1, 2, 3}})))

	i32 := mustData(t, [][]float64{{1, 2}}, matrix.WithKind(buffer.Int32))
	f32 := mustData(t, [][]float64{{1, 2}})
	assert.True(t, i32.Equal(f32))
}

// TestFormat renders fixed decimals.
func TestFormat(t *testing.T) {
	m := mustData(t, [][]float64{{1, 2}, {3, 4}})
	assert.Equal(t, "1.0 2.0 \n3.0 4.0 \n", m.Format(1))
	assert.Equal(t, "1.000 2.000 \n3.000 4.000 \n", m.String())
}

// TestFromFlatData reads row-major input and checks its length.
func TestFromFlatData(t *testing.T) {
	m, err := matrix.FromFlatData([]float64{1, 2, 3, 4, 5, 6}, matrix.Dim{Rows: 2, Cols: 3})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m.ToArrays())

	_, err = matrix.FromFlatData([]float64{1, 2}, matrix.Dim{Rows: 2, Cols: 3})
	require.ErrorIs(t, err, matrix.ErrBufferLength)
	assert.Contains(t, err.Error(), "data of length 2 does not match 6")

	_, err = matrix.FromFlatData(nil, matrix.Dim{Rows: -1, Cols: 0})
	require.ErrorIs(t, err, matrix.ErrBadShape)
}
