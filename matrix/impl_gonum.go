// SPDX-License-Identifier: MIT

// Package matrix - gonum interop.
//
// Gonum returns a mat.Matrix view that reads through the live *Matrix, so it
// honors transposition and later structural edits without copying.
// FromGonum copies the other way.

package matrix

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/numflow/buffer"
)

// gonumView adapts *Matrix to mat.Matrix.
type gonumView struct{ m *Matrix }

var _ mat.Matrix = gonumView{}

// Gonum returns a read-only gonum view of m.
func (m *Matrix) Gonum() mat.Matrix { return gonumView{m: m} }

func (v gonumView) Dims() (r, c int) {
	d := v.m.Dims()

	return d.Rows, d.Cols
}

// At panics with mat.ErrIndexOutOfRange like gonum's own types.
func (v gonumView) At(i, j int) float64 {
	if !v.m.InBounds(i, j) {
		panic(mat.ErrIndexOutOfRange)
	}

	return v.m.at(i, j)
}

func (v gonumView) T() mat.Matrix { return mat.Transpose{Matrix: v} }

// FromGonum copies any gonum matrix into a new matrix of the given kind.
func FromGonum(src mat.Matrix, kind buffer.Kind) (*Matrix, error) {
	r, c := src.Dims()
	out, err := New(kind, Dim{Rows: r, Cols: c})
	if err != nil {
		return nil, matrixErrorf("matrix.FromGonum", err)
	}

	return out.Fill(src.At), nil
}
