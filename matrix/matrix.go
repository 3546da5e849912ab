// SPDX-License-Identifier: MIT

// Package matrix - Matrix type, layout & safe accessors.
//
// Purpose:
//   - Keep one fixed physical row-major layout (physRows × physCols) per buffer.
//   - Map logical (i, j) onto it through the transposition flag:
//     transposed ? j*physCols + i : i*physCols + j.
//   - Guarantee safety at the public surface: Get/Set return errors instead of panicking.
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; Get/Set/Transpose: O(1); Fill/Equal/ToArrays: O(r*c).

package matrix

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/numflow/buffer"
)

const (
	ctxGet   = "Matrix.Get"
	ctxSet   = "Matrix.Set"
	ctxRow   = "Matrix.Row"
	ctxCol   = "Matrix.Col"
	ctxLoad  = "Matrix.Load"
	ctxNew   = "matrix.New"
	ctxShape = "Matrix.ForceReshape"
)

// Dim is a (rows, cols) pair.
type Dim struct {
	Rows int
	Cols int
}

// Size returns Rows*Cols.
func (d Dim) Size() int { return d.Rows * d.Cols }

// swap returns the transposed pair.
func (d Dim) swap() Dim { return Dim{Rows: d.Cols, Cols: d.Rows} }

// state is everything a structural edit replaces at once.
//   - buf holds phys.Size() elements in row-major order.
//   - phys is the physical shape, unaffected by transposition.
type state struct {
	buf        *buffer.Buffer
	phys       Dim
	transposed bool
}

// Matrix is a dense 2D view over an exclusively owned buffer.Buffer.
// The zero value is not usable; build matrices with New, Zeros, FromData,
// FromBuffer, FromMatrix or Concat.
type Matrix struct {
	st state
}

// New allocates a zero-filled matrix of the given kind and logical shape.
// Zero-sized shapes (0×N, N×0) are legal and are the seed for Concat.
// Errors: ErrBadShape on negative dims, buffer.ErrUnknownKind.
func New(kind buffer.Kind, d Dim) (*Matrix, error) {
	if d.Rows < 0 || d.Cols < 0 {
		return nil, matrixErrorf(ctxNew, ErrBadShape)
	}
	buf, err := buffer.New(kind, d.Size())
	if err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}

	return &Matrix{st: state{buf: buf, phys: d}}, nil
}

// NewWithBuffer wraps buf (no copy) as a d-shaped matrix.
// Errors: ErrNilBuffer, ErrBadShape, ErrBufferLength when buf.Len() != d.Rows*d.Cols.
func NewWithBuffer(d Dim, buf *buffer.Buffer) (*Matrix, error) {
	if buf == nil {
		return nil, matrixErrorf(ctxNew, ErrNilBuffer)
	}
	if d.Rows < 0 || d.Cols < 0 {
		return nil, matrixErrorf(ctxNew, ErrBadShape)
	}
	if buf.Len() != d.Size() {
		return nil, lengthErrorf(ctxNew, "buffer", buf.Len(), d.Size(), ErrBufferLength)
	}

	return &Matrix{st: state{buf: buf, phys: d}}, nil
}

// newShaped allocates a matrix whose *logical* shape is d under the given
// transposition flag, so structural edits keep the caller's orientation.
func newShaped(kind buffer.Kind, d Dim, transposed bool) *Matrix {
	phys := d
	if transposed {
		phys = d.swap()
	}
	buf, _ := buffer.New(kind, phys.Size()) // kind comes from an existing matrix

	return &Matrix{st: state{buf: buf, phys: phys, transposed: transposed}}
}

// Dims returns the logical shape.
func (m *Matrix) Dims() Dim {
	if m.st.transposed {
		return m.st.phys.swap()
	}

	return m.st.phys
}

// Rows returns the logical row count.
func (m *Matrix) Rows() int { return m.Dims().Rows }

// Cols returns the logical column count.
func (m *Matrix) Cols() int { return m.Dims().Cols }

// Kind returns the storage kind.
func (m *Matrix) Kind() buffer.Kind { return m.st.buf.Kind() }

// Raw returns the live underlying buffer in physical row-major order.
func (m *Matrix) Raw() *buffer.Buffer { return m.st.buf }

// Transposed reports the current transposition flag.
func (m *Matrix) Transposed() bool { return m.st.transposed }

// InBounds reports whether (i, j) addresses a logical cell.
func (m *Matrix) InBounds(i, j int) bool {
	d := m.Dims()

	return i >= 0 && j >= 0 && i < d.Rows && j < d.Cols
}

// offset maps a logical index onto the physical buffer. Caller checks bounds.
func (m *Matrix) offset(i, j int) int {
	if m.st.transposed {
		return j*m.st.phys.Cols + i
	}

	return i*m.st.phys.Cols + j
}

// at is the unchecked read used by loops that iterate within Dims().
func (m *Matrix) at(i, j int) float64 { return m.st.buf.Load(m.offset(i, j)) }

// put is the unchecked write counterpart of at.
func (m *Matrix) put(i, j int, v float64) { m.st.buf.Store(m.offset(i, j), v) }

// Get returns the value at logical (i, j).
// Errors: ErrOutOfBounds, with the coordinates and logical shape in the message.
func (m *Matrix) Get(i, j int) (float64, error) {
	if !m.InBounds(i, j) {
		return 0, boundsErrorf(ctxGet, i, j, m.Dims())
	}

	return m.at(i, j), nil
}

// MustGet is Get for indices the caller has already validated; it panics on ErrOutOfBounds.
func (m *Matrix) MustGet(i, j int) float64 {
	v, err := m.Get(i, j)
	if err != nil {
		panic(err)
	}

	return v
}

// Set stores v at logical (i, j), narrowed into the storage kind.
// Errors: ErrOutOfBounds.
func (m *Matrix) Set(i, j int, v float64) error {
	if !m.InBounds(i, j) {
		return boundsErrorf(ctxSet, i, j, m.Dims())
	}
	m.put(i, j, v)

	return nil
}

// Transpose flips the transposition flag in O(1) and returns m for chaining.
func (m *Matrix) Transpose() *Matrix {
	m.st.transposed = !m.st.transposed

	return m
}

// Fill overwrites every logical cell with f(i, j), row by row.
func (m *Matrix) Fill(f func(i, j int) float64) *Matrix {
	d := m.Dims()
	for i := 0; i < d.Rows; i++ {
		for j := 0; j < d.Cols; j++ {
			m.put(i, j, f(i, j))
		}
	}

	return m
}

// FillValue broadcasts v into every cell.
func (m *Matrix) FillValue(v float64) *Matrix {
	return m.Fill(func(int, int) float64 { return v })
}

// Load replaces the underlying buffer with buf (no copy). The shape and the
// transposition flag are kept, so buf is interpreted in physical order.
// Errors: ErrBufferLength.
func (m *Matrix) Load(buf *buffer.Buffer) error {
	if buf == nil {
		return matrixErrorf(ctxLoad, ErrNilBuffer)
	}
	if buf.Len() != m.st.phys.Size() {
		return lengthErrorf(ctxLoad, "buffer", buf.Len(), m.st.phys.Size(), ErrBufferLength)
	}
	m.st.buf = buf

	return nil
}

// Row returns a copy of logical row i.
func (m *Matrix) Row(i int) ([]float64, error) {
	d := m.Dims()
	if i < 0 || i >= d.Rows {
		return nil, boundsErrorf(ctxRow, i, 0, d)
	}
	out := make([]float64, d.Cols)
	for j := range out {
		out[j] = m.at(i, j)
	}

	return out, nil
}

// Col returns a copy of logical column j.
func (m *Matrix) Col(j int) ([]float64, error) {
	d := m.Dims()
	if j < 0 || j >= d.Cols {
		return nil, boundsErrorf(ctxCol, 0, j, d)
	}
	out := make([]float64, d.Rows)
	for i := range out {
		out[i] = m.at(i, j)
	}

	return out, nil
}

// ToArrays materializes the logical contents as nested rows.
func (m *Matrix) ToArrays() [][]float64 {
	d := m.Dims()
	out := make([][]float64, d.Rows)
	for i := range out {
		out[i], _ = m.Row(i)
	}

	return out
}

// Equal reports whether other has the same logical shape and every cell
// compares equal with ==. NaN never equals NaN; storage kinds may differ.
func (m *Matrix) Equal(other *Matrix) bool {
	if other == nil {
		return false
	}
	d := m.Dims()
	if d != other.Dims() {
		return false
	}
	for i := 0; i < d.Rows; i++ {
		for j := 0; j < d.Cols; j++ {
			if m.at(i, j) != other.at(i, j) {
				return false
			}
		}
	}

	return true
}

// Format renders the logical contents with the given number of decimals,
// one space-terminated value per cell and one line per row.
func (m *Matrix) Format(digits int) string {
	var sb strings.Builder
	d := m.Dims()
	for i := 0; i < d.Rows; i++ {
		for j := 0; j < d.Cols; j++ {
			sb.WriteString(strconv.FormatFloat(m.at(i, j), 'f', digits, 64))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// String implements fmt.Stringer with three decimals.
func (m *Matrix) String() string { return m.Format(3) }
