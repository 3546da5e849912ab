// SPDX-License-Identifier: MIT

// Package matrix - structural edits.
//
// Every edit follows the same three stages:
//   - Stage 1: validate lengths against the current logical shape.
//   - Stage 2: build a fresh matrix of the new logical shape with the same kind
//     and transposition flag, copying every cell that was in bounds before.
//   - Stage 3: merge, i.e. swap the fresh state into the receiver in one assignment.
//
// The receiver pointer is never replaced, so references held elsewhere observe
// the new shape.

package matrix

const (
	ctxAddRow = "Matrix.AddRow"
	ctxAddCol = "Matrix.AddCol"
)

// merge adopts src's buffer, physical shape and flag.
func (m *Matrix) merge(src *Matrix) *Matrix {
	m.st = src.st

	return m
}

// rebuild allocates a d-shaped sibling and fills it from m where in bounds,
// otherwise from pad.
func (m *Matrix) rebuild(d Dim, pad func(i, j int) float64) *Matrix {
	next := newShaped(m.Kind(), d, m.st.transposed)
	old := m.Dims()

	return next.Fill(func(i, j int) float64 {
		if i < old.Rows && j < old.Cols {
			return m.at(i, j)
		}

		return pad(i, j)
	})
}

// AddRow appends values as a new last row.
// Errors: ErrDimensionMismatch when len(values) != Cols().
func (m *Matrix) AddRow(values []float64) error {
	d := m.Dims()
	if len(values) != d.Cols {
		return lengthErrorf(ctxAddRow, "row", len(values), d.Cols, ErrDimensionMismatch)
	}
	next := m.rebuild(Dim{Rows: d.Rows + 1, Cols: d.Cols}, func(_, j int) float64 { return values[j] })
	m.merge(next)

	return nil
}

// AddCol appends values as a new last column.
// Errors: ErrDimensionMismatch when len(values) != Rows().
func (m *Matrix) AddCol(values []float64) error {
	d := m.Dims()
	if len(values) != d.Rows {
		return lengthErrorf(ctxAddCol, "col", len(values), d.Rows, ErrDimensionMismatch)
	}
	next := m.rebuild(Dim{Rows: d.Rows, Cols: d.Cols + 1}, func(i, _ int) float64 { return values[i] })
	m.merge(next)

	return nil
}

// ForceReshape resizes m to d, keeping the overlapping top-left region,
// truncating what falls outside and zero-filling new cells. It clips rather
// than failing on size; only negative dimensions are rejected (ErrBadShape).
func (m *Matrix) ForceReshape(d Dim) error {
	if d.Rows < 0 || d.Cols < 0 {
		return matrixErrorf(ctxShape, ErrBadShape)
	}
	next := m.rebuild(d, func(int, int) float64 { return 0 })
	m.merge(next)

	return nil
}
