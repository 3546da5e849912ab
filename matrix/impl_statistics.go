// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - BlockAverage: collapse consecutive rows (or columns) into block means.
//   - DescribeColumns / DescribeRows: per-vector mean, standard error, count.
//
// Numeric policy:
//   - BlockAverage divides every block by the nominal window, including a
//     shorter final block, which is therefore under-weighted. stream.Numeric's
//     BlockAverage divides a partial block by its actual count instead; the two
//     are intentionally distinct.
//   - Standard error uses Welford's streaming variance; a NaN result (n < 2)
//     is reported as 0.

package matrix

import (
	"math"

	"github.com/katalvlaran/numflow/buffer"
)

const opBlockAverage = "BlockAverage"

// Description summarizes one row or column.
type Description struct {
	Mean   float64
	StdErr float64
	Count  int
}

// DescribeOptions tunes DescribeColumns / DescribeRows.
type DescribeOptions struct {
	// IgnoreNaN drops NaN cells before computing statistics.
	IgnoreNaN bool
}

// BlockAverage partitions rows (AxisRows) or columns (AxisCols) into
// consecutive blocks of size window and averages each block elementwise.
// The result is a Float32 matrix with ceil(n/window) rows (or columns).
//
// Errors: ErrBadWindow, ErrBadAxis.
// Complexity: O(r*c).
func (m *Matrix) BlockAverage(window int, axis Axis) (*Matrix, error) {
	if window <= 0 {
		return nil, matrixErrorf(opBlockAverage, ErrBadWindow)
	}
	if !axis.valid() {
		return nil, matrixErrorf(opBlockAverage, ErrBadAxis)
	}

	d := m.Dims()
	n, width := d.Rows, d.Cols
	if axis == AxisCols {
		n, width = d.Cols, d.Rows
	}
	blocks := (n + window - 1) / window

	shape := Dim{Rows: blocks, Cols: width}
	if axis == AxisCols {
		shape = shape.swap()
	}
	out, err := New(buffer.Float32, shape)
	if err != nil {
		return nil, matrixErrorf(opBlockAverage, err)
	}

	w := float64(window)
	means := make([]float64, width)
	for b := 0; b < blocks; b++ {
		for k := range means {
			means[k] = 0
		}
		for idx := b * window; idx < (b+1)*window && idx < n; idx++ {
			for k := 0; k < width; k++ {
				if axis == AxisRows {
					means[k] += m.at(idx, k) / w
				} else {
					means[k] += m.at(k, idx) / w
				}
			}
		}
		for k, v := range means {
			if axis == AxisRows {
				out.put(b, k, v)
			} else {
				out.put(k, b, v)
			}
		}
	}

	return out, nil
}

// DescribeColumns returns one Description per logical column.
func DescribeColumns(m *Matrix, opts DescribeOptions) []Description {
	d := m.Dims()
	out := make([]Description, d.Cols)
	for j := range out {
		col, _ := m.Col(j)
		out[j] = describe(col, opts)
	}

	return out
}

// DescribeRows returns one Description per logical row.
func DescribeRows(m *Matrix, opts DescribeOptions) []Description {
	d := m.Dims()
	out := make([]Description, d.Rows)
	for i := range out {
		row, _ := m.Row(i)
		out[i] = describe(row, opts)
	}

	return out
}

// describe computes mean/stderr/count over xs. An empty input has a NaN mean.
func describe(xs []float64, opts DescribeOptions) Description {
	if opts.IgnoreNaN {
		kept := xs[:0:0]
		for _, x := range xs {
			if !math.IsNaN(x) {
				kept = append(kept, x)
			}
		}
		xs = kept
	}

	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	se := standardError(xs)
	if math.IsNaN(se) {
		se = 0
	}

	return Description{
		Mean:   sum / float64(len(xs)),
		StdErr: se,
		Count:  len(xs),
	}
}

// standardError returns sqrt(sample variance)/sqrt(n) via Welford's method.
func standardError(xs []float64) float64 {
	var n, mean, m2 float64
	for _, x := range xs {
		n++
		delta := x - mean
		mean += delta / n
		m2 += delta * (x - mean)
	}
	variance := m2 / (n - 1)

	return math.Sqrt(variance) / math.Sqrt(n)
}
