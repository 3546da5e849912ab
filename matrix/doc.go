// Package matrix provides a dense 2D numeric matrix over a typed buffer.
//
// The matrix package provides:
//
//   - Matrix: row/column view over a buffer.Buffer (Uint8, Int32 or Float32
//     storage) with bounds-checked Get/Set.
//   - O(1) transposition: Transpose flips a flag; the physical row-major
//     layout never moves.
//   - Structural edits (AddRow, AddCol, ForceReshape) that build a new state
//     and swap it into the receiver, so existing *Matrix references stay valid.
//   - Concat along rows or columns, BlockAverage, and per-row/column
//     descriptive statistics (mean, standard error, count).
//   - A zero-copy gonum view (Gonum) for handing data to gonum/mat routines.
//
// Storage kind matters: values written into a Uint8 matrix are truncated and
// wrapped exactly as package buffer documents.
//
// See the examples in this package for usage patterns.
package matrix
