// SPDX-License-Identifier: MIT

// Package csv reads and writes purely numeric comma-separated files.
//
// The format is deliberately small: records end with '\n' (a trailing '\r'
// is ignored), fields are separated by ',' and parsed as float64. Quoting is
// not supported. Unparsable fields become NaN and blank lines are skipped.
//
// Loaders read through files.ReadLines, so the input is memory-mapped and
// consumed as a stream. Three shapes are offered:
//   - LoadStream: one []float64 per record;
//   - LoadBuffer: row-major fill of an existing buffer.Buffer;
//   - Load: a matrix.Matrix, rejecting ragged input.
package csv
