// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small deterministic fixtures for the matrix tests.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/numflow/matrix"
	"github.com/stretchr/testify/require"
)

// mustData builds a matrix from nested rows or fails the test.
func mustData(t *testing.T, rows [][]float64, opts ...matrix.Option) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromData(rows, opts...)
	require.NoError(t, err)

	return m
}

// simple3x3 is the 1..9 fixture used across tests.
func simple3x3(t *testing.T) *matrix.Matrix {
	t.Helper()

	return mustData(t, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
}

// requireEqual fails with both renderings when the matrices differ.
func requireEqual(t *testing.T, want, got *matrix.Matrix) {
	t.Helper()
	require.Truef(t, want.Equal(got), "want:\n%s\ngot:\n%s", want, got)
}
