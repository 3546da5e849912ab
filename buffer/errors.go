// SPDX-License-Identifier: MIT
// Package buffer: sentinel error set.

package buffer

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned by At/Set when the index is outside [0, Len()).
	ErrIndexOutOfRange = errors.New("buffer: index out of range")

	// ErrNegativeLength is returned when a constructor receives n < 0.
	ErrNegativeLength = errors.New("buffer: negative length")

	// ErrUnknownKind is returned for a Kind outside the declared variants.
	ErrUnknownKind = errors.New("buffer: unknown element kind")
)

// bufferErrorf tags err with the method name and offending index.
func bufferErrorf(method string, i, n int, err error) error {
	return fmt.Errorf("Buffer.%s(%d) len=%d: %w", method, i, n, err)
}
