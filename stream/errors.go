// SPDX-License-Identifier: MIT
// Package stream: sentinel error set.

package stream

import "errors"

var (
	// ErrNotNumeric is the error a Numeric stream ends with when a
	// non-numeric item reaches it through ToNumeric.
	ErrNotNumeric = errors.New("stream: expected to only receive numerical data")

	// ErrNoData is returned by Last and Mean when the stream terminated
	// without observing a single item.
	ErrNoData = errors.New("stream: never observed any data")

	// ErrBadWindow is the error a windowed aggregate ends with when window <= 0.
	ErrBadWindow = errors.New("stream: window must be > 0")

	// ErrUnspecified replaces a nil error passed to Error.
	ErrUnspecified = errors.New("stream: error signalled without a cause")
)
