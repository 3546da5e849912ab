// SPDX-License-Identifier: MIT

package files

import (
	"errors"
	"fmt"
)

var (
	// ErrSchemaMismatch reports a document that does not satisfy its schema.
	ErrSchemaMismatch = errors.New("files: expected data to match schema")

	// ErrEmptyPath is returned for an empty location.
	ErrEmptyPath = errors.New("files: empty path")
)

// filesErrorf prefixes err with the operation and location.
func filesErrorf(op, location string, err error) error {
	return fmt.Errorf("%s %q: %w", op, location, err)
}
