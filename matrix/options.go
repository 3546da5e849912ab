// SPDX-License-Identifier: MIT

// Package matrix: functional options for constructors.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Options fields are unexported; public APIs consume ...Option.

package matrix

import "github.com/katalvlaran/numflow/buffer"

// DefaultKind is the storage kind used when no WithKind option is given.
const DefaultKind = buffer.Float32

// Option configures matrix constructors.
type Option func(*options)

type options struct {
	kind buffer.Kind
}

// WithKind selects the storage kind of the constructed matrix.
// Panics on an undeclared kind (programmer error).
func WithKind(k buffer.Kind) Option {
	if !k.Valid() {
		panic("matrix: WithKind: " + buffer.ErrUnknownKind.Error())
	}

	return func(o *options) { o.kind = k }
}

func gatherOptions(opts ...Option) options {
	o := options{kind: DefaultKind}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
