// SPDX-License-Identifier: MIT

package csv

import (
	"fmt"

	"github.com/katalvlaran/numflow/buffer"
	"github.com/katalvlaran/numflow/matrix"
	"github.com/katalvlaran/numflow/stream"
)

// Option configures the loaders.
type Option func(*options)

type options struct {
	skipFirst  bool
	kind       buffer.Kind
	streamOpts []stream.Option
	err        error
}

// WithSkipFirst drops the first line (a header).
func WithSkipFirst() Option {
	return func(o *options) { o.skipFirst = true }
}

// WithKind selects the element kind of the matrix built by Load. An
// undeclared kind makes Load fail with buffer.ErrUnknownKind.
func WithKind(k buffer.Kind) Option {
	return func(o *options) {
		if !k.Valid() {
			o.err = fmt.Errorf("csv.WithKind(%d): %w", uint8(k), buffer.ErrUnknownKind)
			return
		}
		o.kind = k
	}
}

// WithStreamOptions configures the line stream the loaders read from.
func WithStreamOptions(opts ...stream.Option) Option {
	return func(o *options) { o.streamOpts = append(o.streamOpts, opts...) }
}

func gatherOptions(opts ...Option) options {
	o := options{kind: matrix.DefaultKind}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
