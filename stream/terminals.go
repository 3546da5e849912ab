// SPDX-License-Identifier: MIT

// Package stream: consumers that wait for a stream to terminate.

package stream

import (
	"context"
	"errors"
	"io"
)

// Collect gathers every remaining item of s and waits for it to terminate.
// It returns the stream error, if any, together with the items seen so far.
// A stream that is already terminal with no subscriber yields no items,
// immediately.
func (s *Stream[T]) Collect(ctx context.Context) ([]T, error) {
	var items []T
	if !s.subscribe(func(v T) pending {
		items = append(items, v)
		return nil
	}) {
		return nil, s.Err()
	}
	if err := s.Wait(ctx); err != nil {
		if errors.Is(err, ctx.Err()) {
			return nil, err
		}
		return items, err
	}

	return items, nil
}

// Last waits for s to terminate and returns the last item it dispatched.
// It fails with ErrNoData when s carried no item.
func (s *Stream[T]) Last(ctx context.Context) (T, error) {
	var (
		last T
		seen bool
	)
	attached := s.subscribe(func(v T) pending {
		last, seen = v, true
		return nil
	})
	if attached {
		if err := s.Wait(ctx); err != nil {
			var zero T
			return zero, err
		}
	} else if err := s.Err(); err != nil {
		return last, err
	}
	if !seen {
		return last, ErrNoData
	}

	return last, nil
}

// ToWriter writes encode(item) to w for every item of s and closes w, when it
// is an io.Closer, once s terminates. A write or encode failure errors s and
// later items are skipped. It returns s.
func ToWriter[T any](s *Stream[T], w io.Writer, encode func(item T) ([]byte, error)) *Stream[T] {
	closeWriter := func() {
		if c, ok := w.(io.Closer); ok {
			if err := c.Close(); err != nil {
				s.cfg.logger.Warn("closing writer", "stream", s.cfg.name, "id", s.id, "error", err)
			}
		}
	}
	s.OnEnd(closeWriter)
	s.OnError(func(error) { closeWriter() })

	failed := false
	s.subscribe(func(v T) pending {
		if failed {
			return nil
		}
		b, err := encode(v)
		if err == nil {
			_, err = w.Write(b)
		}
		if err != nil {
			failed = true
			s.Error(err)
		}
		return nil
	})

	return s
}
