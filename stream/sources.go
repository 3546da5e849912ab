// SPDX-License-Identifier: MIT

// Package stream: lazy constructors that feed a new stream from a producer.
// The producer starts on the first Subscribe or Wait.

package stream

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Create runs fn on its own goroutine with the new stream as its Observer,
// once the stream is first subscribed to or waited on. fn is responsible for
// calling End or Error.
func Create[T any](fn func(obs Observer[T]), opts ...Option) *Stream[T] {
	s := New[T](opts...)
	s.onStart(func() { go fn(s) })

	return s
}

// FromSlice returns a stream that pushes items, in order, and ends.
func FromSlice[T any](items []T, opts ...Option) *Stream[T] {
	s := New[T](opts...)
	s.onStart(func() {
		for _, v := range items {
			s.Push(v)
		}
		s.End()
	})

	return s
}

// FromFuncs resolves every fn concurrently and pushes each value as it
// arrives. The first error errors the stream and cancels the context handed
// to the remaining funcs; otherwise the stream ends once all have returned.
func FromFuncs[T any](fns []func(ctx context.Context) (T, error), opts ...Option) *Stream[T] {
	s := New[T](opts...)
	s.onStart(func() {
		go func() {
			g, ctx := errgroup.WithContext(s.cfg.ctx)
			for _, fn := range fns {
				fn := fn
				g.Go(func() error {
					v, err := fn(ctx)
					if err != nil {
						s.Error(err)
						return err
					}
					s.Push(v)
					return nil
				})
			}
			if g.Wait() == nil {
				s.End()
			}
		}()
	})

	return s
}

// FromChan pushes every value received on items and ends when items is
// closed. A value received on errs errors the stream; errs may be nil.
func FromChan[T any](items <-chan T, errs <-chan error, opts ...Option) *Stream[T] {
	s := New[T](opts...)
	s.onStart(func() {
		go func() {
			for {
				select {
				case v, ok := <-items:
					if !ok {
						s.End()
						return
					}
					s.Push(v)
				case err, ok := <-errs:
					if !ok {
						errs = nil
						continue
					}
					s.Error(err)
					return
				}
			}
		}()
	})

	return s
}
