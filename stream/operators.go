// SPDX-License-Identifier: MIT

// Package stream: item-level operators.
//
// Every derived stream ends when its source ends and errors when its source
// errors. A derived stream attaches to its source on its own first Subscribe
// or Wait. Terminal handlers are registered before the subscription so a
// source that drains immediately still reaches the derived stream.

package stream

import (
	"context"
	"sync"
	"sync/atomic"
)

// Map returns a stream of fn(v) for every v of s.
func Map[T, R any](s *Stream[T], fn func(item T) R) *Stream[R] {
	out := derive[R](s, "map")
	out.onStart(func() {
		bind(s, out)
		s.subscribe(func(v T) pending {
			out.Push(fn(v))
			return nil
		})
	})

	return out
}

// MapAsync is Map with a context-aware, fallible fn run off the dispatch loop.
// Each item stays in flight on s until fn returns; an error errors the
// returned stream. Results are pushed in completion order.
func MapAsync[T, R any](s *Stream[T], fn func(ctx context.Context, item T) (R, error)) *Stream[R] {
	out := derive[R](s, "map")
	out.onStart(func() {
		bind(s, out)
		s.subscribe(func(v T) pending {
			return func(ctx context.Context) error {
				r, err := fn(ctx, v)
				if err != nil {
					out.Error(err)
					return nil
				}
				out.Push(r)
				return nil
			}
		})
	})

	return out
}

// Filter returns a stream of the items for which pred is true.
func (s *Stream[T]) Filter(pred func(item T) bool) *Stream[T] {
	out := derive[T](s, "filter")
	out.onStart(func() {
		bind(s, out)
		s.subscribe(func(v T) pending {
			if pred(v) {
				out.Push(v)
			}
			return nil
		})
	})

	return out
}

// FilterAsync is Filter with a context-aware, fallible predicate run off the
// dispatch loop. An error errors the returned stream.
func (s *Stream[T]) FilterAsync(pred func(ctx context.Context, item T) (bool, error)) *Stream[T] {
	out := derive[T](s, "filter")
	out.onStart(func() {
		bind(s, out)
		s.subscribe(func(v T) pending {
			return func(ctx context.Context) error {
				ok, err := pred(ctx, v)
				if err != nil {
					out.Error(err)
					return nil
				}
				if ok {
					out.Push(v)
				}
				return nil
			}
		})
	})

	return out
}

// FilterZero drops zero values.
func FilterZero[T comparable](s *Stream[T]) *Stream[T] {
	var zero T
	return s.Filter(func(v T) bool { return v != zero })
}

// FilterNil drops nil pointers.
func FilterNil[T any](s *Stream[*T]) *Stream[*T] {
	return s.Filter(func(v *T) bool { return v != nil })
}

// Partition splits s into the items for which pred holds and the rest.
// Either side attaches both to s; subscribe to both before s produces, since
// a side that terminates without a subscriber discards its items.
func (s *Stream[T]) Partition(pred func(item T) bool) (pass, fail *Stream[T]) {
	pass = derive[T](s, "pass")
	fail = derive[T](s, "fail")
	attach := sync.OnceFunc(func() {
		bind(s, pass)
		bind(s, fail)
		s.subscribe(func(v T) pending {
			if pred(v) {
				pass.Push(v)
			} else {
				fail.Push(v)
			}
			return nil
		})
	})
	pass.onStart(attach)
	fail.onStart(attach)

	return pass, fail
}

// Take forwards the first n items and then ends s. Items s still holds are
// consumed and discarded. n <= 0 ends s immediately.
func (s *Stream[T]) Take(n int) *Stream[T] {
	out := derive[T](s, "take")
	out.onStart(func() {
		bind(s, out)
		seen := 0 // only touched from s's dispatch loop
		s.subscribe(func(v T) pending {
			if seen >= n {
				return nil
			}
			seen++
			out.Push(v)
			if seen == n {
				s.End()
			}
			return nil
		})
		if n <= 0 {
			s.End()
		}
	})

	return out
}

// Group batches items into slices of n (n < 1 is treated as 1). A non-empty
// partial batch is emitted before the end or error signal.
func Group[T any](s *Stream[T], n int) *Stream[[]T] {
	n = max(n, 1)
	out := derive[[]T](s, "group")
	out.onStart(func() {
		var batch []T
		flush := func() {
			if len(batch) > 0 {
				out.Push(batch)
				batch = nil
			}
		}
		s.OnEnd(func() {
			flush()
			out.End()
		})
		s.OnError(func(err error) {
			flush()
			out.Error(err)
		})
		s.subscribe(func(v T) pending {
			batch = append(batch, v)
			if len(batch) == n {
				flush()
			}
			return nil
		})
	})

	return out
}

// Concat merges s and other. The joint stream ends once both have ended and
// errors with the first error of either.
func (s *Stream[T]) Concat(other *Stream[T]) *Stream[T] {
	out := derive[T](s, "concat")
	out.onStart(func() {
		var remaining atomic.Int32
		remaining.Store(2)
		for _, src := range []*Stream[T]{s, other} {
			src.OnEnd(func() {
				if remaining.Add(-1) == 0 {
					out.End()
				}
			})
			src.OnError(out.Error)
			src.subscribe(func(v T) pending {
				out.Push(v)
				return nil
			})
		}
	})

	return out
}
