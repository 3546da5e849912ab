// SPDX-License-Identifier: MIT

package stream

import "context"

// Emitter is what a FlatMap function returns for one source item:
// Items, Deferred or a *Stream.
type Emitter[R any] interface {
	emit(out *Stream[R]) pending
}

// Items is a plain sequence pushed synchronously, in order.
type Items[R any] []R

func (it Items[R]) emit(out *Stream[R]) pending {
	for _, v := range it {
		out.Push(v)
	}

	return nil
}

// Deferred is a single value resolved off the dispatch loop. An error errors
// the FlatMap stream.
type Deferred[R any] func(ctx context.Context) (R, error)

func (d Deferred[R]) emit(out *Stream[R]) pending {
	if d == nil {
		return nil
	}

	return func(ctx context.Context) error {
		v, err := d(ctx)
		if err != nil {
			out.Error(err)
			return nil
		}
		out.Push(v)
		return nil
	}
}

// emit drains s into out; the source item stays in flight until s terminates.
func (s *Stream[T]) emit(out *Stream[T]) pending {
	if s == nil {
		return nil
	}

	return func(ctx context.Context) error {
		s.subscribe(func(v T) pending {
			out.Push(v)
			return nil
		})
		if err := s.Wait(ctx); err != nil {
			out.Error(err)
		}
		return nil
	}
}

// FlatMap replaces every item of s with the items of fn(item). A nil Emitter
// emits nothing.
func FlatMap[T, R any](s *Stream[T], fn func(item T) Emitter[R]) *Stream[R] {
	out := derive[R](s, "flatmap")
	out.onStart(func() {
		bind(s, out)
		s.subscribe(func(v T) pending {
			e := fn(v)
			if e == nil {
				return nil
			}
			return e.emit(out)
		})
	})

	return out
}
