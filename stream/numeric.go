// SPDX-License-Identifier: MIT

// Package stream: numeric aggregates over a stream of float64.
//
// Purpose:
//   - Running sum, non-overlapping block averages, exponential moving average
//     and arithmetic mean of numeric items.
//
// Complexity:
//   - O(1) per item and O(1) state for every aggregate.

package stream

import (
	"context"
	"fmt"
)

// Number is any built-in integer or floating point type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Numeric is a stream restricted to numeric items, carried as float64.
type Numeric struct {
	s *Stream[float64]
}

// NewNumeric wraps an existing float64 stream.
func NewNumeric(s *Stream[float64]) *Numeric { return &Numeric{s: s} }

// Numbers converts a stream of any Number type.
func Numbers[N Number](s *Stream[N]) *Numeric {
	return &Numeric{s: Map(s, func(v N) float64 { return float64(v) })}
}

// ToNumeric adapts a dynamically typed stream. The first item that is not a
// Go numeric value errors the result with ErrNotNumeric; Push never panics.
func ToNumeric(s *Stream[any]) *Numeric {
	out := derive[float64](s, "numeric")
	out.onStart(func() {
		bind(s, out)
		s.subscribe(func(v any) pending {
			f, ok := toFloat(v)
			if !ok {
				out.Error(fmt.Errorf("%w: got %T", ErrNotNumeric, v))
				return nil
			}
			out.Push(f)
			return nil
		})
	})

	return &Numeric{s: out}
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case uintptr:
		return float64(x), true
	default:
		return 0, false
	}
}

// Stream exposes the underlying float64 stream.
func (n *Numeric) Stream() *Stream[float64] { return n.s }

// Sum emits the running total after every item.
func (n *Numeric) Sum() *Numeric {
	total := 0.0
	return &Numeric{s: Map(n.s, func(v float64) float64 {
		total += v
		return total
	})}
}

// BlockAverage emits the mean of each run of window consecutive items.
// A trailing partial block is averaged over its actual length and emitted
// before the end or error signal. window <= 0 yields an errored stream.
func (n *Numeric) BlockAverage(window int) *Numeric {
	out := derive[float64](n.s, "blockaverage")
	if window <= 0 {
		out.Error(fmt.Errorf("%w: got %d", ErrBadWindow, window))
		return &Numeric{s: out}
	}

	out.onStart(func() {
		var (
			sum   float64
			count int
		)
		flush := func() {
			if count > 0 {
				out.Push(sum / float64(count))
				sum, count = 0, 0
			}
		}
		n.s.OnEnd(func() {
			flush()
			out.End()
		})
		n.s.OnError(func(err error) {
			flush()
			out.Error(err)
		})
		n.s.subscribe(func(v float64) pending {
			sum += v
			count++
			if count == window {
				flush()
			}
			return nil
		})
	})

	return &Numeric{s: out}
}

// MovingAverage emits the exponential moving average with smoothing factor
// 2/(window+1), seeded with the first item. window <= 0 yields an errored
// stream.
func (n *Numeric) MovingAverage(window int) *Numeric {
	if window <= 0 {
		out := derive[float64](n.s, "movingaverage")
		out.Error(fmt.Errorf("%w: got %d", ErrBadWindow, window))
		return &Numeric{s: out}
	}

	gamma := 2 / (float64(window) + 1)
	var (
		mean   float64
		seeded bool
	)
	return &Numeric{s: Map(n.s, func(v float64) float64 {
		if !seeded {
			mean, seeded = v, true
		}
		mean = gamma*v + (1-gamma)*mean
		return mean
	})}
}

// Mean waits for the stream to terminate and returns the arithmetic mean of
// its items, or ErrNoData when there were none.
func (n *Numeric) Mean(ctx context.Context) (float64, error) {
	var (
		sum   float64
		count int
	)
	if n.s.subscribe(func(v float64) pending {
		sum += v
		count++
		return nil
	}) {
		if err := n.s.Wait(ctx); err != nil {
			return 0, err
		}
	} else if err := n.s.Err(); err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, ErrNoData
	}

	return sum / float64(count), nil
}

// Collect gathers every item; see Stream.Collect.
func (n *Numeric) Collect(ctx context.Context) ([]float64, error) { return n.s.Collect(ctx) }

// Last returns the final item; see Stream.Last.
func (n *Numeric) Last(ctx context.Context) (float64, error) { return n.s.Last(ctx) }

// Wait blocks until the stream terminates; see Stream.Wait.
func (n *Numeric) Wait(ctx context.Context) error { return n.s.Wait(ctx) }
