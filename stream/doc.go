// SPDX-License-Identifier: MIT

// Package stream provides a push-based, cooperatively scheduled stream of items.
//
// 🚀 What is a Stream?
//
//	A Stream[T] accepts items through Push, queues them in FIFO order and
//	dispatches each one to every subscriber. It ends exactly once, either
//	completed (End) or errored (Error); after that Push is a no-op.
//
// ✨ Key features:
//   - Concurrency cap (Bottleneck / WithConcurrency): at most n items are in
//     flight through the subscriber chain at once; 0 means unlimited.
//   - Backpressure accounting for asynchronous subscribers (SubscribeAsync,
//     MapAsync, FilterAsync): an item stays in flight until they return.
//   - Drain-before-terminate: End and Error wait until the queue and every
//     in-flight item are finished before firing OnEnd / OnError handlers.
//   - Derived streams (Map, Filter, FlatMap, Partition, Take, Group, Concat)
//     are bound to their source's completion and error.
//   - Numeric aggregates (Sum, BlockAverage, MovingAverage, Mean) via Numeric.
//
// ⚙️ Scheduling:
//
//	Each stream runs at most one dispatch loop at a time. A pass dequeues
//	min(limit-inFlight, queued) items (all queued items when the limit is 0)
//	and calls synchronous subscribers on the loop, in push order. Asynchronous
//	work continues on its own goroutine; when it finishes the item leaves the
//	in-flight set and the loop is rescheduled. The loop yields between passes
//	so concurrent pushes interleave fairly.
//
//	Dispatch order is FIFO. With a limit above 1, asynchronous completion
//	order is not guaranteed to match push order.
//
//	Sources (Create, FromSlice, FromFuncs, FromChan) and derived streams are
//	lazy: the producer, or the attachment to the upstream stream, runs on the
//	first Subscribe or Wait. A pipeline therefore starts at its tail.
//
//	Items pushed into an active stream with no subscriber are held for the
//	first one. Once the stream is terminal with no subscriber, held items are
//	discarded (counted as dropped) and the terminal handlers fire, so End and
//	Error never depend on someone subscribing.
//
// Usage:
//
//	s := stream.FromSlice([]int{0, 1, 2, 3})
//	doubled := stream.Map(s, func(v int) int { return v * 2 })
//	items, err := doubled.Collect(ctx) // [0 2 4 6]
//
// There are no timeouts: an asynchronous subscriber that never returns stalls
// that stream's termination.
package stream
