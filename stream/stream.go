// SPDX-License-Identifier: MIT

// Package stream: core Stream type, dispatch loop and lifecycle.
//
// Purpose:
//   - Hold pushed items in a FIFO queue and dispatch them to subscribers
//     under an optional in-flight limit.
//   - Terminate exactly once, after the queue and in-flight set have drained.
//
// Complexity:
//   - Push, End, Error: O(1) amortized.
//   - One dispatch pass: O(k·s) for k dequeued items and s subscribers.

package stream

import (
	"context"
	"runtime"
	"sync"

	"github.com/eapache/queue"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// pending is the asynchronous remainder of a subscriber call. The item it
// belongs to stays in flight until it returns.
type pending func(ctx context.Context) error

// handler is called on the dispatch loop for every item. A nil pending means
// the subscriber finished synchronously.
type handler[T any] func(item T) pending

type phase uint8

const (
	active phase = iota
	completed
	errored
)

type entry[T any] struct {
	id   uint64
	item T
}

// Observer is the producer side of a Stream.
type Observer[T any] interface {
	Push(item T)
	End()
	Error(err error)
}

// Stream is a push-based sequence of items of type T.
//
// All methods are safe for concurrent use. Synchronous subscribers are invoked
// one item at a time, in push order, from the stream's dispatch loop; they must
// not block on the stream they are subscribed to.
type Stream[T any] struct {
	cfg       config
	id        uuid.UUID
	metrics   *streamMetrics
	done      chan struct{}
	start     func() // producer or upstream attachment, run once on demand
	startOnce sync.Once

	mu        sync.Mutex
	phase     phase
	err       error
	limit     int
	queue     *queue.Queue
	subs      []handler[T]
	endFns    []func()
	errFns    []func(error)
	inFlight  map[uint64]struct{}
	nextID    uint64
	running   bool
	finalized bool
}

var _ Observer[int] = (*Stream[int])(nil)

// New returns an active stream with no subscribers, driven by Push, End and Error.
func New[T any](opts ...Option) *Stream[T] {
	cfg := gatherOptions(opts...)
	s := newStream[T](cfg)
	s.metrics = newStreamMetrics(cfg.registerer, cfg.name)

	return s
}

func newStream[T any](cfg config) *Stream[T] {
	s := &Stream[T]{
		cfg:      cfg,
		id:       uuid.New(),
		done:     make(chan struct{}),
		limit:    cfg.limit,
		queue:    queue.New(),
		inFlight: make(map[uint64]struct{}),
	}
	s.cfg.logger.Debug("stream created", "stream", cfg.name, "id", s.id)

	return s
}

// derive builds a stream fed by an operator on src.
func derive[R, T any](src *Stream[T], op string) *Stream[R] {
	return newStream[R](derivedConfig(src.cfg, op))
}

// onStart defers fn until the first subscription or Wait on s.
func (s *Stream[T]) onStart(fn func()) { s.start = fn }

func (s *Stream[T]) ensureStarted() {
	if s.start != nil {
		s.startOnce.Do(s.start)
	}
}

// bind forwards src's terminal signal to out.
func bind[R, T any](src *Stream[T], out *Stream[R]) {
	src.OnEnd(out.End)
	src.OnError(out.Error)
}

// ID returns the identifier used in this stream's log records.
func (s *Stream[T]) ID() uuid.UUID { return s.id }

// Name returns the stream label given by WithName, or the derived label.
func (s *Stream[T]) Name() string { return s.cfg.name }

// Push enqueues item. After End or Error it is dropped.
func (s *Stream[T]) Push(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != active {
		s.metrics.drop()
		return
	}
	s.queue.Add(item)
	s.metrics.push()
	s.kickLocked()
}

// End marks the stream completed. OnEnd handlers fire once every queued and
// in-flight item has been processed. End after End or Error is a no-op.
func (s *Stream[T]) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != active {
		return
	}
	s.phase = completed
	s.kickLocked()
}

// Error marks the stream errored with err (ErrUnspecified when nil). OnError
// handlers fire after the stream drains. Error after End or Error is a no-op.
func (s *Stream[T]) Error(err error) {
	if err == nil {
		err = ErrUnspecified
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != active {
		s.cfg.logger.Debug("error after termination ignored", "stream", s.cfg.name, "id", s.id, "error", err)
		return
	}
	s.phase = errored
	s.err = err
	s.kickLocked()
}

// Subscribe registers fn for every item dispatched from now on and starts a
// lazy stream. Subscribing to a stream that is already terminal with no
// subscriber is a no-op: its remaining items are discarded.
func (s *Stream[T]) Subscribe(fn func(item T)) *Stream[T] {
	s.subscribe(func(item T) pending {
		fn(item)
		return nil
	})

	return s
}

// SubscribeAsync registers fn to run off the dispatch loop. Each item counts
// against the concurrency limit until fn returns. A non-nil error errors s.
func (s *Stream[T]) SubscribeAsync(fn func(ctx context.Context, item T) error) *Stream[T] {
	s.subscribe(func(item T) pending {
		return func(ctx context.Context) error { return fn(ctx, item) }
	})

	return s
}

// subscribe reports false when s was already finalized, or terminal with no
// subscriber.
func (s *Stream[T]) subscribe(h handler[T]) bool {
	s.mu.Lock()
	if s.finalized || (s.phase != active && len(s.subs) == 0) {
		s.mu.Unlock()
		return false
	}
	s.subs = append(s.subs, h)
	s.kickLocked()
	s.mu.Unlock()

	s.ensureStarted()

	return true
}

// OnEnd registers fn to run once s has completed and drained. On an already
// completed stream fn runs immediately; on an errored one it never runs.
func (s *Stream[T]) OnEnd(fn func()) *Stream[T] {
	s.mu.Lock()
	if !s.finalized {
		s.endFns = append(s.endFns, fn)
		s.mu.Unlock()
		return s
	}
	ph := s.phase
	s.mu.Unlock()
	if ph == completed {
		fn()
	}

	return s
}

// OnError registers fn to run once s has errored and drained. On an already
// errored stream fn runs immediately; on a completed one it never runs.
func (s *Stream[T]) OnError(fn func(err error)) *Stream[T] {
	s.mu.Lock()
	if !s.finalized {
		s.errFns = append(s.errFns, fn)
		s.mu.Unlock()
		return s
	}
	ph, err := s.phase, s.err
	s.mu.Unlock()
	if ph == errored {
		fn(err)
	}

	return s
}

// Bottleneck caps the number of in-flight items at n; 0 removes the cap and
// negative values are treated as 0.
func (s *Stream[T]) Bottleneck(n int) *Stream[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limit = max(n, 0)
	s.kickLocked()

	return s
}

// Done is closed after the terminal handlers have run. Unlike Wait it does
// not start a lazy stream.
func (s *Stream[T]) Done() <-chan struct{} { return s.done }

// Err returns the error passed to Error, or nil.
func (s *Stream[T]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.err
}

// Terminal reports whether End or Error has been called.
func (s *Stream[T]) Terminal() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.phase != active
}

// Wait starts a lazy stream and blocks until it has drained and run its
// terminal handlers, returning the stream error if any, or until ctx is done.
func (s *Stream[T]) Wait(ctx context.Context) error {
	s.ensureStarted()
	select {
	case <-s.done:
		return s.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// kickLocked starts the dispatch loop unless it is already running.
func (s *Stream[T]) kickLocked() {
	if s.finalized || s.running {
		return
	}
	s.running = true
	go s.loop()
}

func (s *Stream[T]) loop() {
	for {
		s.mu.Lock()
		batch, subs := s.takeLocked()
		if len(batch) == 0 {
			if s.drainedLocked() {
				s.finish() // unlocks
				return
			}
			s.running = false
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		for _, e := range batch {
			s.dispatch(e, subs)
		}
		runtime.Gosched()
	}
}

// takeLocked dequeues min(limit-inFlight, queued) items, or every queued item
// when the limit is 0. Nothing is taken while no subscriber is attached; an
// active stream holds those items for its first subscriber.
func (s *Stream[T]) takeLocked() ([]entry[T], []handler[T]) {
	if len(s.subs) == 0 {
		return nil, nil
	}
	n := s.queue.Length()
	if s.limit > 0 {
		n = min(n, s.limit-len(s.inFlight))
	}
	if n <= 0 {
		return nil, nil
	}

	batch := make([]entry[T], n)
	for i := range batch {
		id := s.nextID
		s.nextID++
		s.inFlight[id] = struct{}{}
		batch[i] = entry[T]{id: id, item: s.queue.Remove().(T)}
	}
	s.metrics.dispatched(len(s.inFlight))

	return batch, s.subs[:len(s.subs):len(s.subs)]
}

// drainedLocked reports a terminal stream with nothing in flight and either
// an empty queue or no subscriber to ever take what is left.
func (s *Stream[T]) drainedLocked() bool {
	if s.phase == active || len(s.inFlight) > 0 {
		return false
	}

	return s.queue.Length() == 0 || len(s.subs) == 0
}

// dispatch hands one item to every subscriber in registration order.
func (s *Stream[T]) dispatch(e entry[T], subs []handler[T]) {
	var rest []pending
	for _, h := range subs {
		if p := h(e.item); p != nil {
			rest = append(rest, p)
		}
	}
	if len(rest) == 0 {
		s.complete(e.id, nil)
		return
	}

	go func() {
		g, ctx := errgroup.WithContext(s.cfg.ctx)
		for _, p := range rest {
			p := p
			g.Go(func() error { return p(ctx) })
		}
		s.complete(e.id, g.Wait())
	}()
}

// complete removes an item from the in-flight set; err errors the stream.
func (s *Stream[T]) complete(id uint64, err error) {
	if err != nil {
		if s.Terminal() {
			s.cfg.logger.Warn("asynchronous subscriber failed after termination",
				"stream", s.cfg.name, "id", s.id, "error", err)
		} else {
			s.Error(err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, id)
	s.metrics.done(len(s.inFlight))
	s.kickLocked()
}

// finish runs with s.mu held and releases it. It drops every reference the
// stream holds before calling the terminal handlers exactly once.
func (s *Stream[T]) finish() {
	s.finalized = true
	s.running = false
	ph, err := s.phase, s.err
	endFns, errFns := s.endFns, s.errFns
	discarded := s.queue.Length()
	for i := 0; i < discarded; i++ {
		s.metrics.drop()
	}
	s.queue, s.subs, s.endFns, s.errFns, s.inFlight = nil, nil, nil, nil, nil
	s.mu.Unlock()

	if discarded > 0 {
		s.cfg.logger.Debug("discarding items without subscriber",
			"stream", s.cfg.name, "id", s.id, "count", discarded)
	}
	if ph == errored {
		s.cfg.logger.Warn("stream errored", "stream", s.cfg.name, "id", s.id, "error", err)
		for _, fn := range errFns {
			fn(err)
		}
	} else {
		s.cfg.logger.Debug("stream completed", "stream", s.cfg.name, "id", s.id)
		for _, fn := range endFns {
			fn()
		}
	}
	close(s.done)
}
