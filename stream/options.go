// SPDX-License-Identifier: MIT

// Package stream: functional configuration.
//
// Defaults:
//   - context.Background for asynchronous subscribers,
//   - unlimited concurrency,
//   - a logger that discards everything,
//   - no metrics.

package stream

import (
	"context"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultName labels streams built without WithName.
const DefaultName = "stream"

// Option configures a source stream.
type Option func(*config)

type config struct {
	ctx        context.Context
	name       string
	limit      int
	logger     *slog.Logger
	registerer prometheus.Registerer
}

// WithContext sets the context handed to asynchronous subscribers.
// Cancelling it does not terminate the stream; subscribers decide what to do.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithName labels the stream in logs and metrics. Derived streams append
// their operator name ("csv/map/filter").
func WithName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.name = name
		}
	}
}

// WithConcurrency sets the initial in-flight limit; n <= 0 means unlimited.
func WithConcurrency(n int) Option {
	return func(c *config) { c.limit = max(n, 0) }
}

// WithLogger routes stream lifecycle logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics registers item counters and an in-flight gauge on reg,
// labelled with the stream name. Derived streams are not instrumented.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *config) { c.registerer = reg }
}

func gatherOptions(opts ...Option) config {
	c := config{
		ctx:    context.Background(),
		name:   DefaultName,
		logger: discardLogger,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&c)
		}
	}

	return c
}

// derivedConfig keeps the parent's context and logger but nothing stateful.
func derivedConfig(parent config, op string) config {
	return config{
		ctx:    parent.ctx,
		name:   parent.name + "/" + op,
		logger: parent.logger,
	}
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
