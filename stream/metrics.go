// SPDX-License-Identifier: MIT

package stream

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// streamMetrics holds Prometheus collectors for one named stream.
// A nil *streamMetrics is valid and records nothing.
type streamMetrics struct {
	pushed    prometheus.Counter
	dropped   prometheus.Counter
	processed prometheus.Counter
	inFlight  prometheus.Gauge
}

func newStreamMetrics(reg prometheus.Registerer, name string) *streamMetrics {
	if reg == nil {
		return nil
	}
	labels := prometheus.Labels{"stream": name}
	m := &streamMetrics{
		pushed: register(reg, prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "numflow",
			Subsystem:   "stream",
			Name:        "items_pushed_total",
			ConstLabels: labels,
			Help:        "Total number of items accepted by Push",
		})),
		dropped: register(reg, prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "numflow",
			Subsystem:   "stream",
			Name:        "items_dropped_total",
			ConstLabels: labels,
			Help:        "Total number of items pushed after the stream terminated",
		})),
		processed: register(reg, prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "numflow",
			Subsystem:   "stream",
			Name:        "items_processed_total",
			ConstLabels: labels,
			Help:        "Total number of items that left the in-flight set",
		})),
		inFlight: register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "numflow",
			Subsystem:   "stream",
			Name:        "items_in_flight",
			ConstLabels: labels,
			Help:        "Items currently dispatched but not finished",
		})),
	}

	return m
}

// register adds c to reg, reusing the existing collector when a stream with
// the same name was instrumented before.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	err := reg.Register(c)
	if err == nil {
		return c
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing
		}
	}

	return c // unregistered but still usable
}

func (m *streamMetrics) push() {
	if m != nil {
		m.pushed.Inc()
	}
}

func (m *streamMetrics) drop() {
	if m != nil {
		m.dropped.Inc()
	}
}

func (m *streamMetrics) done(inFlight int) {
	if m != nil {
		m.processed.Inc()
		m.inFlight.Set(float64(inFlight))
	}
}

func (m *streamMetrics) dispatched(inFlight int) {
	if m != nil {
		m.inFlight.Set(float64(inFlight))
	}
}
