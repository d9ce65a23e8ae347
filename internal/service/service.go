// Package service implements the core operations over the in-memory store:
// contract lifecycle, identity administration, statistics and the audit
// trail. Every operation is an atomic, synchronous transformation of the
// shared dataset and reports failures through typed domain errors.
package service

import "time"

// timeLayout is the second-precision stamp used on every createTime field.
const timeLayout = "2006-01-02 15:04:05"

type options struct {
	now     func() time.Time
	latency time.Duration
}

// Option tunes a service.
type Option func(*options)

// WithClock overrides the time source, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithLatency makes every operation sleep before touching the store,
// simulating a slow backend for UI backpressure testing. Zero disables it.
func WithLatency(d time.Duration) Option {
	return func(o *options) { o.latency = d }
}

func newOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) stamp() string {
	return o.now().Format(timeLayout)
}

func (o options) pause() {
	if o.latency > 0 {
		time.Sleep(o.latency)
	}
}
