// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package debounce provides a cancellable quiet-period timer. Every Push
// restarts the timer and replaces the pending value; only the most recent
// value is delivered once no Push has happened for the configured delay.
package debounce

import (
	"sync"
	"time"
)

// DefaultDelay is the quiet period used for search input and catalog reloads.
const DefaultDelay = 300 * time.Millisecond

// Debouncer delivers the last pushed value after a period of inactivity.
// It is safe for concurrent use.
type Debouncer[T any] struct {
	mu      sync.Mutex
	delay   time.Duration
	fn      func(T)
	timer   *time.Timer
	gen     uint64 // bumped on every Push and on Stop; stale timers compare against it
	pending bool
	value   T
	stopped bool
	running sync.WaitGroup
}

// New returns a Debouncer that calls fn with the committed value. A
// non-positive delay falls back to DefaultDelay.
func New[T any](delay time.Duration, fn func(T)) *Debouncer[T] {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer[T]{delay: delay, fn: fn}
}

// Push records v as the pending value and restarts the quiet period.
// Pushes after Stop are ignored.
func (d *Debouncer[T]) Push(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.gen++
	d.value = v
	d.pending = true
	if d.timer != nil {
		d.timer.Stop()
	}
	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
}

// Pending reports whether a value is waiting for the quiet period to end.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

// Flush delivers the pending value immediately, if any.
func (d *Debouncer[T]) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	gen := d.gen
	d.mu.Unlock()
	d.fire(gen)
}

// Stop cancels any pending delivery and waits for a delivery that is
// already in progress. After Stop returns the callback never runs again.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	d.stopped = true
	d.pending = false
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()

	d.running.Wait()
}

// fire runs the callback if gen still identifies the latest Push.
func (d *Debouncer[T]) fire(gen uint64) {
	d.mu.Lock()
	if d.stopped || !d.pending || gen != d.gen {
		d.mu.Unlock()
		return
	}
	v := d.value
	d.pending = false
	d.running.Add(1)
	d.mu.Unlock()

	defer d.running.Done()
	d.fn(v)
}
