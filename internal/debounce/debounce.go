// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package debounce delays a rapidly changing value until it has been stable
// for a fixed quiescence period.
package debounce

import (
	"sync"
	"time"
)

// Timer is a pending callback that can be cancelled.
type Timer interface {
	Stop() bool
}

// Clock schedules callbacks. The real clock wraps time.AfterFunc; tests
// substitute a manually advanced clock.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

// RealClock is the wall-clock implementation of Clock.
var RealClock Clock = realClock{}

// Debouncer emits the last value it was given once no new value has arrived
// for Delay. Every Set cancels the pending emission and arms a new one.
type Debouncer[T any] struct {
	delay time.Duration
	clock Clock
	emit  func(T)

	mu      sync.Mutex
	timer   Timer
	seq     uint64
	stopped bool
}

// New returns a Debouncer that calls emit with the settled value. A nil
// clock means RealClock. emit runs on the clock's callback goroutine.
func New[T any](delay time.Duration, clock Clock, emit func(T)) *Debouncer[T] {
	if clock == nil {
		clock = RealClock
	}
	return &Debouncer[T]{delay: delay, clock: clock, emit: emit}
}

// Set records a new input value and restarts the quiescence window.
// Calls after Stop are ignored.
func (d *Debouncer[T]) Set(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.seq++
	seq := d.seq
	d.timer = d.clock.AfterFunc(d.delay, func() { d.fire(seq, v) })
}

// fire emits v unless a later Set or Stop superseded it. Timer.Stop cannot
// recall a callback that already started, so the sequence number is checked
// as well.
func (d *Debouncer[T]) fire(seq uint64, v T) {
	d.mu.Lock()
	if d.stopped || seq != d.seq {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()
	d.emit(v)
}

// Pending reports whether an emission is armed.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Stop cancels any pending emission permanently.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
