// Package debounce coalesces bursts of updates into a single commit.
//
// A [Debouncer] remembers the most recent value pushed to it and commits that
// value once no new value has arrived for the configured delay. It is used to
// commit list colors after a user stops dragging a color picker, and to
// batch file system events in the watch command.
package debounce

import (
	"sync"
	"time"
)

// DefaultDelay is the quiet window used when none is configured.
const DefaultDelay = 1200 * time.Millisecond

// Debouncer delays a commit until pushes stop for a quiet window.
// Only the last value of a burst is committed. A Debouncer is safe for
// concurrent use; commit runs on a timer goroutine.
type Debouncer[T any] struct {
	delay  time.Duration
	commit func(T)

	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64 // bumped on every Push, Flush and Stop
	value   T
	pending bool
	stopped bool
}

// New creates a debouncer. A delay <= 0 uses [DefaultDelay].
func New[T any](delay time.Duration, commit func(T)) *Debouncer[T] {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer[T]{delay: delay, commit: commit}
}

// Delay returns the quiet window.
func (d *Debouncer[T]) Delay() time.Duration { return d.delay }

// Push records v as the latest value and restarts the quiet window.
// Pushes after [Debouncer.Stop] are ignored.
func (d *Debouncer[T]) Push(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.value = v
	d.pending = true
	d.gen++
	gen := d.gen
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
}

// fire commits if no Push, Flush or Stop happened since the timer was armed.
func (d *Debouncer[T]) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen || !d.pending {
		d.mu.Unlock()
		return
	}
	v := d.take()
	d.mu.Unlock()
	d.commit(v)
}

// take clears the pending value. d.mu must be held.
func (d *Debouncer[T]) take() T {
	v := d.value
	var zero T
	d.value = zero
	d.pending = false
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	return v
}

// Flush commits a pending value immediately, on the caller's goroutine.
// It reports whether anything was committed.
func (d *Debouncer[T]) Flush() bool {
	d.mu.Lock()
	if !d.pending {
		d.mu.Unlock()
		return false
	}
	v := d.take()
	d.mu.Unlock()
	d.commit(v)
	return true
}

// Stop drops any pending value and disables further pushes.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.take()
	d.stopped = true
}

// Pending reports whether a value is waiting to be committed.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}
