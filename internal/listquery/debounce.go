// internal/listquery/debounce.go
package listquery

import (
	"sync"
	"time"
)

// DefaultDebounceDelay is the quiet period applied to search input
// before the value is committed downstream.
const DefaultDebounceDelay = 500 * time.Millisecond

// Debouncer converts rapid input updates into a rate-limited signal.
// Update records the raw value immediately; the commit callback fires
// once, with the latest value, after the delay elapses without further
// updates (trailing edge). Stop cancels any pending commit permanently.
type Debouncer struct {
	delay  time.Duration
	commit func(string)

	mu      sync.Mutex
	raw     string
	settled string
	timer   *time.Timer
	stopped bool
}

// NewDebouncer creates a debouncer with the given quiet period. A
// non-positive delay falls back to DefaultDebounceDelay. The commit
// callback may be nil; it runs while the debouncer is locked, so it
// must not call back into the same debouncer.
func NewDebouncer(delay time.Duration, commit func(string)) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounceDelay
	}
	return &Debouncer{delay: delay, commit: commit}
}

// Update records value as the latest raw input and reschedules the
// pending commit. Earlier scheduled commits in the same burst are
// cancelled before the new one is armed.
func (d *Debouncer) Update(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.raw = value
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.fire(value)
	})
}

func (d *Debouncer) fire(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	// A commit must never land after Stop, even if the timer already
	// fired and is waiting on the lock.
	if d.stopped || value != d.raw {
		return
	}

	d.settled = value
	if d.commit != nil {
		d.commit(value)
	}
}

// Raw returns the latest value passed to Update.
func (d *Debouncer) Raw() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.raw
}

// Value returns the last settled (committed) value.
func (d *Debouncer) Value() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.settled
}

// Stop cancels any pending commit and disables the debouncer. It is
// safe to call more than once.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
