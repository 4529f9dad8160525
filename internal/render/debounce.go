package render

import (
	"sync"
	"time"
)

// Debouncer runs the most recent of a burst of calls once the calls have
// stopped for the configured delay. Callbacks are handed to dispatch, which
// lets the owner run them on its event thread.
type Debouncer struct {
	delay    time.Duration
	dispatch func(func())

	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
}

// NewDebouncer returns a debouncer. A nil dispatch runs callbacks on the
// timer goroutine.
func NewDebouncer(delay time.Duration, dispatch func(func())) *Debouncer {
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	return &Debouncer{delay: delay, dispatch: dispatch}
}

// Trigger arms the timer for fn, cancelling any pending callback.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() {
		d.dispatch(func() {
			// A timer that already fired before Stop must not run.
			if d.current(gen) {
				fn()
			}
		})
	})
}

// Stop drops any pending callback.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
}

func (d *Debouncer) current(gen uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gen == gen
}
