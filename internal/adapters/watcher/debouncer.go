package watcher

import (
	"slices"
	"sync"
	"time"
	"unique"
)

// Debouncer coalesces rapid file system events into batched callbacks.
// Callbacks never overlap.
type Debouncer struct {
	mu       sync.Mutex
	callMu   sync.Mutex
	pending  map[unique.Handle[string]]struct{}
	timer    *time.Timer
	window   time.Duration
	maxWait  time.Duration
	first    time.Time
	callback func(paths []string)
}

// NewDebouncer creates a new debouncer with the given time window and callback.
func NewDebouncer(window time.Duration, callback func(paths []string)) *Debouncer {
	return &Debouncer{
		pending:  make(map[unique.Handle[string]]struct{}),
		window:   window,
		callback: callback,
	}
}

// WithMaxWait bounds how long a batch may be postponed by a steady stream of events.
// Zero disables the bound.
func (d *Debouncer) WithMaxWait(maxWait time.Duration) *Debouncer {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.maxWait = maxWait
	return d
}

// Add records path and restarts the debounce window, unless the pending batch
// has already waited maxWait.
func (d *Debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := time.Now()
	if len(d.pending) == 0 {
		d.first = now
	}
	d.pending[unique.Make(path)] = struct{}{}

	delay := d.window
	if d.maxWait > 0 {
		delay = min(delay, max(d.maxWait-now.Sub(d.first), 0))
	}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(delay, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	d.timer = nil
	paths := d.drain()
	d.mu.Unlock()

	d.call(paths)
}

// Flush runs the callback with all pending paths and waits for it to finish.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		if !d.timer.Stop() {
			// Timer already fired, let it complete rather than processing twice.
			d.mu.Unlock()
			return
		}
		d.timer = nil
	}
	paths := d.drain()
	d.mu.Unlock()

	d.call(paths)
}

// Stop discards pending paths and cancels the timer.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	clear(d.pending)
}

// drain must be called with mu held.
func (d *Debouncer) drain() []string {
	paths := make([]string, 0, len(d.pending))
	for handle := range d.pending {
		paths = append(paths, handle.Value())
	}
	clear(d.pending)
	slices.Sort(paths)
	return paths
}

func (d *Debouncer) call(paths []string) {
	if len(paths) == 0 || d.callback == nil {
		return
	}
	d.callMu.Lock()
	defer d.callMu.Unlock()
	d.callback(paths)
}
