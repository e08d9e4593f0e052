package debounce

import (
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

// Trigger coalesces a rapid sequence of signals into a single delayed action.
//
// A Trigger is Idle until a Signal with a long enough value arrives, then
// Pending until its scheduled invocation fires or is cancelled. At most one
// invocation is pending at any time; a newer Signal always replaces the
// older one, so the action only ever sees the settled value of a burst.
type Trigger struct {
	mu        sync.Mutex
	scheduler Scheduler
	delay     time.Duration
	minLength int
	action    func(string)
	clear     func()
	pending   Handle
}

// Option configures a Trigger.
type Option func(*Trigger)

// WithMinLength sets the minimum trimmed length (in runes) a value needs
// before the action is scheduled.
func WithMinLength(n int) Option {
	return func(t *Trigger) {
		if n < 0 {
			n = 0
		}
		t.minLength = n
	}
}

// WithClear sets the callback invoked when a signal is too short.
func WithClear(fn func()) Option {
	return func(t *Trigger) {
		t.clear = fn
	}
}

// New creates a Trigger that runs action after delay of quiet.
func New(scheduler Scheduler, delay time.Duration, action func(string), opts ...Option) *Trigger {
	t := &Trigger{
		scheduler: scheduler,
		delay:     delay,
		action:    action,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Signal reports a new input value.
//
// Values whose trimmed length is below the minimum cancel any pending
// invocation and run the clear callback. Other values replace the pending
// invocation with a new one carrying the trimmed value.
func (t *Trigger) Signal(value string) {
	query := strings.TrimSpace(value)

	if utf8.RuneCountInString(query) < t.minLength {
		t.Cancel()
		if t.clear != nil {
			t.clear()
		}
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.cancelLocked()

	var h Handle
	h = t.scheduler.After(t.delay, func() {
		t.mu.Lock()
		if t.pending != h {
			// superseded after the scheduler already committed to firing
			t.mu.Unlock()
			return
		}
		t.pending = NoHandle
		t.mu.Unlock()

		t.action(query)
	})
	t.pending = h
}

// Cancel discards the pending invocation, if any. It is safe to call
// repeatedly.
func (t *Trigger) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelLocked()
}

// Pending reports whether an invocation is scheduled.
func (t *Trigger) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending != NoHandle
}

func (t *Trigger) cancelLocked() {
	if t.pending == NoHandle {
		return
	}
	t.scheduler.Cancel(t.pending)
	t.pending = NoHandle
}
