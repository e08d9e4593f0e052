package debounce

import (
	"sync"
	"time"
)

// Handle identifies one scheduled invocation.
type Handle uint64

// NoHandle is the zero Handle; schedulers never return it.
const NoHandle Handle = 0

// Scheduler runs functions after a delay and lets callers cancel them.
type Scheduler interface {
	// After schedules fn to run once after d.
	After(d time.Duration, fn func()) Handle
	// Cancel prevents a scheduled fn from running. Unknown or already
	// fired handles are ignored.
	Cancel(h Handle)
}

// TimerScheduler is a wall-clock Scheduler backed by time.AfterFunc.
// Callbacks run on timer goroutines.
type TimerScheduler struct {
	mu     sync.Mutex
	next   Handle
	timers map[Handle]*time.Timer
}

// NewTimerScheduler creates a TimerScheduler.
func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{
		timers: make(map[Handle]*time.Timer),
	}
}

func (s *TimerScheduler) After(d time.Duration, fn func()) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	h := s.next
	s.timers[h] = time.AfterFunc(d, func() {
		s.mu.Lock()
		_, live := s.timers[h]
		delete(s.timers, h)
		s.mu.Unlock()

		if live {
			fn()
		}
	})
	return h
}

func (s *TimerScheduler) Cancel(h Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[h]; ok {
		t.Stop()
		delete(s.timers, h)
	}
}

// Len returns the number of timers that have not fired or been cancelled.
func (s *TimerScheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}
