// Package debouncetest provides a deterministic Scheduler for tests.
package debouncetest

import (
	"sync"
	"time"

	"holoholo/internal/debounce"
)

type task struct {
	at  time.Duration
	seq uint64
	fn  func()
}

// ManualScheduler is a fake clock. Nothing runs until Advance moves time
// past a task's deadline; due tasks run in deadline order on the caller's
// goroutine.
type ManualScheduler struct {
	mu    sync.Mutex
	now   time.Duration
	next  debounce.Handle
	seq   uint64
	tasks map[debounce.Handle]task
}

// NewManualScheduler returns a ManualScheduler at time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{
		tasks: make(map[debounce.Handle]task),
	}
}

func (s *ManualScheduler) After(d time.Duration, fn func()) debounce.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d < 0 {
		d = 0
	}
	s.next++
	s.seq++
	s.tasks[s.next] = task{at: s.now + d, seq: s.seq, fn: fn}
	return s.next
}

func (s *ManualScheduler) Cancel(h debounce.Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tasks, h)
}

// Advance moves the clock forward by d, running every task that becomes
// due, including tasks scheduled by other tasks along the way.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	s.mu.Unlock()

	for {
		s.mu.Lock()
		h, t, ok := s.earliestLocked(target)
		if !ok {
			s.now = target
			s.mu.Unlock()
			return
		}
		delete(s.tasks, h)
		s.now = t.at
		s.mu.Unlock()

		t.fn()
	}
}

// Now returns the elapsed fake time.
func (s *ManualScheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Pending returns the number of scheduled tasks.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

func (s *ManualScheduler) earliestLocked(limit time.Duration) (debounce.Handle, task, bool) {
	var (
		bestH debounce.Handle
		best  task
		found bool
	)
	for h, t := range s.tasks {
		if t.at > limit {
			continue
		}
		if !found || t.at < best.at || (t.at == best.at && t.seq < best.seq) {
			bestH, best, found = h, t, true
		}
	}
	return bestH, best, found
}
