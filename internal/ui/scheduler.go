package ui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"holoholo/internal/debounce"
)

// LoopScheduler is a debounce.Scheduler whose callbacks run on the Bubble Tea
// event loop. Timer goroutines only post a timerFiredMsg; the model calls Fire
// from Update, so callbacks never race with model state. A message for a
// handle cancelled in the meantime is ignored.
type LoopScheduler struct {
	mu     sync.Mutex
	next   debounce.Handle
	timers map[debounce.Handle]*loopTimer
	send   func(tea.Msg)
}

type loopTimer struct {
	timer *time.Timer
	fn    func()
}

// NewLoopScheduler creates a scheduler that is not yet attached to a program
func NewLoopScheduler() *LoopScheduler {
	return &LoopScheduler{
		timers: make(map[debounce.Handle]*loopTimer),
	}
}

// Attach sets the function used to post timer messages, usually tea.Program.Send
func (s *LoopScheduler) Attach(send func(tea.Msg)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.send = send
}

func (s *LoopScheduler) After(d time.Duration, fn func()) debounce.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	h := s.next
	t := &loopTimer{fn: fn}
	t.timer = time.AfterFunc(d, func() { s.post(h) })
	s.timers[h] = t
	return h
}

func (s *LoopScheduler) Cancel(h debounce.Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[h]; ok {
		t.timer.Stop()
		delete(s.timers, h)
	}
}

// Fire runs the callback for h if it is still scheduled. It reports whether
// a callback ran.
func (s *LoopScheduler) Fire(h debounce.Handle) bool {
	s.mu.Lock()
	t, ok := s.timers[h]
	delete(s.timers, h)
	s.mu.Unlock()

	if !ok {
		return false
	}
	t.fn()
	return true
}

// Pending returns the number of callbacks not yet fired or cancelled
func (s *LoopScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

func (s *LoopScheduler) post(h debounce.Handle) {
	s.mu.Lock()
	send := s.send
	s.mu.Unlock()

	if send != nil {
		send(timerFiredMsg{handle: h})
	}
}
