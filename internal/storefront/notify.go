package storefront

import (
	"sync"
	"time"

	"holoholo/internal/debounce"
)

// Level is the severity of a notification
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification is a transient message shown to the user
type Notification struct {
	ID      int
	Level   Level
	Message string
}

type posted struct {
	Notification
	handle debounce.Handle
}

// Notifier keeps a bounded stack of notifications that dismiss themselves
type Notifier struct {
	mu        sync.Mutex
	scheduler debounce.Scheduler
	timeout   time.Duration
	max       int
	nextID    int
	items     []posted
}

// NewNotifier creates a notifier. max bounds how many notifications are kept;
// posting beyond it drops the oldest.
func NewNotifier(scheduler debounce.Scheduler, timeout time.Duration, max int) *Notifier {
	if max <= 0 {
		max = 1
	}
	return &Notifier{
		scheduler: scheduler,
		timeout:   timeout,
		max:       max,
	}
}

// Post adds a notification and schedules its dismissal, returning its id
func (n *Notifier) Post(level Level, message string) int {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.nextID++
	id := n.nextID
	h := n.scheduler.After(n.timeout, func() { n.Dismiss(id) })
	n.items = append(n.items, posted{
		Notification: Notification{ID: id, Level: level, Message: message},
		handle:       h,
	})

	for len(n.items) > n.max {
		n.scheduler.Cancel(n.items[0].handle)
		n.items = n.items[1:]
	}
	return id
}

// Dismiss removes a notification early. It reports whether it was present.
func (n *Notifier) Dismiss(id int) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i, item := range n.items {
		if item.ID == id {
			n.scheduler.Cancel(item.handle)
			n.items = append(n.items[:i:i], n.items[i+1:]...)
			return true
		}
	}
	return false
}

// Active returns the visible notifications, oldest first
func (n *Notifier) Active() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]Notification, len(n.items))
	for i, item := range n.items {
		out[i] = item.Notification
	}
	return out
}
