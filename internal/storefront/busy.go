package storefront

import (
	"strconv"
	"sync"
	"time"

	"holoholo/internal/debounce"
)

// BusyButtons tracks buttons that are temporarily disabled after a press,
// like an add-to-cart button showing "Adding..." for a moment.
type BusyButtons struct {
	mu        sync.Mutex
	scheduler debounce.Scheduler
	duration  time.Duration
	busy      map[string]debounce.Handle
}

// NewBusyButtons creates a tracker releasing buttons after duration
func NewBusyButtons(scheduler debounce.Scheduler, duration time.Duration) *BusyButtons {
	return &BusyButtons{
		scheduler: scheduler,
		duration:  duration,
		busy:      make(map[string]debounce.Handle),
	}
}

// Press marks key busy. It returns false, doing nothing, if key is already busy.
func (b *BusyButtons) Press(key string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.busy[key]; ok {
		return false
	}

	var h debounce.Handle
	h = b.scheduler.After(b.duration, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.busy[key] == h {
			delete(b.busy, key)
		}
	})
	b.busy[key] = h
	return true
}

// IsBusy reports whether key is waiting for release
func (b *BusyButtons) IsBusy(key string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.busy[key]
	return ok
}

// Release frees key immediately
func (b *BusyButtons) Release(key string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if h, ok := b.busy[key]; ok {
		b.scheduler.Cancel(h)
		delete(b.busy, key)
	}
}

// AddToCartKey names the add-to-cart button of a product
func AddToCartKey(productID int) string {
	return "add:" + strconv.Itoa(productID)
}
