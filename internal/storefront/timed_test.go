package storefront

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"holoholo/internal/debounce/debouncetest"
)

func TestBusyButtonReleasesAfterDuration(t *testing.T) {
	sched := debouncetest.NewManualScheduler()
	b := NewBusyButtons(sched, time.Second)

	assert.True(t, b.Press("add:1"))
	assert.True(t, b.IsBusy("add:1"))
	assert.False(t, b.Press("add:1"), "busy button ignores presses")
	assert.True(t, b.Press("add:2"))

	sched.Advance(999 * time.Millisecond)
	assert.True(t, b.IsBusy("add:1"))

	sched.Advance(time.Millisecond)
	assert.False(t, b.IsBusy("add:1"))
	assert.False(t, b.IsBusy("add:2"))
	assert.True(t, b.Press("add:1"))
}

func TestBusyButtonRelease(t *testing.T) {
	sched := debouncetest.NewManualScheduler()
	b := NewBusyButtons(sched, time.Second)

	b.Press("add:1")
	b.Release("add:1")
	assert.False(t, b.IsBusy("add:1"))
	assert.Zero(t, sched.Pending())

	b.Release("add:1")
}

func TestNotifierDismissesAfterTimeout(t *testing.T) {
	sched := debouncetest.NewManualScheduler()
	n := NewNotifier(sched, 5*time.Second, 3)

	n.Post(LevelSuccess, "Added to wishlist!")
	sched.Advance(2 * time.Second)
	n.Post(LevelInfo, "Removed from wishlist!")

	sched.Advance(3 * time.Second)
	active := n.Active()
	if assert.Len(t, active, 1) {
		assert.Equal(t, "Removed from wishlist!", active[0].Message)
		assert.Equal(t, LevelInfo, active[0].Level)
	}

	sched.Advance(2 * time.Second)
	assert.Empty(t, n.Active())
}

func TestNotifierDropsOldest(t *testing.T) {
	sched := debouncetest.NewManualScheduler()
	n := NewNotifier(sched, 5*time.Second, 2)

	n.Post(LevelInfo, "one")
	n.Post(LevelInfo, "two")
	n.Post(LevelInfo, "three")

	active := n.Active()
	assert.Equal(t, "two", active[0].Message)
	assert.Equal(t, "three", active[1].Message)
	assert.Equal(t, 2, sched.Pending())
}

func TestNotifierDismiss(t *testing.T) {
	sched := debouncetest.NewManualScheduler()
	n := NewNotifier(sched, 5*time.Second, 3)

	id := n.Post(LevelError, "boom")
	assert.True(t, n.Dismiss(id))
	assert.False(t, n.Dismiss(id))
	assert.Empty(t, n.Active())
	assert.Zero(t, sched.Pending())
}
