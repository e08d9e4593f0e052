package debounce_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holoholo/internal/debounce"
	"holoholo/internal/debounce/debouncetest"
)

type firing struct {
	at    time.Duration
	value string
}

type recorder struct {
	clock  *debouncetest.ManualScheduler
	fired  []firing
	clears int
}

func newTrigger(t *testing.T, minLength int, delay time.Duration) (*debounce.Trigger, *recorder) {
	t.Helper()
	rec := &recorder{clock: debouncetest.NewManualScheduler()}
	trig := debounce.New(rec.clock, delay, func(v string) {
		rec.fired = append(rec.fired, firing{at: rec.clock.Now(), value: v})
	},
		debounce.WithMinLength(minLength),
		debounce.WithClear(func() { rec.clears++ }),
	)
	return trig, rec
}

func TestBurstFiresOnceWithLastValue(t *testing.T) {
	trig, rec := newTrigger(t, 2, 300*time.Millisecond)

	for _, v := range []string{"la", "lap", "lapt", "lapto", "laptop"} {
		trig.Signal(v)
		rec.clock.Advance(299 * time.Millisecond)
	}
	require.Empty(t, rec.fired)

	rec.clock.Advance(time.Second)
	require.Len(t, rec.fired, 1)
	assert.Equal(t, "laptop", rec.fired[0].value)
}

func TestScenarioSettlesAfterQuietWindow(t *testing.T) {
	trig, rec := newTrigger(t, 2, 300*time.Millisecond)

	trig.Signal("a")
	rec.clock.Advance(50 * time.Millisecond)
	trig.Signal("ab")
	rec.clock.Advance(50 * time.Millisecond)
	trig.Signal("abc")
	rec.clock.Advance(400 * time.Millisecond)

	require.Len(t, rec.fired, 1)
	assert.Equal(t, firing{at: 400 * time.Millisecond, value: "abc"}, rec.fired[0])
	assert.Equal(t, 1, rec.clears, "the short first signal clears results")
	assert.False(t, trig.Pending())
}

func TestShortInputCancelsPending(t *testing.T) {
	trig, rec := newTrigger(t, 2, 300*time.Millisecond)

	trig.Signal("xy")
	rec.clock.Advance(200 * time.Millisecond)
	require.True(t, trig.Pending())

	trig.Signal("x")
	assert.False(t, trig.Pending())
	assert.Equal(t, 1, rec.clears)

	rec.clock.Advance(10 * time.Second)
	assert.Empty(t, rec.fired)
}

func TestShortInputNeverFires(t *testing.T) {
	trig, rec := newTrigger(t, 3, 100*time.Millisecond)

	for _, v := range []string{"", " ", "a", "ab", "  ab  ", "\tz\n"} {
		trig.Signal(v)
		rec.clock.Advance(time.Second)
	}
	assert.Empty(t, rec.fired)
	assert.Equal(t, 6, rec.clears)
	assert.Zero(t, rec.clock.Pending())
}

func TestCancelPreventsFiring(t *testing.T) {
	trig, rec := newTrigger(t, 2, 300*time.Millisecond)

	trig.Signal("xy")
	rec.clock.Advance(100 * time.Millisecond)
	trig.Cancel()
	rec.clock.Advance(time.Hour)

	assert.Empty(t, rec.fired)
	assert.Zero(t, rec.clock.Pending())
}

func TestCancelIsIdempotent(t *testing.T) {
	trig, rec := newTrigger(t, 2, 300*time.Millisecond)

	trig.Cancel()
	trig.Signal("xy")
	trig.Cancel()
	trig.Cancel()
	assert.False(t, trig.Pending())

	trig.Signal("xyz")
	rec.clock.Advance(300 * time.Millisecond)
	require.Len(t, rec.fired, 1)
	assert.Equal(t, "xyz", rec.fired[0].value)
}

func TestSignalAfterFiringStartsNewWindow(t *testing.T) {
	trig, rec := newTrigger(t, 2, 300*time.Millisecond)

	trig.Signal("shoes")
	rec.clock.Advance(300 * time.Millisecond)
	trig.Signal("shoes run")
	rec.clock.Advance(300 * time.Millisecond)

	require.Len(t, rec.fired, 2)
	assert.Equal(t, "shoes", rec.fired[0].value)
	assert.Equal(t, "shoes run", rec.fired[1].value)
	assert.Equal(t, 600*time.Millisecond, rec.fired[1].at)
}

func TestValueIsTrimmed(t *testing.T) {
	trig, rec := newTrigger(t, 2, 10*time.Millisecond)

	trig.Signal("   book  ")
	rec.clock.Advance(10 * time.Millisecond)

	require.Len(t, rec.fired, 1)
	assert.Equal(t, "book", rec.fired[0].value)
}

func TestMinLengthCountsRunes(t *testing.T) {
	trig, rec := newTrigger(t, 2, 10*time.Millisecond)

	trig.Signal("é")
	rec.clock.Advance(time.Second)
	assert.Empty(t, rec.fired)

	trig.Signal("éa")
	rec.clock.Advance(time.Second)
	assert.Len(t, rec.fired, 1)
}

func TestActionPanicPropagates(t *testing.T) {
	clock := debouncetest.NewManualScheduler()
	trig := debounce.New(clock, 10*time.Millisecond, func(string) { panic("renderer failed") })

	trig.Signal("boom")
	assert.PanicsWithValue(t, "renderer failed", func() {
		clock.Advance(10 * time.Millisecond)
	})
	assert.False(t, trig.Pending())
}

func TestTimerSchedulerFiresAndCancels(t *testing.T) {
	s := debounce.NewTimerScheduler()
	done := make(chan string, 2)

	trig := debounce.New(s, 20*time.Millisecond, func(v string) { done <- v }, debounce.WithMinLength(2))
	trig.Signal("first")
	trig.Signal("second")

	select {
	case v := <-done:
		assert.Equal(t, "second", v)
	case <-time.After(2 * time.Second):
		t.Fatal("trigger did not fire")
	}

	h := s.After(time.Hour, func() { t.Error("cancelled timer fired") })
	require.Equal(t, 1, s.Len())
	s.Cancel(h)
	s.Cancel(h)
	assert.Zero(t, s.Len())

	select {
	case v := <-done:
		t.Fatalf("unexpected extra firing %q", v)
	case <-time.After(50 * time.Millisecond):
	}
}
