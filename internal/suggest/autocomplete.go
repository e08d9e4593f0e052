package suggest

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"holoholo/internal/debounce"
)

// Options configures an Autocomplete
type Options struct {
	Delay     time.Duration
	MinLength int
	OnChosen  func(value string) // runs after a suggestion is picked
	Logger    zerolog.Logger
}

// Autocomplete binds a text input to a debounced suggestion dropdown.
//
// Keystrokes go through a Trigger, so suggestions are only generated for the
// settled value. Leaving the input hides the dropdown unless the user is in
// the middle of picking an entry from it; in that case the hide waits until
// the pick is made or abandoned.
type Autocomplete struct {
	mu        sync.Mutex
	trigger   *debounce.Trigger
	generator *Generator
	renderer  Renderer
	onChosen  func(string)
	logger    zerolog.Logger

	value     string
	selecting bool
	blurred   bool
	closed    bool
}

// New creates an Autocomplete driven by scheduler
func New(scheduler debounce.Scheduler, generator *Generator, renderer Renderer, opts Options) *Autocomplete {
	a := &Autocomplete{
		generator: generator,
		renderer:  renderer,
		onChosen:  opts.OnChosen,
		logger:    opts.Logger.With().Str("component", "autocomplete").Logger(),
	}
	a.trigger = debounce.New(scheduler, opts.Delay, a.show,
		debounce.WithMinLength(opts.MinLength),
		debounce.WithClear(renderer.Hide),
	)
	return a
}

// Input reports the current text of the input
func (a *Autocomplete) Input(value string) {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.value = value
	a.blurred = false
	a.mu.Unlock()

	a.trigger.Signal(value)
}

// Reset starts a new editing session on an input prefilled with value.
// Any pending suggestions are dropped and the dropdown is hidden.
func (a *Autocomplete) Reset(value string) {
	a.trigger.Cancel()

	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.value = value
	a.selecting = false
	a.blurred = false
	a.mu.Unlock()

	a.renderer.Hide()
}

// Blur reports that the input lost focus
func (a *Autocomplete) Blur() {
	a.trigger.Cancel()

	a.mu.Lock()
	a.blurred = true
	deferHide := a.selecting
	a.mu.Unlock()

	if !deferHide {
		a.renderer.Hide()
	}
}

// BeginSelection marks that the user is picking from the dropdown
func (a *Autocomplete) BeginSelection() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.selecting = true
}

// EndSelection abandons a pick; a blur that happened meanwhile now hides the dropdown
func (a *Autocomplete) EndSelection() {
	a.mu.Lock()
	wasSelecting := a.selecting
	a.selecting = false
	hide := a.blurred
	a.mu.Unlock()

	if wasSelecting && hide {
		a.renderer.Hide()
	}
}

// Choose accepts value as the input's text and closes the dropdown
func (a *Autocomplete) Choose(value string) {
	a.trigger.Cancel()

	a.mu.Lock()
	a.value = value
	a.selecting = false
	onChosen := a.onChosen
	a.mu.Unlock()

	a.renderer.Hide()
	a.logger.Debug().Str("value", value).Msg("suggestion chosen")

	if onChosen != nil {
		onChosen(value)
	}
}

// Selecting reports whether a pick is in progress
func (a *Autocomplete) Selecting() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.selecting
}

// Value returns the last input or chosen value
func (a *Autocomplete) Value() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.value
}

// Pending reports whether suggestions are scheduled
func (a *Autocomplete) Pending() bool {
	return a.trigger.Pending()
}

// Close unbinds the input. Later calls to Input are ignored.
func (a *Autocomplete) Close() {
	a.mu.Lock()
	a.closed = true
	a.mu.Unlock()
	a.trigger.Cancel()
}

func (a *Autocomplete) show(query string) {
	suggestions := a.generator.Suggest(query)
	a.logger.Debug().Str("query", query).Int("count", len(suggestions)).Msg("showing suggestions")

	if len(suggestions) == 0 {
		a.renderer.Hide()
		return
	}
	a.renderer.Show(query, suggestions)
}
