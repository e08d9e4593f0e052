package ui

import (
	"holoholo/internal/domain"
	"holoholo/internal/eventbus"
	"holoholo/internal/suggest"
	"holoholo/internal/ui/state"
)

// dropdown renders autocomplete results into the app state; the view draws
// them under the search input
type dropdown struct {
	state *state.AppState
	bus   eventbus.EventBus
}

func (d *dropdown) Show(query string, suggestions []suggest.Suggestion) {
	d.state.ShowSuggestions(query, suggestions)
	if d.bus != nil {
		d.bus.Publish(domain.SuggestionsShownEvent{Query: query, Count: len(suggestions)})
	}
}

func (d *dropdown) Hide() {
	d.state.HideSuggestions()
}
