package state

import (
	"holoholo/internal/catalog"
	"holoholo/internal/domain"
	"holoholo/internal/suggest"
)

// AppState contains all the application state
type AppState struct {
	// Product list as currently filtered and sorted
	Products []domain.Product

	// Selection state
	SelectedIndex int // currently selected product

	// Listing options
	Sort       catalog.SortMode
	CategoryID int // 0 means all categories
	Price      catalog.PriceRange

	// UI state
	ViewportOffset int // offset for scrolling
	ViewportHeight int // available height for the product list
	ShowCart       bool
	StatusMessage  string // status bar message

	// Search state
	SearchQuery        string // query applied to the product list
	Suggestions        []suggest.Suggestion
	SuggestionQuery    string // settled query the dropdown was built for
	SuggestionsVisible bool
	SuggestionIndex    int // highlighted dropdown entry, -1 when none
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Products:        make([]domain.Product, 0),
		Sort:            catalog.SortName,
		ViewportHeight:  20, // Default
		SuggestionIndex: -1,
	}
}

// SetProducts replaces the product list, keeping the selected product
// selected when it is still present
func (s *AppState) SetProducts(products []domain.Product) {
	selectedID := 0
	if p, ok := s.SelectedProduct(); ok {
		selectedID = p.ID
	}

	s.Products = products
	s.SelectedIndex = 0
	for i, p := range products {
		if p.ID == selectedID {
			s.SelectedIndex = i
			break
		}
	}
	if s.ViewportOffset > s.SelectedIndex {
		s.ViewportOffset = s.SelectedIndex
	}
}

// SelectedProduct returns the product under the cursor
func (s *AppState) SelectedProduct() (domain.Product, bool) {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Products) {
		return domain.Product{}, false
	}
	return s.Products[s.SelectedIndex], true
}

// Suggestion dropdown operations

// ShowSuggestions fills the dropdown for a settled query
func (s *AppState) ShowSuggestions(query string, suggestions []suggest.Suggestion) {
	s.SuggestionQuery = query
	s.Suggestions = suggestions
	s.SuggestionsVisible = len(suggestions) > 0
	if s.SuggestionIndex >= len(suggestions) {
		s.SuggestionIndex = -1
	}
}

// HideSuggestions closes the dropdown
func (s *AppState) HideSuggestions() {
	s.SuggestionsVisible = false
	s.Suggestions = nil
	s.SuggestionQuery = ""
	s.SuggestionIndex = -1
}

// MoveSuggestion moves the highlight by delta, wrapping around
func (s *AppState) MoveSuggestion(delta int) {
	n := len(s.Suggestions)
	if n == 0 {
		s.SuggestionIndex = -1
		return
	}
	if s.SuggestionIndex < 0 {
		if delta < 0 {
			s.SuggestionIndex = n - 1
		} else {
			s.SuggestionIndex = 0
		}
		return
	}
	s.SuggestionIndex = ((s.SuggestionIndex+delta)%n + n) % n
}

// HighlightedSuggestion returns the highlighted dropdown entry
func (s *AppState) HighlightedSuggestion() (suggest.Suggestion, bool) {
	if !s.SuggestionsVisible || s.SuggestionIndex < 0 || s.SuggestionIndex >= len(s.Suggestions) {
		return suggest.Suggestion{}, false
	}
	return s.Suggestions[s.SuggestionIndex], true
}
