package viewmodels

import (
	"holoholo/internal/catalog"
	"holoholo/internal/config"
	"holoholo/internal/storefront"
	"holoholo/internal/ui/state"
	"holoholo/internal/ui/views"
)

// Stores groups the per-session storefront state the view decorates rows with
type Stores struct {
	Catalog  *catalog.Catalog
	Cart     *storefront.Cart
	Wishlist *storefront.Wishlist
	Busy     *storefront.BusyButtons
	Notifier *storefront.Notifier
}

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state  *state.AppState
	config *config.Config
	stores Stores

	width     int
	height    int
	inputMode string
	prompt    string
	textInput string
	helpView  string
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, cfg *config.Config, stores Stores) *ViewModel {
	return &ViewModel{
		state:  appState,
		config: cfg,
		stores: stores,
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetInput sets the active input mode and the rendered text input.
// mode is empty in normal mode.
func (vm *ViewModel) SetInput(mode, prompt, text string) {
	vm.inputMode = mode
	vm.prompt = prompt
	vm.textInput = text
}

// SetHelpView sets the rendered key help bar
func (vm *ViewModel) SetHelpView(helpView string) {
	vm.helpView = helpView
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	s := vm.state

	vs := views.ViewState{
		Width:              vm.width,
		Height:             vm.height,
		SiteTitle:          vm.config.Share.SiteTitle,
		Rows:               vm.rows(),
		SelectedIndex:      s.SelectedIndex,
		ViewportOffset:     s.ViewportOffset,
		ViewportHeight:     s.ViewportHeight,
		SortLabel:          s.Sort.Label(),
		SearchQuery:        s.SearchQuery,
		PriceLabel:         s.Price.Label(),
		CartCount:          vm.stores.Cart.Count(),
		InputMode:          vm.inputMode,
		Prompt:             vm.prompt,
		TextInput:          vm.textInput,
		Suggestions:        s.Suggestions,
		SuggestionsVisible: s.SuggestionsVisible,
		SuggestionIndex:    s.SuggestionIndex,
		ShowCart:           s.ShowCart,
		StatusMessage:      s.StatusMessage,
		ShowBackToTop:      vm.showBackToTop(),
		HelpView:           vm.helpView,
	}

	if s.CategoryID != 0 {
		if c, ok := vm.stores.Catalog.Category(s.CategoryID); ok {
			vs.CategoryName = c.Name
		}
	}
	if p, ok := s.SelectedProduct(); ok {
		vs.ShareTitle = p.Name
	}
	if vm.stores.Notifier != nil {
		vs.Notifications = vm.stores.Notifier.Active()
	}
	if vm.stores.Wishlist != nil {
		vs.Wishlisted = vm.stores.Wishlist.IDs()
	}
	if s.ShowCart {
		vs.CartLines, vs.CartTotal = vm.cartLines()
	}

	return vs
}

func (vm *ViewModel) rows() []views.ProductRow {
	rows := make([]views.ProductRow, len(vm.state.Products))
	for i, p := range vm.state.Products {
		rows[i] = views.ProductRow{
			Product:    p,
			InCart:     vm.stores.Cart.Quantity(p.ID),
			Wishlisted: vm.stores.Wishlist != nil && vm.stores.Wishlist.Contains(p.ID),
			Busy:       vm.stores.Busy != nil && vm.stores.Busy.IsBusy(storefront.AddToCartKey(p.ID)),
		}
	}
	return rows
}

func (vm *ViewModel) cartLines() ([]views.CartLineView, float64) {
	lines := vm.stores.Cart.Lines()
	out := make([]views.CartLineView, 0, len(lines))
	for _, line := range lines {
		p, ok := vm.stores.Catalog.Product(line.ProductID)
		if !ok {
			continue
		}
		out = append(out, views.CartLineView{Name: p.Name, Quantity: line.Quantity, Price: p.Price})
	}
	total := vm.stores.Cart.Total(func(id int) float64 {
		p, _ := vm.stores.Catalog.Product(id)
		return p.Price
	})
	return out, total
}

// showBackToTop reports whether the list is scrolled far enough to offer a jump back
func (vm *ViewModel) showBackToTop() bool {
	threshold := vm.config.UISettings.BackToTopThreshold
	if threshold <= 0 {
		return false
	}
	return vm.state.ViewportOffset >= threshold
}
