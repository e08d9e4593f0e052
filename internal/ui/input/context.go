package input

import (
	"holoholo/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State     *state.AppState
	Quantity  func(productID int) int
	Selecting bool
}

// HasProduct reports whether the cursor is on a product
func (c *ModelContext) HasProduct() bool {
	_, ok := c.State.SelectedProduct()
	return ok
}

// CartQuantity returns the cart quantity of the selected product
func (c *ModelContext) CartQuantity() int {
	p, ok := c.State.SelectedProduct()
	if !ok || c.Quantity == nil {
		return 0
	}
	return c.Quantity(p.ID)
}

func (c *ModelContext) CartVisible() bool {
	return c.State.ShowCart
}

func (c *ModelContext) SearchQuery() string {
	return c.State.SearchQuery
}

func (c *ModelContext) PriceRange() string {
	return c.State.Price.String()
}

func (c *ModelContext) SuggestionsVisible() bool {
	return c.State.SuggestionsVisible
}

func (c *ModelContext) SelectingSuggestion() bool {
	return c.Selecting
}
