package viewmodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holoholo/internal/catalog"
	"holoholo/internal/config"
	"holoholo/internal/debounce/debouncetest"
	"holoholo/internal/storefront"
	"holoholo/internal/ui/state"
)

func newFixture(t *testing.T) (*ViewModel, *state.AppState, Stores) {
	t.Helper()

	cat := catalog.Seed()
	sched := debouncetest.NewManualScheduler()
	stores := Stores{
		Catalog: cat,
		Cart: storefront.NewCart(func(id int) (int, bool) {
			p, ok := cat.Product(id)
			return p.Stock, ok
		}),
		Wishlist: storefront.NewWishlist(),
		Busy:     storefront.NewBusyButtons(sched, time.Second),
		Notifier: storefront.NewNotifier(sched, 5*time.Second, 3),
	}

	s := state.NewAppState()
	s.SetProducts(cat.Query(catalog.Filter{}))
	return NewViewModel(s, config.DefaultConfig(), stores), s, stores
}

func TestRowsCarryCartWishlistAndBusyState(t *testing.T) {
	vm, s, stores := newFixture(t)

	_, err := stores.Cart.Add(2, 3)
	require.NoError(t, err)
	stores.Wishlist.Toggle(2)
	stores.Busy.Press(storefront.AddToCartKey(2))

	vs := vm.BuildViewState()
	require.Len(t, vs.Rows, len(s.Products))

	for _, row := range vs.Rows {
		if row.Product.ID == 2 {
			assert.Equal(t, 3, row.InCart)
			assert.True(t, row.Wishlisted)
			assert.True(t, row.Busy)
		} else {
			assert.Zero(t, row.InCart)
			assert.False(t, row.Wishlisted)
			assert.False(t, row.Busy)
		}
	}
	assert.Equal(t, 3, vs.CartCount)
	assert.Equal(t, []int{2}, vs.Wishlisted)
	assert.Equal(t, "Name", vs.SortLabel)
	assert.Equal(t, "Holoholo", vs.SiteTitle)
}

func TestCartLinesOnlyBuiltWhenCartShown(t *testing.T) {
	vm, s, stores := newFixture(t)

	_, err := stores.Cart.Add(4, 2)
	require.NoError(t, err)
	_, err = stores.Cart.Add(8, 1)
	require.NoError(t, err)

	assert.Empty(t, vm.BuildViewState().CartLines)

	s.ShowCart = true
	vs := vm.BuildViewState()
	require.Len(t, vs.CartLines, 2)
	assert.Equal(t, "Men's T-Shirt", vs.CartLines[0].Name)
	assert.InDelta(t, 2*24.99+39.99, vs.CartTotal, 0.001)

	stores.Cart.Remove(8)
	vs = vm.BuildViewState()
	require.Len(t, vs.CartLines, 1)
	assert.InDelta(t, 2*24.99, vs.CartTotal, 0.001)
}

func TestCategoryNameAndInput(t *testing.T) {
	vm, s, _ := newFixture(t)

	s.CategoryID = 3
	var err error
	s.Price, err = catalog.ParsePriceRange("10-")
	require.NoError(t, err)
	vm.SetInput("search", "Search: ", "lap")
	vm.SetDimensions(100, 30)

	vs := vm.BuildViewState()
	assert.Equal(t, "Books", vs.CategoryName)
	assert.Equal(t, "from $10.00", vs.PriceLabel)
	assert.Equal(t, "search", vs.InputMode)
	assert.Equal(t, "lap", vs.TextInput)
	assert.Equal(t, 100, vs.Width)
}

func TestBackToTopFollowsThreshold(t *testing.T) {
	vm, s, _ := newFixture(t)
	vm.config.UISettings.BackToTopThreshold = 2

	s.ViewportOffset = 1
	assert.False(t, vm.BuildViewState().ShowBackToTop)

	s.ViewportOffset = 2
	assert.True(t, vm.BuildViewState().ShowBackToTop)

	vm.config.UISettings.BackToTopThreshold = 0
	assert.False(t, vm.BuildViewState().ShowBackToTop)
}
