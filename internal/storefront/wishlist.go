package storefront

import (
	"sort"
	"sync"
)

// Wishlist is a set of saved product ids
type Wishlist struct {
	mu  sync.RWMutex
	ids map[int]struct{}
}

func NewWishlist() *Wishlist {
	return &Wishlist{ids: make(map[int]struct{})}
}

// Toggle adds or removes a product and reports whether it was added
func (w *Wishlist) Toggle(productID int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.ids[productID]; ok {
		delete(w.ids, productID)
		return false
	}
	w.ids[productID] = struct{}{}
	return true
}

func (w *Wishlist) Contains(productID int) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.ids[productID]
	return ok
}

// IDs returns saved ids in ascending order
func (w *Wishlist) IDs() []int {
	w.mu.RLock()
	defer w.mu.RUnlock()

	ids := make([]int, 0, len(w.ids))
	for id := range w.ids {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
