package storefront

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"holoholo/internal/domain"
)

var (
	// ErrUnknownProduct is returned for product ids the stock lookup does not know
	ErrUnknownProduct = errors.New("unknown product")
	// ErrInsufficientStock is returned when a quantity exceeds available stock
	ErrInsufficientStock = errors.New("insufficient stock")
)

// StockFunc reports available stock for a product
type StockFunc func(productID int) (stock int, ok bool)

// Cart holds quantities per product
type Cart struct {
	mu    sync.RWMutex
	stock StockFunc
	lines map[int]int
}

// NewCart creates an empty cart checking quantities against stock
func NewCart(stock StockFunc) *Cart {
	return &Cart{
		stock: stock,
		lines: make(map[int]int),
	}
}

// ClampQuantity mirrors a quantity field that refuses values below one
func ClampQuantity(qty int) int {
	if qty < 1 {
		return 1
	}
	return qty
}

// Add adds qty units of a product, returning the resulting line quantity.
// Quantities below one add a single unit.
func (c *Cart) Add(productID, qty int) (int, error) {
	qty = ClampQuantity(qty)

	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.lines[productID] + qty
	if err := c.checkLocked(productID, next); err != nil {
		return c.lines[productID], err
	}
	c.lines[productID] = next
	return next, nil
}

// SetQuantity replaces a line's quantity; zero or less removes the line
func (c *Cart) SetQuantity(productID, qty int) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if qty <= 0 {
		delete(c.lines, productID)
		return 0, nil
	}
	if err := c.checkLocked(productID, qty); err != nil {
		return c.lines[productID], err
	}
	c.lines[productID] = qty
	return qty, nil
}

// Remove deletes a line
func (c *Cart) Remove(productID int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.lines, productID)
}

// Quantity returns the quantity of one line, 0 when absent
func (c *Cart) Quantity(productID int) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lines[productID]
}

// Lines returns all lines ordered by product id
func (c *Cart) Lines() []domain.CartLine {
	c.mu.RLock()
	defer c.mu.RUnlock()

	lines := make([]domain.CartLine, 0, len(c.lines))
	for id, qty := range c.lines {
		lines = append(lines, domain.CartLine{ProductID: id, Quantity: qty})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].ProductID < lines[j].ProductID })
	return lines
}

// Count returns the total number of units
func (c *Cart) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := 0
	for _, qty := range c.lines {
		total += qty
	}
	return total
}

// Total sums line prices using price
func (c *Cart) Total(price func(productID int) float64) float64 {
	total := 0.0
	for _, line := range c.Lines() {
		total += price(line.ProductID) * float64(line.Quantity)
	}
	return total
}

func (c *Cart) checkLocked(productID, qty int) error {
	if c.stock == nil {
		return nil
	}
	available, ok := c.stock(productID)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownProduct, productID)
	}
	if qty > available {
		return fmt.Errorf("%w: %d requested, %d available", ErrInsufficientStock, qty, available)
	}
	return nil
}
