package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode"

	"holoholo/internal/domain"
	"holoholo/internal/storefront"
)

var (
	// ErrUnsupportedFormat is returned when a catalog file extension is not recognised
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
	// ErrInvalidCatalog is returned when catalog data fails validation
	ErrInvalidCatalog = errors.New("invalid catalog")
)

// SortMode orders query results
type SortMode string

const (
	SortName      SortMode = "name"
	SortPriceLow  SortMode = "price_low"
	SortPriceHigh SortMode = "price_high"
	SortNewest    SortMode = "newest"
)

var sortModes = []SortMode{SortName, SortPriceLow, SortPriceHigh, SortNewest}

// ParseSortMode maps a raw value to a SortMode, defaulting to SortName
func ParseSortMode(raw string) SortMode {
	for _, m := range sortModes {
		if string(m) == raw {
			return m
		}
	}
	return SortName
}

// Next returns the sort mode that follows m in cycling order
func (m SortMode) Next() SortMode {
	for i, mode := range sortModes {
		if mode == m {
			return sortModes[(i+1)%len(sortModes)]
		}
	}
	return SortName
}

// Label is the human readable form used in the status line
func (m SortMode) Label() string {
	switch m {
	case SortPriceLow:
		return "Price: Low to High"
	case SortPriceHigh:
		return "Price: High to Low"
	case SortNewest:
		return "Newest"
	default:
		return "Name"
	}
}

// Filter narrows a product query. Zero values mean "no constraint".
type Filter struct {
	CategoryID int
	MinPrice   *float64
	MaxPrice   *float64
	Query      string
	Sort       SortMode
}

// Catalog is an in-memory, read-mostly product store
type Catalog struct {
	mu         sync.RWMutex
	categories map[int]domain.Category
	products   map[int]domain.Product
}

// New validates the given data and builds a catalog from it
func New(categories []domain.Category, products []domain.Product) (*Catalog, error) {
	c := &Catalog{
		categories: make(map[int]domain.Category, len(categories)),
		products:   make(map[int]domain.Product, len(products)),
	}

	for _, cat := range categories {
		if _, dup := c.categories[cat.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate category id %d", ErrInvalidCatalog, cat.ID)
		}
		if strings.TrimSpace(cat.Name) == "" {
			return nil, fmt.Errorf("%w: category %d has no name", ErrInvalidCatalog, cat.ID)
		}
		c.categories[cat.ID] = cat
	}

	for _, p := range products {
		p.Name = stripControl(strings.TrimSpace(p.Name))
		p.Description = stripControl(p.Description)
		if p.Name == "" {
			return nil, fmt.Errorf("%w: product %d has no name", ErrInvalidCatalog, p.ID)
		}
		if _, dup := c.products[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate product id %d", ErrInvalidCatalog, p.ID)
		}
		if _, ok := c.categories[p.CategoryID]; !ok {
			return nil, fmt.Errorf("%w: product %d references unknown category %d", ErrInvalidCatalog, p.ID, p.CategoryID)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("%w: product %d has negative price", ErrInvalidCatalog, p.ID)
		}
		if p.Stock < 0 {
			return nil, fmt.Errorf("%w: product %d has negative stock", ErrInvalidCatalog, p.ID)
		}
		for _, score := range p.Reviews {
			if score < 1 || score > 5 {
				return nil, fmt.Errorf("%w: product %d has review score %d outside 1-5", ErrInvalidCatalog, p.ID, score)
			}
		}
		if len(p.Reviews) > 0 {
			p.Rating = storefront.Average(p.Reviews)
			p.ReviewCount = len(p.Reviews)
		}
		c.products[p.ID] = p
	}

	return c, nil
}

// stripControl removes control characters so catalog text cannot carry terminal escapes
func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// Product returns the product with the given id
func (c *Catalog) Product(id int) (domain.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.products[id]
	return p, ok
}

// Category returns the category with the given id
func (c *Catalog) Category(id int) (domain.Category, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cat, ok := c.categories[id]
	return cat, ok
}

// Categories returns all categories ordered by id
func (c *Catalog) Categories() []domain.Category {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]domain.Category, 0, len(c.categories))
	for _, cat := range c.categories {
		result = append(result, cat)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// Products returns every product ordered by id
func (c *Catalog) Products() []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.byIDLocked()
}

// Search returns products whose name contains q, case-insensitively, ordered by name.
// An empty query matches nothing.
func (c *Catalog) Search(q string) []domain.Product {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil
	}
	return c.Query(Filter{Query: q, Sort: SortName})
}

// Query applies a filter and sort to the catalog
func (c *Catalog) Query(f Filter) []domain.Product {
	c.mu.RLock()
	all := c.byIDLocked()
	c.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(f.Query))
	result := make([]domain.Product, 0, len(all))
	for _, p := range all {
		if f.CategoryID != 0 && p.CategoryID != f.CategoryID {
			continue
		}
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		result = append(result, p)
	}

	sortProducts(result, f.Sort)
	return result
}

func (c *Catalog) byIDLocked() []domain.Product {
	result := make([]domain.Product, 0, len(c.products))
	for _, p := range c.products {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// sortProducts sorts in place; input is expected in id order so ties stay stable
func sortProducts(products []domain.Product, mode SortMode) {
	var less func(a, b domain.Product) bool
	switch mode {
	case SortPriceLow:
		less = func(a, b domain.Product) bool { return a.Price < b.Price }
	case SortPriceHigh:
		less = func(a, b domain.Product) bool { return a.Price > b.Price }
	case SortNewest:
		less = func(a, b domain.Product) bool { return a.CreatedAt.After(b.CreatedAt) }
	default:
		less = func(a, b domain.Product) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	}
	sort.SliceStable(products, func(i, j int) bool { return less(products[i], products[j]) })
}
