package suggest

import "holoholo/internal/domain"

// Kind tells where a suggestion came from
type Kind int

const (
	KindTemplate Kind = iota // phrase built around the query
	KindProduct              // catalog product name
)

// Suggestion is one entry of the dropdown
type Suggestion struct {
	Text      string
	Kind      Kind
	ProductID int // set for KindProduct
}

// Renderer displays or hides the suggestion dropdown
type Renderer interface {
	Show(query string, suggestions []Suggestion)
	Hide()
}

// ProductSearcher finds products whose name matches a query
type ProductSearcher interface {
	Search(query string) []domain.Product
}
