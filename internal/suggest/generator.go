package suggest

import (
	"strings"
	"unicode"
)

// Generator builds suggestion lists for a settled query
type Generator struct {
	products          ProductSearcher
	maxSuggestions    int
	maxProductMatches int
}

// NewGenerator creates a generator. products may be nil, in which case only
// template phrases are produced.
func NewGenerator(products ProductSearcher, maxSuggestions, maxProductMatches int) *Generator {
	if maxSuggestions <= 0 {
		maxSuggestions = 8
	}
	if maxProductMatches < 0 {
		maxProductMatches = 0
	}
	return &Generator{
		products:          products,
		maxSuggestions:    maxSuggestions,
		maxProductMatches: maxProductMatches,
	}
}

// Suggest returns the phrases for query followed by matching product names,
// without duplicates (case-insensitive) and capped at the configured maximum.
func (g *Generator) Suggest(query string) []Suggestion {
	q := sanitize(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	candidates := []Suggestion{
		{Text: q + " products", Kind: KindTemplate},
		{Text: q + " category", Kind: KindTemplate},
		{Text: "Best " + q, Kind: KindTemplate},
		{Text: q + " deals", Kind: KindTemplate},
	}

	if g.products != nil && g.maxProductMatches > 0 {
		matches := g.products.Search(q)
		if len(matches) > g.maxProductMatches {
			matches = matches[:g.maxProductMatches]
		}
		for _, p := range matches {
			candidates = append(candidates, Suggestion{Text: sanitize(p.Name), Kind: KindProduct, ProductID: p.ID})
		}
	}

	seen := make(map[string]bool, len(candidates))
	result := make([]Suggestion, 0, len(candidates))
	for _, s := range candidates {
		key := strings.ToLower(s.Text)
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, s)
		if len(result) == g.maxSuggestions {
			break
		}
	}
	return result
}

// sanitize drops control characters so typed input cannot inject terminal escapes
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}
