package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"holoholo/internal/domain"
	"holoholo/internal/storefront"
)

const nameColumnWidth = 24

// ProductRow is one line of the product list with its per-user decorations
type ProductRow struct {
	Product    domain.Product
	InCart     int
	Wishlisted bool
	Busy       bool // add-to-cart in flight
}

// ProductRenderer handles rendering of product items
type ProductRenderer struct {
	styles      *Styles
	showRatings bool
}

// NewProductRenderer creates a new product renderer
func NewProductRenderer(styles *Styles, showRatings bool) *ProductRenderer {
	return &ProductRenderer{
		styles:      styles,
		showRatings: showRatings,
	}
}

// RenderProduct renders a product line
func (r *ProductRenderer) RenderProduct(row ProductRow, isSelected bool, searchQuery string) string {
	p := row.Product

	// Background color for selection
	bgColor := ""
	if isSelected {
		bgColor = "238"
	}
	bg := lipgloss.NewStyle().Background(lipgloss.Color(bgColor))

	var parts []string

	// Cursor
	cursor := "  "
	if isSelected {
		cursor = "▸ "
	}
	parts = append(parts, bg.Render(cursor))

	// Wishlist marker
	heart := "  "
	if row.Wishlisted {
		heart = r.styles.Wishlist.Background(lipgloss.Color(bgColor)).Render("♥") + bg.Render(" ")
	} else {
		heart = bg.Render(heart)
	}
	parts = append(parts, heart)

	// Name (with search highlighting if applicable), padded into a column
	name := truncate(p.Name, nameColumnWidth)
	padding := strings.Repeat(" ", nameColumnWidth-lipgloss.Width(name))
	if searchQuery != "" && strings.Contains(strings.ToLower(name), strings.ToLower(searchQuery)) {
		name = r.highlightMatch(name, searchQuery, r.styles.Highlight.Background(lipgloss.Color(bgColor)), bg)
	} else {
		name = bg.Render(name)
	}
	parts = append(parts, name, bg.Render(padding+" "))

	// Price
	price := fmt.Sprintf("%10s", storefront.FormatCurrency(p.Price))
	parts = append(parts, r.styles.Price.Background(lipgloss.Color(bgColor)).Render(price))

	// Rating
	if r.showRatings {
		parts = append(parts, bg.Render("  "))
		if p.ReviewCount > 0 {
			parts = append(parts, r.styles.Stars.Background(lipgloss.Color(bgColor)).Render(storefront.StarsFor(p.Rating)))
			parts = append(parts, bg.Render(fmt.Sprintf(" (%d)", p.ReviewCount)))
		} else {
			parts = append(parts, r.styles.Dim.Background(lipgloss.Color(bgColor)).Render(storefront.Stars(0)))
		}
	}

	// Stock and cart state
	if !p.InStock() {
		parts = append(parts, r.styles.OutOfStock.Background(lipgloss.Color(bgColor)).Render("  Out of stock"))
	}
	if row.InCart > 0 {
		parts = append(parts, r.styles.InCart.Background(lipgloss.Color(bgColor)).Render(fmt.Sprintf("  [%d in cart]", row.InCart)))
	}
	if row.Busy {
		parts = append(parts, r.styles.Busy.Background(lipgloss.Color(bgColor)).Render("  Adding..."))
	}

	return strings.Join(parts, "")
}

// highlightMatch highlights matching text within a string
func (r *ProductRenderer) highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(query)

	index := strings.Index(lowerText, lowerQuery)
	if index == -1 || len(lowerText) != len(text) {
		return normalStyle.Render(text)
	}

	// Split the text into parts
	before := text[:index]
	match := text[index : index+len(query)]
	after := text[index+len(query):]

	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}

	return strings.Join(result, "")
}

// truncate shortens s to at most width cells
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+3 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}
