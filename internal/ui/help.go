package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"holoholo/internal/domain"
	"holoholo/internal/storefront"
)

// HelpRenderer renders pager documents: key help and product details
type HelpRenderer struct {
	title   lipgloss.Style
	section lipgloss.Style
	key     lipgloss.Style
	desc    lipgloss.Style
	note    lipgloss.Style
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1),
		key:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		desc: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		note: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")),
	}
}

type helpEntry struct {
	keys string
	desc string
}

type helpSection struct {
	name    string
	entries []helpEntry
}

var helpSections = []helpSection{
	{"Browsing", []helpEntry{
		{"↑/↓, j/k", "Move between products"},
		{"PgUp/PgDn", "Page up/down"},
		{"g/Home", "Back to top"},
		{"G/End", "Go to bottom"},
		{"Enter", "Product details"},
		{"o", "Cycle sort order"},
		{"c", "Cycle category"},
		{"p", "Filter by price range (e.g. 10-100, blank clears)"},
	}},
	{"Search", []helpEntry{
		{"/", "Search products"},
		{"Tab/↓", "Move into suggestions"},
		{"↑/↓", "Highlight a suggestion"},
		{"Enter", "Choose suggestion or search"},
		{"Esc", "Leave search / clear results"},
	}},
	{"Cart & Wishlist", []helpEntry{
		{"a", "Add to cart"},
		{"+/-", "Change quantity in cart"},
		{"q", "Enter quantity"},
		{"x", "Remove from cart"},
		{"C", "Show cart"},
		{"w", "Toggle wishlist"},
	}},
	{"Sharing", []helpEntry{
		{"S", "Share product, then f/t/e"},
	}},
	{"Other", []helpEntry{
		{"?", "This help"},
		{"Q, Ctrl+C", "Quit"},
	}},
}

// RenderHelpContent generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContent(siteTitle string) string {
	var help strings.Builder

	help.WriteString(r.title.Render(siteTitle + " Help"))
	help.WriteString("\n")

	for _, section := range helpSections {
		help.WriteString(r.section.Render(section.name))
		help.WriteString("\n")
		for _, e := range section.entries {
			// pad before styling so columns line up
			help.WriteString(fmt.Sprintf("  %s %s\n", r.key.Render(fmt.Sprintf("%-10s", e.keys)), r.desc.Render(e.desc)))
		}
		help.WriteString("\n")
	}

	help.WriteString(r.note.Render("  Suggestions appear once you stop typing for a moment."))
	return help.String()
}

// ProductDetails is everything the details page shows about a product
type ProductDetails struct {
	Product    domain.Product
	Category   string
	InCart     int
	Wishlisted bool
	PageURL    string
}

// RenderProductDetails renders the product page for the pager
func (r *HelpRenderer) RenderProductDetails(d ProductDetails) string {
	p := d.Product
	var b strings.Builder

	b.WriteString(r.title.Render(p.Name))
	b.WriteString("\n")

	field := func(name, value string) {
		b.WriteString(fmt.Sprintf("  %s %s\n", r.key.Render(fmt.Sprintf("%-10s", name)), r.desc.Render(value)))
	}

	field("Price", storefront.FormatCurrency(p.Price))
	if d.Category != "" {
		field("Category", d.Category)
	}
	if p.InStock() {
		field("Stock", fmt.Sprintf("%d available", p.Stock))
	} else {
		field("Stock", "Out of stock")
	}
	if p.ReviewCount > 0 {
		field("Rating", fmt.Sprintf("%s %.1f (%d reviews)", storefront.StarsFor(p.Rating), p.Rating, p.ReviewCount))
	} else {
		field("Rating", "No reviews yet")
	}
	if d.InCart > 0 {
		field("In cart", fmt.Sprintf("%d", d.InCart))
	}
	if d.Wishlisted {
		field("Wishlist", "♥ saved")
	}

	if p.Description != "" {
		b.WriteString(r.section.Render("Description"))
		b.WriteString("\n")
		b.WriteString("  " + r.desc.Render(p.Description))
		b.WriteString("\n")
	}

	if d.PageURL != "" {
		b.WriteString("\n")
		b.WriteString(r.note.Render("  " + d.PageURL))
	}
	return b.String()
}
