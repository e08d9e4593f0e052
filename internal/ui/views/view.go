package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"holoholo/internal/storefront"
	"holoholo/internal/suggest"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	SiteTitle      string
	Rows           []ProductRow
	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int

	SortLabel    string
	CategoryName string // empty when all categories are shown
	SearchQuery  string
	PriceLabel   string // empty when no price range is applied
	CartCount    int
	Wishlisted   []int // wishlist product ids

	InputMode  string // "", "search", "quantity", "price" or "share"
	Prompt     string
	TextInput  string
	ShareTitle string

	Suggestions        []suggest.Suggestion
	SuggestionsVisible bool
	SuggestionIndex    int

	ShowCart  bool
	CartLines []CartLineView
	CartTotal float64

	Notifications []storefront.Notification
	StatusMessage string
	ShowBackToTop bool
	HelpView      string
}

// Renderer handles all view rendering
type Renderer struct {
	styles        *Styles
	productRender *ProductRenderer
	popupRender   *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(showRatings bool) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:        styles,
		productRender: NewProductRenderer(styles, showRatings),
		popupRender:   NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitleLine(state))
	content.WriteString("\n\n")

	// Input line and dropdown
	switch state.InputMode {
	case "search", "quantity", "price":
		content.WriteString(r.styles.Prompt.Render(state.Prompt))
		content.WriteString(state.TextInput)
		content.WriteString("\n")
		if state.InputMode == "search" && state.SuggestionsVisible {
			content.WriteString(r.renderDropdown(state))
			content.WriteString("\n")
		}
		content.WriteString("\n")
	case "share":
		content.WriteString(r.styles.Prompt.Render(fmt.Sprintf("Share %s: ", state.ShareTitle)))
		content.WriteString(r.styles.Dim.Render("f facebook • t twitter • e email • esc cancel"))
		content.WriteString("\n\n")
	}

	// Main content
	if len(state.Rows) == 0 {
		if state.SearchQuery != "" {
			content.WriteString(r.styles.Dim.Render(fmt.Sprintf("No products match %q. Press esc to clear the search.", state.SearchQuery)))
		} else if state.PriceLabel != "" {
			content.WriteString(r.styles.Dim.Render("No products in this price range. Press p to change it."))
		} else {
			content.WriteString(r.styles.Dim.Render("No products in this category."))
		}
	} else {
		content.WriteString(r.renderProductList(state))
	}

	if state.ShowBackToTop {
		content.WriteString("\n")
		content.WriteString(r.styles.BackToTop.Render("↑ g back to top"))
	}

	// Footer: notifications, status and help pushed to the bottom
	footer := r.renderFooter(state)
	currentLines := strings.Count(content.String(), "\n") + 1
	footerLines := strings.Count(footer, "\n") + 1

	// Account for container padding (1 top, 1 bottom from Padding(1, 2))
	availableLines := state.Height - 2
	if availableLines <= 0 {
		availableLines = 22 // Default terminal height minus padding
	}
	if paddingNeeded := availableLines - currentLines - footerLines; paddingNeeded > 0 {
		content.WriteString(strings.Repeat("\n", paddingNeeded))
	}
	content.WriteString("\n")
	content.WriteString(footer)

	// Apply main container style
	mainStyle := r.styles.Main.MaxHeight(state.Height)
	finalContent := mainStyle.Render(content.String())

	if state.ShowCart {
		return r.popupRender.RenderPopupOverlay(finalContent, r.renderCart(state), state.Height, state.Width, r.styles.CartBox)
	}

	return finalContent
}

// renderTitleLine renders the site title with right-aligned indicators
func (r *Renderer) renderTitleLine(state ViewState) string {
	title := state.SiteTitle
	if title == "" {
		title = "holoholo"
	}
	// Margin is dropped so the indicators stay on the logo's line
	logo := r.styles.Title.MarginBottom(0).Render(title)

	indicators := []string{}
	if state.SearchQuery != "" {
		indicators = append(indicators, r.styles.Filter.Render(fmt.Sprintf("[Search: %s]", state.SearchQuery)))
	}
	if state.PriceLabel != "" {
		indicators = append(indicators, r.styles.Filter.Render(fmt.Sprintf("[%s]", state.PriceLabel)))
	}
	if state.CategoryName != "" {
		indicators = append(indicators, r.styles.Filter.Render(fmt.Sprintf("[%s]", state.CategoryName)))
	}
	if state.SortLabel != "" {
		indicators = append(indicators, r.styles.Dim.Render(fmt.Sprintf("Sort: %s", state.SortLabel)))
	}
	if len(state.Wishlisted) > 0 {
		indicators = append(indicators, r.styles.Wishlist.Render(fmt.Sprintf("♥ %d", len(state.Wishlisted))))
	}
	indicators = append(indicators, r.styles.InCart.Render(fmt.Sprintf("🛒 %d", state.CartCount)))

	rightContent := strings.Join(indicators, "  ")

	// Use a default width if state.Width is not set
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	availableWidth := termWidth - 4 // Account for main container padding
	paddingWidth := availableWidth - lipgloss.Width(logo) - lipgloss.Width(rightContent)

	if paddingWidth > 0 {
		return logo + strings.Repeat(" ", paddingWidth) + rightContent
	}
	// If not enough space, just show with minimal spacing
	return logo + "  " + rightContent
}

// renderProductList renders the visible window of the product list
func (r *Renderer) renderProductList(state ViewState) string {
	total := len(state.Rows)

	effectiveHeight := state.ViewportHeight
	needsTopIndicator := state.ViewportOffset > 0
	needsBottomIndicator := total > state.ViewportOffset+state.ViewportHeight

	if needsTopIndicator {
		effectiveHeight--
	}
	if needsBottomIndicator {
		effectiveHeight--
	}
	if effectiveHeight < 1 {
		effectiveHeight = 1
	}

	var lines []string
	if needsTopIndicator {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", state.ViewportOffset)))
	}

	end := state.ViewportOffset + effectiveHeight
	if end > total {
		end = total
	}
	for i := state.ViewportOffset; i < end; i++ {
		lines = append(lines, r.productRender.RenderProduct(state.Rows[i], i == state.SelectedIndex, state.SearchQuery))
	}

	if needsBottomIndicator {
		itemsBelow := total - end
		if itemsBelow < 0 {
			itemsBelow = 0
		}
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", itemsBelow)))
	}

	return strings.Join(lines, "\n")
}

// renderFooter renders toasts, the status message and the key help bar
func (r *Renderer) renderFooter(state ViewState) string {
	var lines []string

	for _, n := range state.Notifications {
		lines = append(lines, r.styles.ToastStyle(n.Level).Render(n.Message))
	}

	if state.StatusMessage != "" {
		lines = append(lines, r.styles.Status.Render(state.StatusMessage))
	}

	if state.HelpView != "" {
		lines = append(lines, state.HelpView)
	} else {
		lines = append(lines, r.styles.Help.Render("Press ? for help"))
	}

	return strings.Join(lines, "\n")
}
