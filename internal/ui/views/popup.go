package views

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"holoholo/internal/storefront"
)

// CartLineView is one cart line ready for display
type CartLineView struct {
	Name     string
	Quantity int
	Price    float64
}

// Subtotal returns price times quantity
func (l CartLineView) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay centers a popup over a greyed out copy of the main content
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)
	if width <= 0 || height <= 0 {
		return styledPopup
	}

	popupLines := strings.Split(styledPopup, "\n")
	baseLines := strings.Split(desaturateANSI(mainContent), "\n")
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}

	modalW := lipgloss.Width(styledPopup)
	x := (width - modalW) / 2
	if x < 0 {
		x = 0
	}
	y := (height - len(popupLines)) / 2
	if y < 0 {
		y = 0
	}

	// Replace whole rows with the popup row, keeping a greyed gutter on the left
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	for i, line := range popupLines {
		row := y + i
		if row >= len(baseLines) {
			break
		}
		plain := []rune(ansiRE.ReplaceAllString(baseLines[row], ""))
		left := ""
		if len(plain) > x {
			left = string(plain[:x])
		} else {
			left = string(plain) + strings.Repeat(" ", x-len(plain))
		}
		baseLines[row] = dim.Render(left) + line
	}

	return strings.Join(baseLines[:height], "\n")
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// desaturateANSI strips ANSI color/style codes and recolors text dim gray
func desaturateANSI(s string) string {
	lines := strings.Split(ansiRE.ReplaceAllString(s, ""), "\n")
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	for i, line := range lines {
		lines[i] = dim.Render(line)
	}
	return strings.Join(lines, "\n")
}

// renderCart renders the cart popup content
func (r *Renderer) renderCart(state ViewState) string {
	var b strings.Builder

	b.WriteString(r.styles.Title.Render("Shopping Cart"))
	b.WriteString("\n")

	if len(state.CartLines) == 0 {
		b.WriteString(r.styles.Dim.Render("Your cart is empty."))
		b.WriteString("\n\n")
		b.WriteString(r.styles.Help.Render("C or esc to close"))
		return b.String()
	}

	for _, line := range state.CartLines {
		b.WriteString(fmt.Sprintf("%-24s x%-3d %12s\n",
			truncate(line.Name, 24),
			line.Quantity,
			storefront.FormatCurrency(line.Subtotal()),
		))
	}
	b.WriteString(strings.Repeat("─", 42))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%-29s %12s\n", "Total", r.styles.Price.Render(storefront.FormatCurrency(state.CartTotal))))
	b.WriteString("\n")
	b.WriteString(r.styles.Help.Render("C or esc to close"))
	return b.String()
}
