package views

import (
	"strings"

	"holoholo/internal/suggest"
)

// renderDropdown renders the suggestion list under the search input
func (r *Renderer) renderDropdown(state ViewState) string {
	lines := make([]string, 0, len(state.Suggestions))
	for i, s := range state.Suggestions {
		text := s.Text
		if s.Kind == suggest.KindProduct {
			text = "• " + text
		}

		switch {
		case i == state.SuggestionIndex:
			lines = append(lines, r.styles.DropdownHL.Render(text))
		case s.Kind == suggest.KindProduct:
			lines = append(lines, r.styles.DropdownMatch.Render(text))
		default:
			lines = append(lines, r.styles.DropdownItem.Render(text))
		}
	}
	return r.styles.Dropdown.Render(strings.Join(lines, "\n"))
}
