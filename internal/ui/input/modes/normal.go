package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"holoholo/internal/ui/input/types"
)

type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{}}, true

	case tea.KeyEsc:
		// Esc closes the cart first, then clears an applied search
		if ctx.CartVisible() {
			return []types.Action{types.ToggleCartAction{}}, true
		}
		if ctx.SearchQuery() != "" {
			return []types.Action{types.ClearSearchAction{}}, true
		}
		return nil, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyEnter:
		if ctx.HasProduct() {
			return []types.Action{types.OpenDetailsAction{}}, true
		}
		return nil, false
	}

	// Handle string keys
	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "g":
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case "G":
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case "/":
		// Enter search mode with the applied query ready for editing
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch, Data: ctx.SearchQuery()}}, true

	case "a":
		if ctx.HasProduct() {
			return []types.Action{types.AddToCartAction{}}, true
		}
		return nil, true

	case "w":
		if ctx.HasProduct() {
			return []types.Action{types.ToggleWishlistAction{}}, true
		}
		return nil, true

	case "+", "=":
		if ctx.HasProduct() {
			return []types.Action{types.AdjustQuantityAction{Delta: 1}}, true
		}
		return nil, true

	case "-":
		if ctx.HasProduct() && ctx.CartQuantity() > 0 {
			return []types.Action{types.AdjustQuantityAction{Delta: -1}}, true
		}
		return nil, true

	case "x":
		if ctx.HasProduct() && ctx.CartQuantity() > 0 {
			return []types.Action{types.RemoveFromCartAction{}}, true
		}
		return nil, true

	case "q":
		// Quantity entry for the selected product
		if ctx.HasProduct() {
			qty := ctx.CartQuantity()
			if qty < 1 {
				qty = 1
			}
			return []types.Action{types.ChangeModeAction{Mode: types.ModeQuantity, Data: itoa(qty)}}, true
		}
		return nil, true

	case "p":
		return []types.Action{types.ChangeModeAction{Mode: types.ModePrice, Data: ctx.PriceRange()}}, true

	case "S":
		if ctx.HasProduct() {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeShare}}, true
		}
		return nil, true

	case "o":
		return []types.Action{types.CycleSortAction{}}, true

	case "c":
		return []types.Action{types.CycleCategoryAction{}}, true

	case "C":
		return []types.Action{types.ToggleCartAction{}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "Q":
		return []types.Action{types.QuitAction{}}, true
	}

	return nil, false
}
