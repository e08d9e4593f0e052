package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"holoholo/internal/ui/input/types"
)

type QuantityMode struct {
	TextInputMode
}

func NewQuantityMode(ti *textinput.Model) *QuantityMode {
	return &QuantityMode{
		TextInputMode: NewTextInputMode(types.ModeQuantity, "quantity", "Quantity: ", ti),
	}
}

func (m *QuantityMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	// Only digits and editing keys reach the input
	if msg.Type == tea.KeyRunes {
		for _, r := range msg.Runes {
			if r < '0' || r > '9' {
				return nil, true
			}
		}
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}
