package modes

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"holoholo/internal/ui/input/types"
)

// PriceMode edits the price range filter, e.g. "10-100"
type PriceMode struct {
	TextInputMode
}

func NewPriceMode(ti *textinput.Model) *PriceMode {
	return &PriceMode{
		TextInputMode: NewTextInputMode(types.ModePrice, "price", "Price range: ", ti),
	}
}

func (m *PriceMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyRunes {
		for _, r := range msg.Runes {
			if !strings.ContainsRune("0123456789.-$, ", r) {
				return nil, true
			}
		}
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}
