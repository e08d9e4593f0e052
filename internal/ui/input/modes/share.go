package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"holoholo/internal/ui/input/types"
)

type ShareMode struct{}

func NewShareMode() *ShareMode {
	return &ShareMode{}
}

func (m *ShareMode) Name() string {
	return "share"
}

func (m *ShareMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ShareMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ShareMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{}}, true
	case "esc":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case "f", "t", "e":
		return []types.Action{
			types.ShareAction{Platform: msg.String()},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}

	// Swallow everything else so stray keys don't leak into normal mode
	return nil, true
}
