package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"holoholo/internal/ui/input/types"
)

// SearchMode feeds keystrokes to the autocomplete and lets the user move
// into the suggestion dropdown
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "Search: ", ti),
	}
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	selecting := ctx.SelectingSuggestion()

	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{}}, true

	case "esc":
		actions := []types.Action{}
		if selecting {
			actions = append(actions, types.LeaveSuggestionsAction{})
		}
		return append(actions,
			types.CancelTextAction{Mode: types.ModeSearch},
			types.ChangeModeAction{Mode: types.ModeNormal},
		), true

	case "tab":
		if ctx.SuggestionsVisible() && !selecting {
			return []types.Action{types.FocusSuggestionsAction{}}, true
		}
		return nil, true

	case "down":
		if selecting {
			return []types.Action{types.SuggestionNavigateAction{Direction: "down"}}, true
		}
		if ctx.SuggestionsVisible() {
			return []types.Action{types.FocusSuggestionsAction{}}, true
		}
		return nil, true

	case "up":
		if selecting {
			return []types.Action{types.SuggestionNavigateAction{Direction: "up"}}, true
		}
		return nil, true

	case "enter":
		if selecting {
			return []types.Action{
				types.ChooseSuggestionAction{},
				types.ChangeModeAction{Mode: types.ModeNormal},
			}, true
		}
		return []types.Action{
			types.SubmitTextAction{Text: m.value(), Mode: types.ModeSearch},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}

	// Typing while in the dropdown returns focus to the input
	if selecting {
		return []types.Action{types.LeaveSuggestionsAction{}}, false
	}
	return nil, false
}
