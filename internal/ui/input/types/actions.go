package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode; a string pre-fills text modes
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct {
	Mode Mode
}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Suggestion dropdown actions
type FocusSuggestionsAction struct{}

func (a FocusSuggestionsAction) Type() string { return "focus_suggestions" }

type SuggestionNavigateAction struct {
	Direction string // "up" or "down"
}

func (a SuggestionNavigateAction) Type() string { return "suggestion_navigate" }

type ChooseSuggestionAction struct{}

func (a ChooseSuggestionAction) Type() string { return "choose_suggestion" }

// LeaveSuggestionsAction returns focus from the dropdown to the text input
type LeaveSuggestionsAction struct{}

func (a LeaveSuggestionsAction) Type() string { return "leave_suggestions" }

type ClearSearchAction struct{}

func (a ClearSearchAction) Type() string { return "clear_search" }

// Storefront actions
type AddToCartAction struct{}

func (a AddToCartAction) Type() string { return "add_to_cart" }

type AdjustQuantityAction struct {
	Delta int
}

func (a AdjustQuantityAction) Type() string { return "adjust_quantity" }

type RemoveFromCartAction struct{}

func (a RemoveFromCartAction) Type() string { return "remove_from_cart" }

type ToggleWishlistAction struct{}

func (a ToggleWishlistAction) Type() string { return "toggle_wishlist" }

type ShareAction struct {
	Platform string
}

func (a ShareAction) Type() string { return "share" }

type CycleSortAction struct{}

func (a CycleSortAction) Type() string { return "cycle_sort" }

type CycleCategoryAction struct{}

func (a CycleCategoryAction) Type() string { return "cycle_category" }

// View actions
type OpenDetailsAction struct{}

func (a OpenDetailsAction) Type() string { return "open_details" }

type ToggleCartAction struct{}

func (a ToggleCartAction) Type() string { return "toggle_cart" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
