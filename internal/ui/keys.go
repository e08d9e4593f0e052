package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap describes the bindings shown in the help bar. Key handling itself
// lives in the input modes.
type keyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k keyMap) ShortHelp() []key.Binding  { return k.short }
func (k keyMap) FullHelp() [][]key.Binding { return k.full }

var (
	keyNavigate = key.NewBinding(key.WithKeys("up", "down", "j", "k"), key.WithHelp("↑/↓", "move"))
	keySearch   = key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search"))
	keyAdd      = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add to cart"))
	keyWishlist = key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "wishlist"))
	keyShare    = key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "share"))
	keyCart     = key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "cart"))
	keySort     = key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "sort"))
	keyPrice    = key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "price range"))
	keyHelp     = key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help"))
	keyQuit     = key.NewBinding(key.WithKeys("Q", "ctrl+c"), key.WithHelp("Q", "quit"))

	keySuggest = key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab/↓", "suggestions"))
	keyPick    = key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "highlight"))
	keySubmit  = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search"))
	keyChoose  = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose"))
	keyCancel  = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel"))
	keyApply   = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply"))
	keyRange   = key.NewBinding(key.WithKeys("-"), key.WithHelp("min-max", "blank clears"))
	keyTargets = key.NewBinding(key.WithKeys("f", "t", "e"), key.WithHelp("f/t/e", "facebook/twitter/email"))
)

var (
	normalKeys = keyMap{
		short: []key.Binding{keyNavigate, keySearch, keyAdd, keyWishlist, keyShare, keyCart, keySort, keyHelp, keyQuit},
		full: [][]key.Binding{
			{keyNavigate, keySort, keyPrice},
			{keySearch, keyAdd, keyWishlist},
			{keyShare, keyCart, keyHelp, keyQuit},
		},
	}
	searchKeys = keyMap{
		short: []key.Binding{keySuggest, keySubmit, keyCancel},
	}
	suggestionKeys = keyMap{
		short: []key.Binding{keyPick, keyChoose, keyCancel},
	}
	quantityKeys = keyMap{
		short: []key.Binding{keyApply, keyCancel},
	}
	priceKeys = keyMap{
		short: []key.Binding{keyRange, keyApply, keyCancel},
	}
	shareKeys = keyMap{
		short: []key.Binding{keyTargets, keyCancel},
	}
)
