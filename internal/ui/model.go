package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"holoholo/internal/catalog"
	"holoholo/internal/config"
	"holoholo/internal/debounce"
	"holoholo/internal/domain"
	"holoholo/internal/eventbus"
	"holoholo/internal/storefront"
	"holoholo/internal/suggest"
	"holoholo/internal/ui/input"
	inputtypes "holoholo/internal/ui/input/types"
	"holoholo/internal/ui/logic"
	"holoholo/internal/ui/state"
	"holoholo/internal/ui/viewmodels"
	"holoholo/internal/ui/views"
)

// Options holds the dependencies of the UI model
type Options struct {
	Config    *config.Config
	Catalog   *catalog.Catalog
	Scheduler debounce.Scheduler // a *LoopScheduler when running under a program
	Bus       eventbus.EventBus  // may be nil
	Logger    zerolog.Logger
	Clipboard func(text string) error // defaults to the system clipboard
}

// firer is implemented by schedulers whose callbacks run from Update
type firer interface {
	Fire(h debounce.Handle) bool
}

// Model represents the UI state
type Model struct {
	bus     eventbus.EventBus
	config  *config.Config
	catalog *catalog.Catalog
	state   *state.AppState // centralized state
	logger  zerolog.Logger

	// UI-specific state not in AppState
	width       int
	height      int
	help        help.Model
	inPagerMode bool // tracks if we're currently in pager mode

	// Storefront
	scheduler    debounce.Scheduler
	autocomplete *suggest.Autocomplete
	cart         *storefront.Cart
	wishlist     *storefront.Wishlist
	busy         *storefront.BusyButtons
	notifier     *storefront.Notifier
	clipboard    func(string) error

	// Handlers
	navigator    *logic.Navigator
	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	inputHandler *input.Handler
	helpRenderer *HelpRenderer
	pager        *PagerOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Seed()
	}
	sched := opts.Scheduler
	if sched == nil {
		sched = NewLoopScheduler()
	}
	copyFn := opts.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	m := &Model{
		bus:          opts.Bus,
		config:       cfg,
		catalog:      cat,
		state:        state.NewAppState(),
		logger:       opts.Logger.With().Str("component", "ui").Logger(),
		help:         help.New(),
		scheduler:    sched,
		wishlist:     storefront.NewWishlist(),
		busy:         storefront.NewBusyButtons(sched, cfg.Cart.Busy()),
		notifier:     storefront.NewNotifier(sched, cfg.Notifications.Timeout(), cfg.Notifications.MaxVisible),
		clipboard:    copyFn,
		navigator:    logic.NewNavigator(),
		renderer:     views.NewRenderer(cfg.UISettings.ShowRatings),
		inputHandler: input.New(),
		helpRenderer: NewHelpRenderer(),
		pager:        NewPagerOps(),
	}

	m.cart = storefront.NewCart(func(id int) (int, bool) {
		p, ok := cat.Product(id)
		return p.Stock, ok
	})

	generator := suggest.NewGenerator(cat, cfg.Search.MaxSuggestions, cfg.Search.MaxProductMatches)
	m.autocomplete = suggest.New(sched, generator, &dropdown{state: m.state, bus: m.bus}, suggest.Options{
		Delay:     cfg.Search.Debounce(),
		MinLength: cfg.Search.MinQueryLength,
		OnChosen:  m.applySearch,
		Logger:    opts.Logger,
	})

	m.viewModel = viewmodels.NewViewModel(m.state, cfg, viewmodels.Stores{
		Catalog:  cat,
		Cart:     m.cart,
		Wishlist: m.wishlist,
		Busy:     m.busy,
		Notifier: m.notifier,
	})

	m.refreshProducts()
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateViewportHeight()

	case tea.KeyMsg:
		ctx := &input.ModelContext{
			State:     m.state,
			Quantity:  m.cart.Quantity,
			Selecting: m.autocomplete.Selecting(),
		}

		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}

		m.updateViewportHeight()
		return m, tea.Batch(cmds...)

	default:
		// Our own messages first, then cursor blink for the text input
		model, cmd := m.handleNonKeyboardMsg(msg)
		return model, tea.Batch(cmd, m.inputHandler.Update(msg))
	}

	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}

	m.viewModel.SetDimensions(m.width, m.height)

	mode := m.inputHandler.CurrentMode()
	if mode == inputtypes.ModeNormal {
		m.viewModel.SetInput("", "", "")
	} else {
		text := ""
		if ti := m.inputHandler.TextInput(); ti != nil {
			text = ti.View()
		}
		m.viewModel.SetInput(m.inputHandler.ModeName(), m.inputHandler.Prompt(), text)
	}
	m.viewModel.SetHelpView(m.help.View(m.activeKeys()))

	return m.renderer.Render(m.viewModel.BuildViewState())
}

// activeKeys picks the help bar bindings for the current input mode
func (m *Model) activeKeys() keyMap {
	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModeSearch:
		if m.autocomplete.Selecting() {
			return suggestionKeys
		}
		return searchKeys
	case inputtypes.ModeQuantity:
		return quantityKeys
	case inputtypes.ModePrice:
		return priceKeys
	case inputtypes.ModeShare:
		return shareKeys
	default:
		return normalKeys
	}
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	m.logger.Debug().Str("action", action.Type()).Msg("processing action")

	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.syncNavigatorState()
		switch a.Direction {
		case "up":
			m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.Move(-1)
		case "down":
			m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.Move(1)
		case "pageup":
			m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.Move(-m.navigator.PageSize())
		case "pagedown":
			m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.Move(m.navigator.PageSize())
		case "home":
			m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.SetSelectedIndex(0)
		case "end":
			m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.SetSelectedIndex(m.navigator.MaxIndex())
		}

	case inputtypes.ChangeModeAction:
		if a.Mode != inputtypes.ModeNormal {
			m.state.StatusMessage = ""
		}
		if a.Mode == inputtypes.ModeSearch {
			// The input is prefilled with the applied query, not the last typed text
			prefill, _ := a.Data.(string)
			m.autocomplete.Reset(prefill)
		}

	case inputtypes.UpdateTextAction:
		if m.inputHandler.CurrentMode() == inputtypes.ModeSearch && a.Text != m.autocomplete.Value() {
			m.autocomplete.Input(a.Text)
		}

	case inputtypes.SubmitTextAction:
		switch a.Mode {
		case inputtypes.ModeSearch:
			m.autocomplete.Blur()
			m.applySearch(a.Text)
		case inputtypes.ModeQuantity:
			m.applyQuantity(a.Text)
		case inputtypes.ModePrice:
			m.applyPriceRange(a.Text)
		}

	case inputtypes.CancelTextAction:
		if a.Mode == inputtypes.ModeSearch {
			m.autocomplete.Blur()
		}

	case inputtypes.FocusSuggestionsAction:
		// Focus leaves the input while the dropdown stays open for picking
		m.autocomplete.BeginSelection()
		m.autocomplete.Blur()
		m.state.MoveSuggestion(1)

	case inputtypes.SuggestionNavigateAction:
		if a.Direction == "up" {
			m.state.MoveSuggestion(-1)
		} else {
			m.state.MoveSuggestion(1)
		}

	case inputtypes.ChooseSuggestionAction:
		s, ok := m.state.HighlightedSuggestion()
		if !ok {
			m.autocomplete.EndSelection()
			m.applySearch(m.autocomplete.Value())
			return nil
		}
		m.publish(domain.SuggestionChosenEvent{Query: m.state.SuggestionQuery, Value: s.Text})
		m.autocomplete.Choose(s.Text)
		if s.Kind == suggest.KindProduct {
			m.selectProduct(s.ProductID)
		}

	case inputtypes.LeaveSuggestionsAction:
		m.autocomplete.EndSelection()
		m.state.SuggestionIndex = -1

	case inputtypes.ClearSearchAction:
		m.applySearch("")

	case inputtypes.AddToCartAction:
		if p, ok := m.state.SelectedProduct(); ok {
			m.addToCart(p)
		}

	case inputtypes.AdjustQuantityAction:
		if p, ok := m.state.SelectedProduct(); ok {
			m.setQuantity(p, m.cart.Quantity(p.ID)+a.Delta)
		}

	case inputtypes.RemoveFromCartAction:
		if p, ok := m.state.SelectedProduct(); ok {
			m.cart.Remove(p.ID)
			m.publish(domain.CartUpdatedEvent{ProductID: p.ID, Items: m.cart.Count()})
			m.notify(storefront.LevelInfo, fmt.Sprintf("Removed %s from cart", p.Name))
		}

	case inputtypes.ToggleWishlistAction:
		if p, ok := m.state.SelectedProduct(); ok {
			added := m.wishlist.Toggle(p.ID)
			m.publish(domain.WishlistToggledEvent{ProductID: p.ID, Added: added})
			if added {
				m.notify(storefront.LevelSuccess, "Added to wishlist!")
			} else {
				m.notify(storefront.LevelInfo, "Removed from wishlist!")
			}
		}

	case inputtypes.ShareAction:
		p, ok := m.state.SelectedProduct()
		if !ok {
			return nil
		}
		platform, err := storefront.ParsePlatform(a.Platform)
		if err != nil {
			m.notify(storefront.LevelError, err.Error())
			return nil
		}
		return m.shareProduct(p, platform)

	case inputtypes.CycleSortAction:
		m.state.Sort = m.state.Sort.Next()
		m.refreshProducts()
		m.state.StatusMessage = "Sorted by " + m.state.Sort.Label()

	case inputtypes.CycleCategoryAction:
		m.state.CategoryID = m.nextCategory()
		m.refreshProducts()
		if c, ok := m.catalog.Category(m.state.CategoryID); ok {
			m.state.StatusMessage = "Category: " + c.Name
		} else {
			m.state.StatusMessage = "All categories"
		}

	case inputtypes.OpenDetailsAction:
		if p, ok := m.state.SelectedProduct(); ok {
			return m.fetchPager(p.Name, m.productDetails(p))
		}

	case inputtypes.ToggleCartAction:
		m.state.ShowCart = !m.state.ShowCart

	case inputtypes.ToggleHelpAction:
		return m.fetchPager("help", m.helpRenderer.RenderHelpContent(m.config.Share.SiteTitle))

	case inputtypes.QuitAction:
		m.autocomplete.Close()
		return tea.Quit
	}

	return nil
}

// handleNonKeyboardMsg processes non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerFiredMsg:
		if f, ok := m.scheduler.(firer); ok && !f.Fire(msg.handle) {
			m.logger.Debug().Uint64("handle", uint64(msg.handle)).Msg("ignoring stale timer")
		}
		m.updateViewportHeight()
		return m, nil

	case shareResultMsg:
		m.publish(domain.ShareLinkCreatedEvent{
			ProductID: msg.productID,
			Platform:  string(msg.platform),
			URL:       msg.url,
			Copied:    msg.err == nil,
		})
		m.state.StatusMessage = msg.url
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Str("url", msg.url).Msg("clipboard write failed")
			m.notify(storefront.LevelWarning, "Could not copy the share link; it is shown below")
			return m, nil
		}
		m.notify(storefront.LevelSuccess, fmt.Sprintf("%s link for %s copied to clipboard", platformName(msg.platform), msg.name))
		return m, nil

	case pagerMsg:
		if msg.err != nil {
			m.logger.Error().Err(msg.err).Str("document", msg.title).Msg("pager failed")
			m.publish(domain.ErrorEvent{Message: "pager failed", Err: msg.err})
			m.notify(storefront.LevelError, "Could not open the pager")
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	default:
		return m, nil
	}
}

// applySearch filters the product list by query
func (m *Model) applySearch(query string) {
	query = strings.TrimSpace(query)
	previous := m.state.SearchQuery
	m.state.SearchQuery = query
	m.refreshProducts()

	switch {
	case query != "":
		m.state.StatusMessage = fmt.Sprintf("%d results for %q", len(m.state.Products), query)
		m.publish(domain.SearchSubmittedEvent{Query: query, Results: len(m.state.Products)})
	case previous != "":
		m.state.StatusMessage = "Search cleared"
	}
}

// applyPriceRange filters the product list by a typed price range
func (m *Model) applyPriceRange(text string) {
	r, err := catalog.ParsePriceRange(text)
	if err != nil {
		m.logger.Debug().Err(err).Str("input", text).Msg("rejected price range")
		m.notify(storefront.LevelWarning, "Enter a price range like 10-100")
		return
	}

	previous := m.state.Price
	m.state.Price = r
	m.refreshProducts()

	switch {
	case !r.IsZero():
		m.state.StatusMessage = fmt.Sprintf("%d products %s", len(m.state.Products), r.Label())
	case !previous.IsZero():
		m.state.StatusMessage = "Price filter cleared"
	}
}

// refreshProducts re-runs the catalog query for the current listing options
func (m *Model) refreshProducts() {
	m.state.SetProducts(m.catalog.Query(catalog.Filter{
		CategoryID: m.state.CategoryID,
		MinPrice:   m.state.Price.Min,
		MaxPrice:   m.state.Price.Max,
		Query:      m.state.SearchQuery,
		Sort:       m.state.Sort,
	}))
	m.ensureSelectedVisible()
}

// selectProduct moves the cursor to a product if it is listed
func (m *Model) selectProduct(id int) {
	for i, p := range m.state.Products {
		if p.ID == id {
			m.state.SelectedIndex = i
			m.ensureSelectedVisible()
			return
		}
	}
}

// nextCategory cycles through all categories, then back to "all"
func (m *Model) nextCategory() int {
	categories := m.catalog.Categories()
	if m.state.CategoryID == 0 {
		if len(categories) == 0 {
			return 0
		}
		return categories[0].ID
	}
	for i, c := range categories {
		if c.ID == m.state.CategoryID && i+1 < len(categories) {
			return categories[i+1].ID
		}
	}
	return 0
}

// addToCart adds one unit while the product's add button is not busy
func (m *Model) addToCart(p domain.Product) {
	key := storefront.AddToCartKey(p.ID)
	if !m.busy.Press(key) {
		return
	}

	qty, err := m.cart.Add(p.ID, 1)
	if err != nil {
		// A rejected add re-enables the button at once
		m.busy.Release(key)
		m.reportCartError(p, err)
		return
	}
	m.publish(domain.CartUpdatedEvent{ProductID: p.ID, Quantity: qty, Items: m.cart.Count()})
	m.notify(storefront.LevelSuccess, fmt.Sprintf("Added %s to cart!", p.Name))
}

// setQuantity replaces the cart quantity of p; zero removes the line
func (m *Model) setQuantity(p domain.Product, qty int) {
	before := m.cart.Quantity(p.ID)
	got, err := m.cart.SetQuantity(p.ID, qty)
	if err != nil {
		m.reportCartError(p, err)
		return
	}
	if got == before {
		return
	}
	m.publish(domain.CartUpdatedEvent{ProductID: p.ID, Quantity: got, Items: m.cart.Count()})
	if got == 0 {
		m.state.StatusMessage = fmt.Sprintf("Removed %s from cart", p.Name)
	} else {
		m.state.StatusMessage = fmt.Sprintf("%s × %d in cart", p.Name, got)
	}
}

// applyQuantity handles the quantity entry field
func (m *Model) applyQuantity(text string) {
	p, ok := m.state.SelectedProduct()
	if !ok {
		return
	}
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		m.notify(storefront.LevelWarning, "Please enter a valid quantity")
		return
	}
	m.setQuantity(p, storefront.ClampQuantity(n))
}

func (m *Model) reportCartError(p domain.Product, err error) {
	switch {
	case errors.Is(err, storefront.ErrInsufficientStock):
		m.notify(storefront.LevelWarning, fmt.Sprintf("Only %d of %s in stock", p.Stock, p.Name))
	default:
		m.logger.Error().Err(err).Int("product", p.ID).Msg("cart update failed")
		m.publish(domain.ErrorEvent{Message: "cart update failed", Err: err})
		m.notify(storefront.LevelError, "Could not update the cart")
	}
}

// shareProduct builds the share link and copies it off the event loop
func (m *Model) shareProduct(p domain.Product, platform storefront.Platform) tea.Cmd {
	pageURL := storefront.ProductURL(m.config.Share.BaseURL, p.ID)
	title := fmt.Sprintf("%s - %s", p.Name, m.config.Share.SiteTitle)

	link, err := storefront.ShareURL(platform, pageURL, title)
	if err != nil {
		m.notify(storefront.LevelError, err.Error())
		return nil
	}

	copyFn := m.clipboard
	return func() tea.Msg {
		return shareResultMsg{
			productID: p.ID,
			name:      p.Name,
			platform:  platform,
			url:       link,
			err:       copyFn(link),
		}
	}
}

func platformName(p storefront.Platform) string {
	switch p {
	case storefront.PlatformFacebook:
		return "Facebook"
	case storefront.PlatformTwitter:
		return "Twitter"
	case storefront.PlatformEmail:
		return "Email"
	}
	return string(p)
}

func (m *Model) productDetails(p domain.Product) string {
	d := ProductDetails{
		Product:    p,
		InCart:     m.cart.Quantity(p.ID),
		Wishlisted: m.wishlist.Contains(p.ID),
		PageURL:    storefront.ProductURL(m.config.Share.BaseURL, p.ID),
	}
	if c, ok := m.catalog.Category(p.CategoryID); ok {
		d.Category = c.Name
	}
	return m.helpRenderer.RenderProductDetails(d)
}

// fetchPager returns a command that shows content using the ov pager
func (m *Model) fetchPager(title, content string) tea.Cmd {
	program := m.program
	return func() tea.Msg {
		if program == nil {
			return pagerMsg{title: title, err: errNoProgram}
		}

		// Send pause message to stop rendering
		program.Send(pauseRenderingMsg{})

		err := m.pager.Show(content)

		// Send resume message to restart rendering
		program.Send(resumeRenderingMsg{})

		return pagerMsg{title: title, err: err}
	}
}

// notify posts a toast and mirrors it on the bus
func (m *Model) notify(level storefront.Level, message string) {
	m.notifier.Post(level, message)
	m.publish(domain.NotificationPostedEvent{Level: string(level), Message: message})
}

func (m *Model) publish(event domain.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}

// syncNavigatorState updates the navigator with current model state
func (m *Model) syncNavigatorState() {
	m.navigator.UpdateState(
		m.state.SelectedIndex,
		m.state.ViewportOffset,
		m.state.ViewportHeight,
		len(m.state.Products),
	)
}

// ensureSelectedVisible ensures the selected item is visible in the viewport
func (m *Model) ensureSelectedVisible() {
	m.syncNavigatorState()
	m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.SetSelectedIndex(m.state.SelectedIndex)
}

// updateViewportHeight calculates the available height for the product list
func (m *Model) updateViewportHeight() {
	if m.height == 0 {
		return
	}

	// Title (2 lines), help (1 line), padding (2 lines) and the gap above the footer
	reservedLines := 6
	reservedLines += len(m.notifier.Active())
	if m.state.StatusMessage != "" {
		reservedLines++
	}
	if m.inputHandler.CurrentMode() != inputtypes.ModeNormal {
		reservedLines += 2
	}
	if m.inputHandler.CurrentMode() == inputtypes.ModeSearch && m.state.SuggestionsVisible {
		reservedLines += len(m.state.Suggestions) + 3 // dropdown border and spacing
	}
	if m.config.UISettings.BackToTopThreshold > 0 {
		reservedLines++
	}

	m.state.ViewportHeight = m.height - reservedLines
	if m.state.ViewportHeight < 1 {
		m.state.ViewportHeight = 1
	}

	// Ensure viewport offset is still valid
	m.ensureSelectedVisible()
}
