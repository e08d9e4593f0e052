package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchSubmitted    EventType = "SearchSubmitted"
	EventSuggestionsShown   EventType = "SuggestionsShown"
	EventSuggestionChosen   EventType = "SuggestionChosen"
	EventCartUpdated        EventType = "CartUpdated"
	EventWishlistToggled    EventType = "WishlistToggled"
	EventShareLinkCreated   EventType = "ShareLinkCreated"
	EventNotificationPosted EventType = "NotificationPosted"
	EventConfigLoaded       EventType = "ConfigLoaded"
	EventConfigSaved        EventType = "ConfigSaved"
	EventError              EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchSubmittedEvent is emitted when a search query is applied to the product list
type SearchSubmittedEvent struct {
	Query   string
	Results int
}

func (e SearchSubmittedEvent) Type() EventType { return EventSearchSubmitted }

// SuggestionsShownEvent is emitted when the suggestion dropdown is rendered for a settled query
type SuggestionsShownEvent struct {
	Query string
	Count int
}

func (e SuggestionsShownEvent) Type() EventType { return EventSuggestionsShown }

// SuggestionChosenEvent is emitted when a suggestion is picked from the dropdown
type SuggestionChosenEvent struct {
	Query string
	Value string
}

func (e SuggestionChosenEvent) Type() EventType { return EventSuggestionChosen }

// CartUpdatedEvent is emitted after any cart mutation
type CartUpdatedEvent struct {
	ProductID int
	Quantity  int // resulting quantity, 0 when the line was removed
	Items     int // total units in the cart
}

func (e CartUpdatedEvent) Type() EventType { return EventCartUpdated }

// WishlistToggledEvent is emitted when a product is added to or removed from the wishlist
type WishlistToggledEvent struct {
	ProductID int
	Added     bool
}

func (e WishlistToggledEvent) Type() EventType { return EventWishlistToggled }

// ShareLinkCreatedEvent is emitted when a share URL is built for a product
type ShareLinkCreatedEvent struct {
	ProductID int
	Platform  string
	URL       string
	Copied    bool
}

func (e ShareLinkCreatedEvent) Type() EventType { return EventShareLinkCreated }

// NotificationPostedEvent mirrors a user-visible notification
type NotificationPostedEvent struct {
	Level   string
	Message string
}

func (e NotificationPostedEvent) Type() EventType { return EventNotificationPosted }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path    string
	Created bool // true when defaults were written because no file existed
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
