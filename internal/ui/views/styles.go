package views

import (
	"github.com/charmbracelet/lipgloss"

	"holoholo/internal/storefront"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Filter        lipgloss.Style
	Prompt        lipgloss.Style
	Dropdown      lipgloss.Style
	DropdownItem  lipgloss.Style
	DropdownHL    lipgloss.Style
	DropdownMatch lipgloss.Style
	CartBox       lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	Highlight     lipgloss.Style
	Price         lipgloss.Style
	Stars         lipgloss.Style
	Wishlist      lipgloss.Style
	Busy          lipgloss.Style
	InCart        lipgloss.Style
	OutOfStock    lipgloss.Style
	BackToTop     lipgloss.Style
	ToastInfo     lipgloss.Style
	ToastSuccess  lipgloss.Style
	ToastWarning  lipgloss.Style
	ToastError    lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	toast := lipgloss.NewStyle().Padding(0, 1).Bold(true)

	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Filter: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Dropdown: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		DropdownItem:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		DropdownHL:    lipgloss.NewStyle().Background(lipgloss.Color("238")).Foreground(lipgloss.Color("226")),
		DropdownMatch: lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		CartBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("99")),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2).
			MaxHeight(100), // Will be dynamically adjusted
		Scroll:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Price:        lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Stars:        lipgloss.NewStyle().Foreground(lipgloss.Color("220")), // gold
		Wishlist:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Busy:         lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Italic(true),
		InCart:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")), // cyan
		OutOfStock:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		BackToTop:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Italic(true),
		ToastInfo:    toast.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("39")),
		ToastSuccess: toast.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("78")),
		ToastWarning: toast.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214")),
		ToastError:   toast.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("203")),
	}
}

// ToastStyle returns the style for a notification level
func (s *Styles) ToastStyle(level storefront.Level) lipgloss.Style {
	switch level {
	case storefront.LevelSuccess:
		return s.ToastSuccess
	case storefront.LevelWarning:
		return s.ToastWarning
	case storefront.LevelError:
		return s.ToastError
	default:
		return s.ToastInfo
	}
}
