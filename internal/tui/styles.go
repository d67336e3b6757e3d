// Package tui provides the terminal user interface for keyflow using bubbletea.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/keyflow/keyflow/internal/theme"
)

// Dark palette (for dark terminal backgrounds)
const (
	ColourTeal      = lipgloss.Color("43")  // Headers, active states, borders
	ColourTealDim   = lipgloss.Color("30")  // Inactive borders, separators
	ColourTealLight = lipgloss.Color("86")  // Body text, values
	ColourTealFaded = lipgloss.Color("66")  // Labels, secondary text
	ColourBase      = lipgloss.Color("0")   // Terminal background
	ColourAccent    = lipgloss.Color("213") // Highlights
)

// Light palette (for light terminal backgrounds)
// Uses darker, more saturated colours for visibility on light backgrounds.
const (
	ColourTealDark      = lipgloss.Color("23")
	ColourTealDarkDim   = lipgloss.Color("66")
	ColourTealDarkMid   = lipgloss.Color("29")
	ColourTealDarkFaded = lipgloss.Color("60")
	ColourBaseLight     = lipgloss.Color("231")
	ColourAccentDark    = lipgloss.Color("127")
)

// Status indicator icons
const (
	IconBrand = "◆"
	IconTheme = "◐"
)

// Styles contains all lipgloss styles for the UI.
type Styles struct {
	// Frame and borders
	Border    lipgloss.Style
	BorderDim lipgloss.Style

	// Text hierarchy
	Header lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style

	// Tab bar
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	TabBar      lipgloss.Style

	// Body
	Body   lipgloss.Style
	Accent lipgloss.Style

	// Special areas
	TooSmallMessage lipgloss.Style

	// Help bar
	HelpBar lipgloss.Style
	HelpKey lipgloss.Style

	// Brand
	Brand lipgloss.Style
}

// DarkStyles returns the teal theme optimised for dark terminal backgrounds.
func DarkStyles() Styles {
	return Styles{
		Border:    lipgloss.NewStyle().Foreground(ColourTeal),
		BorderDim: lipgloss.NewStyle().Foreground(ColourTealDim),

		Header: lipgloss.NewStyle().Foreground(ColourTeal).Bold(true),
		Label:  lipgloss.NewStyle().Foreground(ColourTealFaded),
		Value:  lipgloss.NewStyle().Foreground(ColourTealLight),

		// Tab bar - active tab with teal background
		TabActive:   lipgloss.NewStyle().Foreground(ColourBase).Background(ColourTeal).Bold(true).Padding(0, 1),
		TabInactive: lipgloss.NewStyle().Foreground(ColourTealFaded).Padding(0, 1),
		TabBar:      lipgloss.NewStyle().Foreground(ColourTealDim),

		Body:   lipgloss.NewStyle().Foreground(ColourTealLight),
		Accent: lipgloss.NewStyle().Foreground(ColourAccent).Bold(true),

		TooSmallMessage: lipgloss.NewStyle().Foreground(ColourAccent).Bold(true),

		HelpBar: lipgloss.NewStyle().Foreground(ColourTealDim),
		HelpKey: lipgloss.NewStyle().Foreground(ColourTealFaded),

		Brand: lipgloss.NewStyle().Foreground(ColourTeal).Bold(true),
	}
}

// LightStyles returns the teal theme optimised for light terminal backgrounds.
// Uses darker, more saturated colours for better contrast on light backgrounds.
func LightStyles() Styles {
	return Styles{
		Border:    lipgloss.NewStyle().Foreground(ColourTealDark),
		BorderDim: lipgloss.NewStyle().Foreground(ColourTealDarkDim),

		Header: lipgloss.NewStyle().Foreground(ColourTealDark).Bold(true),
		Label:  lipgloss.NewStyle().Foreground(ColourTealDarkFaded),
		Value:  lipgloss.NewStyle().Foreground(ColourTealDarkMid),

		TabActive:   lipgloss.NewStyle().Foreground(ColourBaseLight).Background(ColourTealDark).Bold(true).Padding(0, 1),
		TabInactive: lipgloss.NewStyle().Foreground(ColourTealDarkFaded).Padding(0, 1),
		TabBar:      lipgloss.NewStyle().Foreground(ColourTealDarkDim),

		Body:   lipgloss.NewStyle().Foreground(ColourTealDarkMid),
		Accent: lipgloss.NewStyle().Foreground(ColourAccentDark).Bold(true),

		TooSmallMessage: lipgloss.NewStyle().Foreground(ColourAccentDark).Bold(true),

		HelpBar: lipgloss.NewStyle().Foreground(ColourTealDarkDim),
		HelpKey: lipgloss.NewStyle().Foreground(ColourTealDarkFaded),

		Brand: lipgloss.NewStyle().Foreground(ColourTealDark).Bold(true),
	}
}

// StylesFor returns the Styles for the given resolved scheme.
// Falls back to dark styles for unknown schemes.
func StylesFor(scheme theme.Scheme) Styles {
	switch scheme {
	case theme.SchemeLight:
		return LightStyles()
	default:
		return DarkStyles()
	}
}
