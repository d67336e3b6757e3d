package tui

// MinTerminalWidth is the minimum supported terminal width.
const MinTerminalWidth = 40

// MinTerminalHeight is the minimum supported terminal height.
const MinTerminalHeight = 10

// Panel heights (number of lines)
const (
	// HeaderHeight is the height of the header panel (brand + theme state).
	HeaderHeight = 1

	// TabBarHeight is the height of the tab bar below the header.
	TabBarHeight = 1

	// HelpBarHeight is the height of the help bar at the bottom.
	HelpBarHeight = 1

	// SeparatorHeight is the total height of the rules around the body.
	SeparatorHeight = 2
)

// Layout represents the calculated dimensions for each UI region.
type Layout struct {
	// Total terminal dimensions
	Width  int
	Height int

	// BodyHeight is the height available to the active tab's pane.
	BodyHeight int

	// TooSmall indicates the terminal is below minimum size.
	TooSmall bool

	// TooSmallMessage is shown when the terminal is too small.
	TooSmallMessage string
}

// CalculateLayout computes the layout based on terminal dimensions.
func CalculateLayout(width, height int) Layout {
	layout := Layout{Width: width, Height: height}

	if width < MinTerminalWidth {
		layout.TooSmall = true
		layout.TooSmallMessage = "Terminal too narrow. Minimum width: 40 columns."
		return layout
	}
	if height < MinTerminalHeight {
		layout.TooSmall = true
		layout.TooSmallMessage = "Terminal too short. Minimum height: 10 rows."
		return layout
	}

	layout.BodyHeight = height - HeaderHeight - TabBarHeight - HelpBarHeight - SeparatorHeight
	if layout.BodyHeight < 2 {
		layout.TooSmall = true
		layout.TooSmallMessage = "Terminal too short to display UI."
	}
	return layout
}
