package tui

import "github.com/charmbracelet/lipgloss"

// Color palette matching the fatih/color usage in the command layer.
var (
	ColorGreen  = lipgloss.AdaptiveColor{Light: "#00AF00", Dark: "#00D700"}
	ColorCyan   = lipgloss.AdaptiveColor{Light: "#00AFAF", Dark: "#00D7D7"}
	ColorWhite  = lipgloss.AdaptiveColor{Light: "#262626", Dark: "#FFFFFF"}
	ColorGray   = lipgloss.AdaptiveColor{Light: "#767676", Dark: "#808080"}
	ColorYellow = lipgloss.AdaptiveColor{Light: "#D7AF00", Dark: "#FFD700"}
	ColorRed    = lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}
)

// Reusable styles.
var (
	// StyleNormal is the base style for regular text.
	StyleNormal = lipgloss.NewStyle().Foreground(ColorWhite)

	// StyleHighlight is for the selected menu or list row.
	StyleHighlight = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	// StyleAvailable marks books with copies on the shelf.
	StyleAvailable = lipgloss.NewStyle().Foreground(ColorGreen)

	// StyleReference marks reference-only books.
	StyleReference = lipgloss.NewStyle().Foreground(ColorRed)

	// StyleGenre is for genre labels in book rows.
	StyleGenre = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleHelp is for help text and hints.
	StyleHelp = lipgloss.NewStyle().Foreground(ColorGray)

	// StyleHeader is for section headers.
	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true)

	// StyleBorder is for the hub's framed box.
	StyleBorder = lipgloss.NewStyle().
			Foreground(ColorGray).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorGray)
)
