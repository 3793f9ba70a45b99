package cli

import "github.com/charmbracelet/lipgloss"

// Gruvbox-inspired color palette.
var (
	colorGreen  = lipgloss.Color("#8ec07c")
	colorYellow = lipgloss.Color("#fabd2f")
	colorRed    = lipgloss.Color("#fb4934")
	colorDim    = lipgloss.Color("#928374")
	colorFg     = lipgloss.Color("#ebdbb2")
	colorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	styleHeader = lipgloss.NewStyle().Foreground(colorHeader).Bold(true)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
	styleDone   = lipgloss.NewStyle().Foreground(colorDim).Strikethrough(true)
	styleActive = lipgloss.NewStyle().Foreground(colorFg)
	styleCursor = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	styleGreen  = lipgloss.NewStyle().Foreground(colorGreen)
	styleLabel  = lipgloss.NewStyle().Foreground(colorFg).Bold(true)
	styleError  = lipgloss.NewStyle().Foreground(colorRed)
)
