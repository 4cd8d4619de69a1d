package main

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha colors used for the mixer's chrome. Swatches themselves
// are filled with the palette colors, never with these.
// Reference: https://github.com/catppuccin/catppuccin/tree/main
const (
	Rosewater = lipgloss.Color("#f5e0dc")
	Mauve     = lipgloss.Color("#cba6f7")
	Peach     = lipgloss.Color("#fab387")
	Lavender  = lipgloss.Color("#b4befe")

	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")

	Overlay0 = lipgloss.Color("#6c7086")
	Surface1 = lipgloss.Color("#45475a")
	Mantle   = lipgloss.Color("#181825")

	// Semantic colors for the mixer view
	ActiveBorder   = Lavender
	InactiveBorder = Overlay0
	ResultBorder   = Rosewater
	Caption        = Text
	Hint           = Subtext0
	Operator       = Peach
	LanguageBadge  = Mauve
)
