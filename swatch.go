package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/sdahlbac/colormixer/colormix"
)

// Swatch dimensions in cells. Terminal cells are roughly twice as tall as
// wide, so this renders close to a square.
const (
	swatchWidth  = 16
	swatchHeight = 7
)

var (
	swatchFrame = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(InactiveBorder)

	captionStyle = lipgloss.NewStyle().
			Foreground(Caption).
			Bold(true).
			Width(swatchWidth + 2).
			Align(lipgloss.Center)
)

// swatch renders a filled block of c framed with the given border color.
func swatch(c colormix.Color, border lipgloss.Color) string {
	row := strings.Repeat(" ", swatchWidth)
	block := strings.TrimSuffix(strings.Repeat(row+"\n", swatchHeight), "\n")
	fill := lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Render(block)
	return swatchFrame.BorderForeground(border).Render(fill)
}

// captionedSwatch stacks a caption above a swatch.
func captionedSwatch(caption string, c colormix.Color, border lipgloss.Color) string {
	return lipgloss.JoinVertical(
		lipgloss.Center,
		captionStyle.Render(caption),
		swatch(c, border),
	)
}

// termSwatch renders a short background-colored block for plain CLI output.
// Profiles without color support get blank padding.
func termSwatch(out *termenv.Output, c colormix.Color) string {
	return out.String("    ").Background(out.Color(c.Hex())).String()
}
