package main

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/sdahlbac/colormixer/colormix"
)

func TestColorConstants(t *testing.T) {
	colorTests := map[string]lipgloss.Color{
		"Rosewater":      Rosewater,
		"Mauve":          Mauve,
		"Peach":          Peach,
		"Lavender":       Lavender,
		"Text":           Text,
		"Subtext0":       Subtext0,
		"Overlay0":       Overlay0,
		"Surface1":       Surface1,
		"Mantle":         Mantle,
		"ActiveBorder":   ActiveBorder,
		"InactiveBorder": InactiveBorder,
		"ResultBorder":   ResultBorder,
		"Caption":        Caption,
		"Hint":           Hint,
		"Operator":       Operator,
		"LanguageBadge":  LanguageBadge,
	}

	for name, color := range colorTests {
		s := string(color)
		if len(s) != 7 || s[0] != '#' {
			t.Errorf("Color %s should be a #rrggbb code, got %q", name, s)
		}
	}
}

func TestSemanticColorAssignments(t *testing.T) {
	if ActiveBorder != Lavender {
		t.Errorf("Expected ActiveBorder to be Lavender, got %s", string(ActiveBorder))
	}
	if InactiveBorder != Overlay0 {
		t.Errorf("Expected InactiveBorder to be Overlay0, got %s", string(InactiveBorder))
	}
	if ActiveBorder == InactiveBorder {
		t.Error("Focused and unfocused swatches must be distinguishable")
	}
}

func TestSwatch(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Rendering a swatch panicked: %v", r)
		}
	}()

	out := captionedSwatch("Red", colormix.Red, ActiveBorder)
	if lipgloss.Height(out) != swatchHeight+3 {
		t.Errorf("Expected caption plus framed swatch to be %d lines, got %d", swatchHeight+3, lipgloss.Height(out))
	}
	if lipgloss.Width(out) != swatchWidth+2 {
		t.Errorf("Expected framed swatch width %d, got %d", swatchWidth+2, lipgloss.Width(out))
	}
}
