package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sdahlbac/colormixer/colormix"
)

// Test a full session: resize, switch to Russian, repick both colors, quit.
func TestApplicationFlow(t *testing.T) {
	app := NewApp(defaultSettings(), nil)

	steps := []tea.Msg{
		tea.WindowSizeMsg{Width: 120, Height: 40},
		runeKey('t'),
		tea.KeyMsg{Type: tea.KeyEnter}, // first picker, Red highlighted
		tea.KeyMsg{Type: tea.KeyDown},  // Green
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyEnter}, // second picker, Blue highlighted
		tea.KeyMsg{Type: tea.KeyUp},    // Green
		tea.KeyMsg{Type: tea.KeyUp},    // Red
		tea.KeyMsg{Type: tea.KeyEnter},
	}

	for _, msg := range steps {
		app, _ = send(t, app, msg)
	}

	if app.state != StateMixing {
		t.Fatalf("Expected mixing state, got %v", app.state)
	}
	if app.first != colormix.Green || app.second != colormix.Red {
		t.Errorf("Expected Green + Red, got %v + %v", app.first, app.second)
	}
	if got := app.Mixed(); got != colormix.RGBA(0.5, 0.5, 0, 1) {
		t.Errorf("Expected olive blend, got %v", got)
	}

	view := app.View()
	for _, want := range []string{"Зелёный", "Красный", "#808000"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected view to contain %q", want)
		}
	}

	_, cmd := send(t, app, runeKey('q'))
	if cmd == nil {
		t.Fatal("Expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.QuitMsg")
	}
}

// Test the complete model update cycle with messages the runtime may deliver.
func TestModelUpdateCycle(t *testing.T) {
	app := NewApp(defaultSettings(), nil)
	purple, _ := colormix.ByName("Purple")

	messages := []tea.Msg{
		tea.WindowSizeMsg{Width: 80, Height: 24},
		OpenPickerMsg{Slot: SlotSecond},
		ColorSelectedMsg{Slot: SlotSecond, Entry: purple},
		LanguageToggledMsg{},
		OpenPickerMsg{Slot: SlotFirst},
		PickerClosedMsg{},
	}

	for i, msg := range messages {
		updatedModel, _ := app.Update(msg)
		typed, ok := updatedModel.(*App)
		if !ok {
			t.Fatalf("Error at message %d: expected *App", i)
		}
		app = typed
	}

	if app.state != StateMixing || app.picker != nil {
		t.Error("Expected the picker to be closed at the end")
	}
	if app.second != colormix.Purple {
		t.Errorf("Expected second to be Purple, got %v", app.second)
	}
	if app.lang != colormix.Russian {
		t.Error("Expected Russian labels at the end")
	}
	if app.View() == "" {
		t.Error("Expected non-empty view at the end of update cycle")
	}
}

// Unknown messages must pass through harmlessly in every state.
func TestUnknownMessages(t *testing.T) {
	type unrelated struct{}

	app := NewApp(defaultSettings(), nil)
	if _, cmd := app.Update(unrelated{}); cmd != nil {
		t.Error("Expected no command for an unrelated message while mixing")
	}

	app, _ = send(t, app, runeKey('1'))
	updated, _ := app.Update(unrelated{})
	if updated.(*App).state != StatePickingFirst {
		t.Error("Expected picker to stay open after an unrelated message")
	}
}

func BenchmarkModelUpdate(b *testing.B) {
	app := NewApp(defaultSettings(), nil)
	msg := tea.WindowSizeMsg{Width: 80, Height: 24}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		app.Update(msg)
	}
}
