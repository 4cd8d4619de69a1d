package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/sdahlbac/colormixer/colormix"
)

// Key bindings
const (
	KeyQuit     = "q"
	KeyCtrlC    = "ctrl+c"
	KeyEnter    = "enter"
	KeySpace    = " "
	KeyBack     = "esc"
	KeyTab      = "tab"
	KeyLeft     = "left"
	KeyRight    = "right"
	KeyVimLeft  = "h"
	KeyVimRight = "l"
	KeyFirst    = "1"
	KeySecond   = "2"
	KeyLanguage = "t"
)

// Global layout state
var (
	// Dimensions are stored globally for simplicity in this small app
	width, height int
)

// AppState represents the current state of the application
type AppState int

const (
	StateMixing AppState = iota
	StatePickingFirst
	StatePickingSecond
)

// Slot identifies one of the two input swatches.
type Slot int

const (
	SlotFirst Slot = iota
	SlotSecond
)

// Other returns the opposite slot.
func (s Slot) Other() Slot {
	if s == SlotFirst {
		return SlotSecond
	}
	return SlotFirst
}

// String implements fmt.Stringer.
func (s Slot) String() string {
	if s == SlotSecond {
		return "second"
	}
	return "first"
}

// pickingState maps a slot to the state that shows its picker.
func pickingState(s Slot) AppState {
	if s == SlotSecond {
		return StatePickingSecond
	}
	return StatePickingFirst
}

// App represents the main application state. It owns every piece of mutable
// view state; colormix is only ever called with explicit values.
type App struct {
	state  AppState
	focus  Slot
	lang   colormix.Language
	first  colormix.Color
	second colormix.Color
	picker *PickerPage
	log    *logrus.Logger
}

// Message types for tea application

// ColorSelectedMsg is sent when an entry was chosen in a picker sheet
type ColorSelectedMsg struct {
	Slot  Slot
	Entry colormix.Entry
}

// PickerClosedMsg is sent when a picker sheet is dismissed without a choice
type PickerClosedMsg struct{}

// LanguageToggledMsg is sent to switch label language
type LanguageToggledMsg struct{}

// OpenPickerMsg is sent to present the picker sheet for a slot
type OpenPickerMsg struct {
	Slot Slot
}

// NewApp creates a new application instance. A nil logger discards output.
func NewApp(settings Settings, logger *logrus.Logger) *App {
	if logger == nil {
		logger = discardLogger()
	}

	logger.WithFields(logrus.Fields{
		"language": settings.Language.String(),
		"first":    settings.First.Hex(),
		"second":   settings.Second.Hex(),
	}).Info("mixer started")

	return &App{
		state:  StateMixing,
		focus:  SlotFirst,
		lang:   settings.Language,
		first:  settings.First,
		second: settings.Second,
		log:    logger,
	}
}

// Selection returns the color currently held by slot.
func (app *App) Selection(slot Slot) colormix.Color {
	if slot == SlotSecond {
		return app.second
	}
	return app.first
}

// Mixed returns the blend shown in the result swatch.
func (app *App) Mixed() colormix.Color {
	return colormix.Midpoint(app.first, app.second)
}

// Init implements tea.Model interface
func (app *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model interface
func (app *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return app.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		return app.handleWindowSizeMsg(msg)
	case OpenPickerMsg:
		return app.handleOpenPicker(msg)
	case ColorSelectedMsg:
		return app.handleColorSelected(msg)
	case PickerClosedMsg:
		return app.handlePickerClosed(msg)
	case LanguageToggledMsg:
		return app.handleLanguageToggled(msg)
	}

	return app.updateSubComponents(msg)
}

// handleKeyMsg processes keyboard input
func (app *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == KeyCtrlC {
		app.log.Info("quit")
		return app, tea.Quit
	}

	switch app.state {
	case StateMixing:
		switch key {
		case KeyQuit:
			app.log.Info("quit")
			return app, tea.Quit
		case KeyTab:
			app.focus = app.focus.Other()
		case KeyLeft, KeyVimLeft:
			app.focus = SlotFirst
		case KeyRight, KeyVimRight:
			app.focus = SlotSecond
		case KeyEnter, KeySpace:
			return app, openPicker(app.focus)
		case KeyFirst:
			return app, openPicker(SlotFirst)
		case KeySecond:
			return app, openPicker(SlotSecond)
		case KeyLanguage:
			return app, func() tea.Msg { return LanguageToggledMsg{} }
		}
		return app, nil
	case StatePickingFirst, StatePickingSecond:
		return app.updateSubComponents(msg)
	}

	return app, nil
}

func openPicker(slot Slot) tea.Cmd {
	return func() tea.Msg { return OpenPickerMsg{Slot: slot} }
}

// handleWindowSizeMsg processes window resize events
func (app *App) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	width, height = msg.Width, msg.Height
	return app, nil
}

// handleOpenPicker presents the sheet for a slot
func (app *App) handleOpenPicker(msg OpenPickerMsg) (tea.Model, tea.Cmd) {
	app.focus = msg.Slot
	app.picker = NewPickerPage(msg.Slot, app.Selection(msg.Slot), app.lang)
	app.state = pickingState(msg.Slot)
	return app, app.picker.Init()
}

// handleColorSelected stores the chosen color and returns to the mixer
func (app *App) handleColorSelected(msg ColorSelectedMsg) (tea.Model, tea.Cmd) {
	if msg.Slot == SlotSecond {
		app.second = msg.Entry.Color
	} else {
		app.first = msg.Entry.Color
	}

	app.log.WithFields(logrus.Fields{
		"slot":  msg.Slot.String(),
		"color": msg.Entry.English,
		"mixed": app.Mixed().Hex(),
	}).Debug("color selected")

	return app.closePicker()
}

// handlePickerClosed returns to the mixer without changing anything
func (app *App) handlePickerClosed(msg PickerClosedMsg) (tea.Model, tea.Cmd) {
	return app.closePicker()
}

func (app *App) closePicker() (tea.Model, tea.Cmd) {
	app.picker = nil
	app.state = StateMixing
	return app, nil
}

// handleLanguageToggled flips the label language
func (app *App) handleLanguageToggled(msg LanguageToggledMsg) (tea.Model, tea.Cmd) {
	app.lang = app.lang.Toggle()
	app.log.WithField("language", app.lang.String()).Debug("language toggled")
	return app, nil
}

// updateSubComponents updates child components
func (app *App) updateSubComponents(msg tea.Msg) (tea.Model, tea.Cmd) {
	if app.picker == nil {
		return app, nil
	}

	var cmd tea.Cmd
	app.picker, cmd = app.picker.Update(msg)
	return app, cmd
}

// View implements tea.Model interface
func (app *App) View() string {
	switch app.state {
	case StateMixing:
		return app.mixingView()
	case StatePickingFirst, StatePickingSecond:
		return app.pickerView()
	default:
		return "Unknown state"
	}
}

// mixingView renders the two inputs and their blend
func (app *App) mixingView() string {
	text := textFor(app.lang)

	badge := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.NewStyle().Foreground(LanguageBadge).Bold(true).Render(app.lang.Label()),
		lipgloss.NewStyle().Foreground(Hint).Render("  ("+text.Switch+")"),
	)

	operator := lipgloss.NewStyle().
		Foreground(Operator).
		Bold(true).
		Padding(0, 2)

	mixed := app.Mixed()
	row := lipgloss.JoinHorizontal(
		lipgloss.Center,
		captionedSwatch(colormix.NameFor(app.first, app.lang), app.first, app.borderFor(SlotFirst)),
		operator.Render("+"),
		captionedSwatch(colormix.NameFor(app.second, app.lang), app.second, app.borderFor(SlotSecond)),
		operator.Render("="),
		captionedSwatch(mixed.Hex(), mixed, ResultBorder),
	)

	help := lipgloss.NewStyle().Foreground(Hint).Render(text.MainHelp)

	return centered(lipgloss.JoinVertical(lipgloss.Center, badge, "", row, "", help))
}

func (app *App) borderFor(slot Slot) lipgloss.Color {
	if app.focus == slot {
		return ActiveBorder
	}
	return InactiveBorder
}

// pickerView renders the open sheet
func (app *App) pickerView() string {
	if app.picker != nil {
		return app.picker.View()
	}
	return ""
}

// centered places content in the middle of the window
func centered(content string) string {
	return lipgloss.NewStyle().
		Height(height).
		Width(width).
		AlignVertical(lipgloss.Center).
		AlignHorizontal(lipgloss.Center).
		Render(content)
}
