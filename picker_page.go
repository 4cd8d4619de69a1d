package main

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sdahlbac/colormixer/colormix"
)

// pickerWidth and pickerHeight bound the sheet's list.
const (
	pickerWidth  = 40
	pickerHeight = 22
)

// paletteItem adapts a palette entry to list.Item in a fixed language.
type paletteItem struct {
	entry colormix.Entry
	lang  colormix.Language
}

// Title implements list.DefaultItem
func (i paletteItem) Title() string {
	return i.entry.Name(i.lang)
}

// Description implements list.DefaultItem
func (i paletteItem) Description() string {
	return i.entry.Color.Hex()
}

// FilterValue implements list.Item
func (i paletteItem) FilterValue() string {
	return i.entry.English + "/" + i.entry.Russian
}

var _ list.DefaultItem = paletteItem{}

// PickerPage is the sheet that lists the palette for one slot.
type PickerPage struct {
	slot Slot
	lang colormix.Language
	list list.Model
}

// NewPickerPage opens a sheet for slot with the row for current highlighted.
func NewPickerPage(slot Slot, current colormix.Color, lang colormix.Language) *PickerPage {
	entries := colormix.Entries()
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = paletteItem{entry: e, lang: lang}
	}

	l := list.New(items, newPickerDelegate(), pickerWidth, pickerHeight)
	l.Title = textFor(lang).ChooseColor
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.KeyMap.Quit.SetEnabled(false)
	l.Styles.Title = l.Styles.Title.
		Foreground(Text).
		Background(Mantle)

	if i := colormix.IndexOf(current); i >= 0 {
		l.Select(i)
	}

	return &PickerPage{
		slot: slot,
		lang: lang,
		list: l,
	}
}

// newPickerDelegate creates a styled list delegate
func newPickerDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = d.Styles.SelectedTitle.
		Foreground(Rosewater).
		BorderLeftForeground(ActiveBorder)
	d.Styles.SelectedDesc = d.Styles.SelectedTitle
	d.Styles.NormalTitle = d.Styles.NormalTitle.Foreground(Text)
	d.Styles.NormalDesc = d.Styles.NormalTitle.Foreground(Hint)
	return d
}

// Init initializes the picker page
func (p *PickerPage) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker page. Enter commits the highlighted
// entry and esc dismisses the sheet; both are reported to the App as messages.
func (p *PickerPage) Update(msg tea.Msg) (*PickerPage, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case KeyEnter:
			entry, ok := p.Selected()
			if !ok {
				return p, nil
			}
			slot := p.slot
			return p, func() tea.Msg { return ColorSelectedMsg{Slot: slot, Entry: entry} }
		case KeyBack:
			return p, func() tea.Msg { return PickerClosedMsg{} }
		}
	}

	var cmd tea.Cmd
	p.list, cmd = p.list.Update(msg)
	return p, cmd
}

// Selected returns the highlighted palette entry.
func (p *PickerPage) Selected() (colormix.Entry, bool) {
	item, ok := p.list.SelectedItem().(paletteItem)
	if !ok {
		return colormix.Entry{}, false
	}
	return item.entry, true
}

// View renders the picker page
func (p *PickerPage) View() string {
	heading := lipgloss.NewStyle().
		Foreground(Caption).
		Bold(true).
		MarginBottom(1).
		Render(pickerTitle(p.slot, p.lang))

	help := lipgloss.NewStyle().
		Foreground(Hint).
		MarginTop(1).
		Render(textFor(p.lang).PickerHelp)

	sheet := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ActiveBorder).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, heading, p.list.View(), help))

	return centered(sheet)
}
