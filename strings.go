package main

import "github.com/sdahlbac/colormixer/colormix"

// uiText holds every caption the view shows, in one language.
type uiText struct {
	PickFirst   string
	PickSecond  string
	ChooseColor string
	Switch      string
	MainHelp    string
	PickerHelp  string
}

var uiTexts = map[colormix.Language]uiText{
	colormix.English: {
		PickFirst:   "Pick a first color",
		PickSecond:  "Pick a second color",
		ChooseColor: "Please choose a color",
		Switch:      "press t for Русский",
		MainHelp:    "tab/←/→ focus • enter pick • 1/2 pick first/second • t language • q quit",
		PickerHelp:  "↑/↓ move • enter choose • esc back",
	},
	colormix.Russian: {
		PickFirst:   "Выберите первый цвет",
		PickSecond:  "Выберите второй цвет",
		ChooseColor: "Выберите цвет",
		Switch:      "нажмите t для English",
		MainHelp:    "tab/←/→ фокус • enter выбор • 1/2 первый/второй • t язык • q выход",
		PickerHelp:  "↑/↓ перемещение • enter выбрать • esc назад",
	},
}

// textFor returns the captions for lang.
func textFor(lang colormix.Language) uiText {
	return uiTexts[lang]
}

// pickerTitle is the sheet heading for the given slot.
func pickerTitle(slot Slot, lang colormix.Language) string {
	if slot == SlotSecond {
		return textFor(lang).PickSecond
	}
	return textFor(lang).PickFirst
}
