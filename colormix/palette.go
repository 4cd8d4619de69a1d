package colormix

import "strings"

// Entry is one named palette color.
type Entry struct {
	English string
	Russian string
	Color   Color
}

// Name returns the entry's name in lang.
func (e Entry) Name(lang Language) string {
	if lang == Russian {
		return e.Russian
	}
	return e.English
}

// Palette colors.
var (
	Red    = RGBA(1, 0, 0, 1)
	Green  = RGBA(0, 1, 0, 1)
	Blue   = RGBA(0, 0, 1, 1)
	Yellow = RGBA(1, 1, 0, 1)
	Purple = RGBA(0.5, 0, 0.5, 1)
)

// entries is the fixed palette in presentation order. No two colors are
// within MatchTolerance of each other.
var entries = []Entry{
	{English: "Red", Russian: "Красный", Color: Red},
	{English: "Green", Russian: "Зелёный", Color: Green},
	{English: "Blue", Russian: "Синий", Color: Blue},
	{English: "Yellow", Russian: "Жёлтый", Color: Yellow},
	{English: "Purple", Russian: "Фиолетовый", Color: Purple},
}

// Entries returns the palette in presentation order. The slice is a copy.
func Entries() []Entry {
	result := make([]Entry, len(entries))
	copy(result, entries)
	return result
}

// UnknownName is the name reported for colors outside the palette.
func UnknownName(lang Language) string {
	if lang == Russian {
		return "Неизвестный цвет"
	}
	return "Unknown Color"
}

// IndexOf returns the position of c in the palette, or -1.
func IndexOf(c Color) int {
	for i, e := range entries {
		if e.Color.Equal(c) {
			return i
		}
	}
	return -1
}

// Lookup returns the palette entry whose color equals c.
func Lookup(c Color) (Entry, bool) {
	if i := IndexOf(c); i >= 0 {
		return entries[i], true
	}
	return Entry{}, false
}

// NameFor returns the name of c in lang, or UnknownName(lang) when c is not
// a palette color.
func NameFor(c Color, lang Language) string {
	if e, ok := Lookup(c); ok {
		return e.Name(lang)
	}
	return UnknownName(lang)
}

// ByName finds an entry by its English or Russian name, ignoring case.
func ByName(name string) (Entry, bool) {
	name = strings.TrimSpace(name)
	for _, e := range entries {
		if strings.EqualFold(e.English, name) || strings.EqualFold(e.Russian, name) {
			return e, true
		}
	}
	return Entry{}, false
}
