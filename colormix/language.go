package colormix

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLanguage is returned by ParseLanguage for unsupported codes.
var ErrUnknownLanguage = errors.New("unknown language")

// Language selects which name of a palette entry is displayed.
type Language int

const (
	English Language = iota
	Russian
)

// ParseLanguage accepts "en"/"english" and "ru"/"russian", case-insensitively.
// An empty string yields English.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "en", "english":
		return English, nil
	case "ru", "russian":
		return Russian, nil
	default:
		return English, fmt.Errorf("%w: %q (use en or ru)", ErrUnknownLanguage, s)
	}
}

// Toggle returns the other language.
func (l Language) Toggle() Language {
	if l == Russian {
		return English
	}
	return Russian
}

// String returns the language code.
func (l Language) String() string {
	if l == Russian {
		return "ru"
	}
	return "en"
}

// Label returns the language's own name, as shown on the language toggle.
func (l Language) Label() string {
	if l == Russian {
		return "Русский"
	}
	return "English"
}
