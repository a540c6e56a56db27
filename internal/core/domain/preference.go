package domain

import "fmt"

// Separator controls what sits between the currency symbol and the amount.
type Separator string

const (
	SeparatorNone  Separator = "none"
	SeparatorSpace Separator = "space"
)

// CurrencySettings is the user's currency display preference.
type CurrencySettings struct {
	Symbol    string    `json:"symbol"`
	Separator Separator `json:"separator"`
	Code      string    `json:"code"`
	Decimals  int       `json:"decimals"`
}

// DefaultCurrency is applied when nothing is persisted or the persisted
// value fails to parse.
var DefaultCurrency = CurrencySettings{
	Symbol:    "$",
	Separator: SeparatorNone,
	Code:      "USD",
	Decimals:  2,
}

// Validate enforces the currency invariants: decimals is 0 or 2 and the
// separator is one of the known variants.
func (c CurrencySettings) Validate() error {
	if c.Decimals != 0 && c.Decimals != 2 {
		return fmt.Errorf("%w: decimals must be 0 or 2, got %d", ErrInvalidPreference, c.Decimals)
	}
	if c.Separator != SeparatorNone && c.Separator != SeparatorSpace {
		return fmt.Errorf("%w: separator %q", ErrInvalidPreference, c.Separator)
	}
	if c.Symbol == "" || c.Code == "" {
		return fmt.Errorf("%w: symbol and code are required", ErrInvalidPreference)
	}
	return nil
}

// Language is a locale code from the supported set.
type Language string

const (
	LangEnglish Language = "en"
	LangFrench  Language = "fr"
	LangSpanish Language = "es"
	LangGerman  Language = "de"
)

const DefaultLanguage = LangEnglish

// Supported reports whether l is a locale the platform ships translations for.
func (l Language) Supported() bool {
	switch l {
	case LangEnglish, LangFrench, LangSpanish, LangGerman:
		return true
	}
	return false
}

// Theme is a color-theme identifier.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

const DefaultTheme = ThemeLight

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// PreferenceKind names one of the preference slots for change notifications.
type PreferenceKind string

const (
	PrefCurrency PreferenceKind = "currency"
	PrefLanguage PreferenceKind = "language"
	PrefPeriod   PreferenceKind = "period"
	PrefTheme    PreferenceKind = "theme"
)

// PreferenceChange is delivered to subscribers when a preference is updated.
type PreferenceChange struct {
	UserID string
	Kind   PreferenceKind
}
