package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLanguage is the fallback language used when a key or language is
// not found.
const DefaultLanguage = "en"

// SupportedLanguages lists the language codes the catalog covers.
var SupportedLanguages = []string{"en", "tr"}

// IsSupported reports whether lang has a compiled-in catalog.
func IsSupported(lang string) bool {
	for _, l := range SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

// Localizer bundles a language with its label catalog and a locale-aware
// number printer. Report writers hold one Localizer for the whole report
// so every label and number is rendered consistently.
type Localizer struct {
	lang    string
	printer *message.Printer
}

// NewLocalizer creates a Localizer for the given language code.
// Unsupported languages fall back to English rather than failing; the CLI
// validates the flag before this point, so the fallback only matters for
// stored reports rendered later.
func NewLocalizer(lang string) *Localizer {
	if !IsSupported(lang) {
		lang = DefaultLanguage
	}

	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}

	return &Localizer{
		lang:    lang,
		printer: message.NewPrinter(tag),
	}
}

// Language returns the effective language code of this Localizer.
func (l *Localizer) Language() string {
	return l.lang
}

// Label returns the localized label for key.
// Unknown keys return the key itself so nothing is silently swallowed.
func (l *Localizer) Label(key string) string {
	langMap, ok := labels[key]
	if !ok {
		return key
	}

	if s, ok := langMap[l.lang]; ok {
		return s
	}
	if s, ok := langMap[DefaultLanguage]; ok {
		return s
	}
	return key
}

// Money formats a dollar amount with locale-aware digit grouping and no
// decimal places, e.g. "$2,950" for English.
func (l *Localizer) Money(v float64) string {
	return l.printer.Sprintf("$%.0f", v)
}

// MoneyPrecise formats a dollar amount with two decimal places.
// Used for price-per-sqft values, which are small.
func (l *Localizer) MoneyPrecise(v float64) string {
	return l.printer.Sprintf("$%.2f", v)
}

// Number formats a value with locale-aware grouping and no decimals.
func (l *Localizer) Number(v float64) string {
	return l.printer.Sprintf("%.0f", v)
}

// Count formats an integer with locale-aware grouping.
func (l *Localizer) Count(n int) string {
	return l.printer.Sprintf("%d", n)
}

// Percent formats a 0..1 share as a whole percentage, e.g. "45%".
func (l *Localizer) Percent(share float64) string {
	return l.printer.Sprintf("%.0f%%", share*100)
}
