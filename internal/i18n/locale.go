// Package i18n holds the static locale table and the canonical/alternate
// URL generator used by SEO metadata and sitemap generation. Everything in
// this package is pure: no I/O, no hidden state, safe for concurrent use.
package i18n

// DefaultLocale is the fallback locale used for canonical URLs and
// x-default alternates.
const DefaultLocale = "en"

// Locales is the ordered set of supported locales.
var Locales = []string{"en", "fa"}

var localeNames = map[string]string{
	"en": "English",
	"fa": "فارسی",
}

var localeDirections = map[string]string{
	"en": "ltr",
	"fa": "rtl",
}

// IsValid reports whether the candidate is a supported locale.
// Empty strings and unknown values are invalid.
func IsValid(locale string) bool {
	for _, l := range Locales {
		if l == locale {
			return true
		}
	}
	return false
}

// Alternate returns the other locale of the configured pair. For an invalid
// locale, or when the table does not hold exactly two locales, it returns
// the default locale. The two-locale assumption is deliberate; see the
// design notes before adding a third locale.
func Alternate(locale string) string {
	if len(Locales) != 2 || !IsValid(locale) {
		return DefaultLocale
	}
	if Locales[0] == locale {
		return Locales[1]
	}
	return Locales[0]
}

// Name returns the display name for a locale, or the locale itself when
// unknown. Never fails.
func Name(locale string) string {
	if name, ok := localeNames[locale]; ok {
		return name
	}
	return locale
}

// Direction returns the text direction ("ltr" or "rtl") for a locale,
// defaulting to "ltr" when unknown.
func Direction(locale string) string {
	if dir, ok := localeDirections[locale]; ok {
		return dir
	}
	return "ltr"
}
