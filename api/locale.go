package api

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

// Locale is a display language of the catalog. Russian is the storage locale.
type Locale string

const (
	LocaleRU Locale = "ru"
	LocaleEN Locale = "en"
)

// DefaultLocale is used when neither the lang parameter nor Accept-Language selects one.
const DefaultLocale = LocaleRU

// langParam is the query parameter used to select a language.
const langParam = "lang"

var (
	supportedLocales = []Locale{LocaleRU, LocaleEN}
	localeMatcher    = language.NewMatcher([]language.Tag{language.Russian, language.English})
)

// AllLabel is the category filter value meaning "every category" in this locale.
func (l Locale) AllLabel() string {
	if l == LocaleEN {
		return "All"
	}
	return "Все"
}

// parseLocale matches a BCP 47 tag such as "en-US" against the supported locales.
func parseLocale(value string) (Locale, bool) {
	tag, err := language.Parse(strings.TrimSpace(value))
	if err != nil {
		return "", false
	}
	_, idx, confidence := localeMatcher.Match(tag)
	if confidence == language.No {
		return "", false
	}
	return supportedLocales[idx], true
}

// resolveLocale picks the locale for a request: the lang query parameter wins,
// then Accept-Language, then DefaultLocale.
func resolveLocale(r *http.Request) Locale {
	if value := strings.TrimSpace(r.URL.Query().Get(langParam)); value != "" {
		if loc, ok := parseLocale(value); ok {
			return loc
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			_, idx, confidence := localeMatcher.Match(tags...)
			if confidence != language.No {
				return supportedLocales[idx]
			}
		}
	}

	return DefaultLocale
}
