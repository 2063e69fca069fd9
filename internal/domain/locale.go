package domain

import (
	"errors"

	"golang.org/x/text/language"

	"fishgettext/pkg/posixlocale"
)

// Domain is the catalog namespace this program translates within. Only the
// application's own built-in strings live here; third-party domains are
// never consulted.
const Domain = "fish"

// LocaleContext is the locale selection captured once from the environment.
// It is immutable; resolution treats it as a read-only snapshot.
type LocaleContext struct {
	tag          language.Tag
	translatable bool
}

// NewLocaleContext derives a LocaleContext from the LANG and LC_MESSAGES
// values. LC_MESSAGES takes precedence over LANG. "C" and "POSIX" are an
// explicit selection of the untranslated locale and end the search; empty
// and malformed values fall through to the next variable. When nothing
// usable remains the context is untranslatable.
func NewLocaleContext(lang, lcMessages string) LocaleContext {
	for _, value := range []string{lcMessages, lang} {
		if value == "" {
			continue
		}
		tag, err := posixlocale.Parse(value)
		if errors.Is(err, posixlocale.ErrNoLocale) {
			return LocaleContext{}
		}
		if err != nil {
			continue
		}
		return LocaleContext{tag: tag, translatable: true}
	}
	return LocaleContext{}
}

// Translatable reports whether a catalog lookup makes sense at all.
func (lc LocaleContext) Translatable() bool { return lc.translatable }

// Tag returns the selected locale as a BCP-47 string, e.g. "de-DE".
// Only meaningful when Translatable reports true.
func (lc LocaleContext) Tag() string { return lc.tag.String() }
