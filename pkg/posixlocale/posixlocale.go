// Package posixlocale converts POSIX locale identifiers such as
// "de_DE.UTF-8@euro" into BCP-47 language tags.
package posixlocale

import (
	"errors"
	"strings"

	"golang.org/x/text/language"
)

// ErrNoLocale is returned for values that select the untranslated POSIX
// locale ("C", "POSIX") or carry no language information at all.
var ErrNoLocale = errors.New("posixlocale: no locale selected")

// Parse converts a POSIX locale identifier into a BCP-47 language tag.
// The codeset (".UTF-8") and modifier ("@euro") parts are discarded.
func Parse(value string) (language.Tag, error) {
	value = strings.TrimSpace(value)
	if i := strings.IndexByte(value, '.'); i >= 0 {
		value = value[:i]
	}
	if i := strings.IndexByte(value, '@'); i >= 0 {
		value = value[:i]
	}
	if value == "" || value == "C" || value == "POSIX" {
		return language.Und, ErrNoLocale
	}

	tag, err := language.Parse(strings.ReplaceAll(value, "_", "-"))
	if err != nil {
		return language.Und, err
	}
	return tag, nil
}
