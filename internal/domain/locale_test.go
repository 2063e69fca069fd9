package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLocaleContext(t *testing.T) {
	tests := []struct {
		name         string
		lang         string
		lcMessages   string
		translatable bool
		tag          string
	}{
		{
			name:         "lang only",
			lang:         "de_DE.UTF-8",
			translatable: true,
			tag:          "de-DE",
		},
		{
			name:         "lc_messages wins over lang",
			lang:         "de_DE.UTF-8",
			lcMessages:   "fr_FR.UTF-8",
			translatable: true,
			tag:          "fr-FR",
		},
		{
			name:         "empty lc_messages falls back to lang",
			lang:         "fr",
			lcMessages:   "",
			translatable: true,
			tag:          "fr",
		},
		{
			name:         "malformed lc_messages falls back to lang",
			lang:         "de_DE.UTF-8",
			lcMessages:   "not a locale",
			translatable: true,
			tag:          "de-DE",
		},
		{
			name:       "lc_messages C disables translation despite lang",
			lang:       "de_DE.UTF-8",
			lcMessages: "C",
		},
		{
			name: "lang C disables translation",
			lang: "C",
		},
		{
			name: "lang POSIX disables translation",
			lang: "POSIX.UTF-8",
		},
		{
			name: "malformed lang alone is untranslatable",
			lang: "!!bogus!!",
		},
		{
			name: "nothing set",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := NewLocaleContext(tt.lang, tt.lcMessages)
			assert.Equal(t, tt.translatable, lc.Translatable())
			if tt.translatable {
				assert.Equal(t, tt.tag, lc.Tag())
			}
		})
	}
}
