package posixlocale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "language only", value: "fr", want: "fr"},
		{name: "language and region", value: "de_DE", want: "de-DE"},
		{name: "with codeset", value: "de_DE.UTF-8", want: "de-DE"},
		{name: "with modifier", value: "de_DE@euro", want: "de-DE"},
		{name: "codeset and modifier", value: "de_DE.UTF-8@euro", want: "de-DE"},
		{name: "brazilian portuguese", value: "pt_BR.UTF-8", want: "pt-BR"},
		{name: "surrounding whitespace", value: "  sv_SE  ", want: "sv-SE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag, err := Parse(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tag.String())
		})
	}
}

func TestParseNoLocale(t *testing.T) {
	for _, value := range []string{"", "C", "POSIX", "C.UTF-8", "POSIX.UTF-8", "C@euro", "   "} {
		t.Run("value "+value, func(t *testing.T) {
			_, err := Parse(value)
			assert.ErrorIs(t, err, ErrNoLocale)
		})
	}
}

func TestParseMalformed(t *testing.T) {
	for _, value := range []string{"not a locale", "de_DE_DE_DE_DE", "!!"} {
		t.Run("value "+value, func(t *testing.T) {
			_, err := Parse(value)
			require.Error(t, err)
			assert.NotErrorIs(t, err, ErrNoLocale)
		})
	}
}
