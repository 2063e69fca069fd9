package application

import (
	"fishgettext/internal/domain"
	"fishgettext/internal/ports/input"
	"fishgettext/internal/ports/output"
)

// Ensure TranslationService implements the input.Resolver port.
var _ input.Resolver = (*TranslationService)(nil)

// TranslationService resolves message keys against an injected catalog for a
// locale fixed at construction.
type TranslationService struct {
	catalog output.Catalog
	locale  domain.LocaleContext
}

func NewTranslationService(catalog output.Catalog, locale domain.LocaleContext) *TranslationService {
	return &TranslationService{
		catalog: catalog,
		locale:  locale,
	}
}

// Resolve returns the localized rendering of key, or key unchanged when the
// catalog is absent, the locale selects no translation, or no entry exists.
// Empty input stays empty.
func (s *TranslationService) Resolve(key string) string {
	if key == "" {
		return ""
	}
	if s.catalog == nil || !s.locale.Translatable() {
		return key
	}
	if msg, ok := s.catalog.Lookup(s.locale.Tag(), key); ok && msg != "" {
		return msg
	}
	return key
}
