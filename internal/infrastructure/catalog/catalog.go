package catalog

import (
	"embed"
	"io"
	"io/fs"
	"log"
	"path/filepath"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"fishgettext/internal/ports/output"
)

//go:embed translations
var translationFS embed.FS

// Ensure Catalog implements the output.Catalog port.
var _ output.Catalog = (*Catalog)(nil)

// Catalog is a thin wrapper around go-i18n's Bundle, scoped to a single
// gettext-style domain. It is immutable after New returns and safe for
// concurrent readers.
type Catalog struct {
	domain  string
	bundle  *i18n.Bundle
	tags    []language.Tag
	matcher language.Matcher
}

// New builds the catalog for domain. It loads the embedded
// translations/<domain>/active.*.toml files and, when localeDir is
// non-empty, any active.*.toml files found there. Loading happens once;
// a file that fails to load is logged and skipped, leaving its messages
// untranslated.
//
// Source strings are their own English rendering, so no English catalog is
// shipped and the bundle's default language carries no messages: a locale
// the catalog cannot serve misses instead of borrowing another language's
// entry.
func New(domain, localeDir string, logger *log.Logger) *Catalog {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	var tags []language.Tag

	dir := "translations/" + domain
	entries, err := fs.ReadDir(translationFS, dir)
	if err != nil {
		logger.Printf("catalog: no embedded translations for domain %q: %v", domain, err)
	}
	for _, entry := range entries {
		name := dir + "/" + entry.Name()
		file, err := bundle.LoadMessageFileFS(translationFS, name)
		if err != nil {
			logger.Printf("catalog: failed to load %s: %v", name, err)
			continue
		}
		tags = append(tags, file.Tag)
	}

	if localeDir != "" {
		matches, err := filepath.Glob(filepath.Join(localeDir, "active.*.toml"))
		if err != nil {
			logger.Printf("catalog: bad locale dir %q: %v", localeDir, err)
		}
		for _, path := range matches {
			file, err := bundle.LoadMessageFile(path)
			if err != nil {
				logger.Printf("catalog: failed to load %s: %v", path, err)
				continue
			}
			tags = append(tags, file.Tag)
		}
	}

	c := &Catalog{
		domain: domain,
		bundle: bundle,
		tags:   tags,
	}
	if len(tags) > 0 {
		c.matcher = language.NewMatcher(tags)
	}
	return c
}

// Domain returns the namespace this catalog serves.
func (c *Catalog) Domain() string { return c.domain }

// Languages returns the tags of the loaded message files.
func (c *Catalog) Languages() []language.Tag {
	out := make([]language.Tag, len(c.tags))
	copy(out, c.tags)
	return out
}

// Lookup reports the localized rendering of key for locale, if any.
// A malformed locale, a locale no loaded file serves, and a key without an
// entry all miss.
func (c *Catalog) Lookup(locale, key string) (string, bool) {
	if c.matcher == nil || key == "" {
		return "", false
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return "", false
	}
	// The bundle falls back to its default language on a weak match; require
	// a confident match against a loaded file so an unserved locale misses.
	if _, _, conf := c.matcher.Match(tag); conf < language.High {
		return "", false
	}

	localizer := i18n.NewLocalizer(c.bundle, locale)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil || msg == "" {
		return "", false
	}
	return msg, true
}
