package output

// Catalog exposes the translation lookup capability the resolver is
// configured with. Implementations answer found/not-found for a message key
// within their fixed domain; they never surface errors.
type Catalog interface {
	// Lookup returns the localized rendering of key for the given BCP-47
	// locale, and whether an entry was found.
	Lookup(locale, key string) (string, bool)
}
