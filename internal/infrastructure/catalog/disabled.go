package catalog

import "fishgettext/internal/ports/output"

var _ output.Catalog = Disabled{}

// Disabled stands in for the catalog when translation support is switched
// off. Every lookup misses, so resolution degrades to identity.
type Disabled struct{}

func (Disabled) Lookup(string, string) (string, bool) { return "", false }
