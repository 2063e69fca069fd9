package input

// Resolver is the single operation this program exposes: map a literal
// string to its best-known localized rendering.
type Resolver interface {
	// Resolve returns the localized rendering of key, or key itself when no
	// translation is known. It never fails.
	Resolve(key string) string
}
