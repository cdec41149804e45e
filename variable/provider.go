package variable

import "github.com/project-tsurugi/yugawara/catalog"

// Provider is the external variable declaration provider: a lookup of
// host parameters and session variables shadowed against a parent
// scope, same shape as every other catalog provider.
type Provider = catalog.Provider[*Declaration]

// NewProvider returns an unsynchronized Provider rooted at parent (nil
// for a root scope).
func NewProvider(parent *Provider) *Provider {
	return catalog.New[*Declaration](parent)
}

// NewLockedProvider returns a Provider safe for concurrent access.
func NewLockedProvider(parent *Provider) *Provider {
	return catalog.NewLocked[*Declaration](parent)
}
