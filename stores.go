package commentum

import "context"

// TokenStore persists service session tokens across process restarts, keyed
// by provider. The client treats the store as the source of truth on
// startup; the in-memory cache is a write-through shadow.
//
// Implementations live in the stores subpackages (fs, gorm, sqlite); any
// key-value backend works. A store error is fatal only to the call that
// touched the store: it never aborts hydration of other providers and never
// blocks logout cleanup.
type TokenStore interface {
	// Save persists the session token for a provider, overwriting any
	// previous value.
	Save(ctx context.Context, provider Provider, token string) error

	// Get returns the persisted token for a provider, or the empty string
	// (and nil error) when none is stored.
	Get(ctx context.Context, provider Provider) (string, error)

	// Delete removes the persisted token for a provider. Deleting an
	// absent token is not an error.
	Delete(ctx context.Context, provider Provider) error
}
