package commentum

import "fmt"

// Provider is an identity backend used to bootstrap a Commentum session.
// The set is closed: the service only exchanges tokens issued by these
// three backends.
type Provider string

const (
	// ProviderAniList authenticates with an AniList access token.
	ProviderAniList Provider = "anilist"

	// ProviderMyAnimeList authenticates with a MyAnimeList access token.
	ProviderMyAnimeList Provider = "mal"

	// ProviderKitsu authenticates with a Kitsu access token.
	ProviderKitsu Provider = "kitsu"
)

// Providers returns all supported identity backends.
func Providers() []Provider {
	return []Provider{ProviderAniList, ProviderMyAnimeList, ProviderKitsu}
}

// Valid reports whether p is one of the supported backends.
func (p Provider) Valid() bool {
	switch p {
	case ProviderAniList, ProviderMyAnimeList, ProviderKitsu:
		return true
	}
	return false
}

// String returns the wire identifier sent in the auth exchange body.
func (p Provider) String() string {
	return string(p)
}

// ParseProvider maps a wire identifier back to a Provider.
func ParseProvider(s string) (Provider, error) {
	p := Provider(s)
	if !p.Valid() {
		return "", fmt.Errorf("unknown provider %q", s)
	}
	return p, nil
}
