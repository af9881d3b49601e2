package oauth2

import (
	"context"
	"os"

	"golang.org/x/oauth2"
)

// MyAnimeListEndpoint is MyAnimeList's OAuth2 endpoint.
var MyAnimeListEndpoint = oauth2.Endpoint{
	AuthURL:  "https://myanimelist.net/v1/oauth2/authorize",
	TokenURL: "https://myanimelist.net/v1/oauth2/token",
}

// MyAnimeListConfig builds the OAuth2 config for MyAnimeList logins. Empty
// arguments fall back to COMMENTUM_MAL_CLIENT_ID,
// COMMENTUM_MAL_CLIENT_SECRET and COMMENTUM_MAL_REDIRECT_URL.
//
// MAL requires PKCE and only supports the plain challenge method, so use
// MyAnimeListAuthCodeURL and MyAnimeListExchange with a verifier from
// GenerateVerifier instead of the config's plain AuthCodeURL/Exchange.
func MyAnimeListConfig(clientID, clientSecret, redirectURL string) *oauth2.Config {
	if clientID == "" {
		clientID = os.Getenv("COMMENTUM_MAL_CLIENT_ID")
	}
	if clientSecret == "" {
		clientSecret = os.Getenv("COMMENTUM_MAL_CLIENT_SECRET")
	}
	if redirectURL == "" {
		redirectURL = os.Getenv("COMMENTUM_MAL_REDIRECT_URL")
	}

	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Endpoint:     MyAnimeListEndpoint,
	}
}

// GenerateVerifier returns a fresh PKCE code verifier.
func GenerateVerifier() string {
	return oauth2.GenerateVerifier()
}

// MyAnimeListAuthCodeURL builds the authorize URL with a plain-method PKCE
// challenge (the verifier doubles as the challenge).
func MyAnimeListAuthCodeURL(cfg *oauth2.Config, state, verifier string) string {
	return cfg.AuthCodeURL(state,
		oauth2.SetAuthURLParam("code_challenge", verifier),
		oauth2.SetAuthURLParam("code_challenge_method", "plain"),
	)
}

// MyAnimeListExchange redeems the authorization code with the PKCE
// verifier used in MyAnimeListAuthCodeURL.
func MyAnimeListExchange(ctx context.Context, cfg *oauth2.Config, code, verifier string) (string, error) {
	return Exchange(ctx, cfg, code, oauth2.SetAuthURLParam("code_verifier", verifier))
}
