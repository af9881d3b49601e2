package oauth2

import (
	"os"

	"golang.org/x/oauth2"
)

// AniListEndpoint is AniList's OAuth2 endpoint.
var AniListEndpoint = oauth2.Endpoint{
	AuthURL:  "https://anilist.co/api/v2/oauth/authorize",
	TokenURL: "https://anilist.co/api/v2/oauth/token",
}

// AniListConfig builds the OAuth2 config for AniList logins. Empty
// arguments fall back to COMMENTUM_ANILIST_CLIENT_ID,
// COMMENTUM_ANILIST_CLIENT_SECRET and COMMENTUM_ANILIST_REDIRECT_URL.
//
// AniList tokens carry no scopes; the authorize URL from this config plus
// Exchange yields the access token for commentum.ProviderAniList.
func AniListConfig(clientID, clientSecret, redirectURL string) *oauth2.Config {
	if clientID == "" {
		clientID = os.Getenv("COMMENTUM_ANILIST_CLIENT_ID")
	}
	if clientSecret == "" {
		clientSecret = os.Getenv("COMMENTUM_ANILIST_CLIENT_SECRET")
	}
	if redirectURL == "" {
		redirectURL = os.Getenv("COMMENTUM_ANILIST_REDIRECT_URL")
	}

	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Endpoint:     AniListEndpoint,
	}
}
