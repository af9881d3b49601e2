package oauth2

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2"
)

// KitsuEndpoint is Kitsu's OAuth2 endpoint. Kitsu has no authorize page;
// tokens are issued through the resource-owner password grant.
var KitsuEndpoint = oauth2.Endpoint{
	TokenURL: "https://kitsu.io/api/oauth/token",
}

// KitsuConfig builds the OAuth2 config for Kitsu logins. Empty arguments
// fall back to COMMENTUM_KITSU_CLIENT_ID and COMMENTUM_KITSU_CLIENT_SECRET.
func KitsuConfig(clientID, clientSecret string) *oauth2.Config {
	if clientID == "" {
		clientID = os.Getenv("COMMENTUM_KITSU_CLIENT_ID")
	}
	if clientSecret == "" {
		clientSecret = os.Getenv("COMMENTUM_KITSU_CLIENT_SECRET")
	}

	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     KitsuEndpoint,
	}
}

// KitsuPasswordToken obtains a Kitsu access token with the password grant,
// the only flow Kitsu offers. The result feeds commentum.ProviderKitsu
// logins.
func KitsuPasswordToken(ctx context.Context, cfg *oauth2.Config, username, password string) (string, error) {
	token, err := cfg.PasswordCredentialsToken(ctx, username, password)
	if err != nil {
		return "", fmt.Errorf("kitsu password grant failed: %w", err)
	}
	return token.AccessToken, nil
}
