// Package oauth2 provides login helpers for the identity backends the
// Commentum service accepts. Each provider gets a golang.org/x/oauth2
// config constructor with environment-variable fallbacks; the access token
// obtained here is what commentum.Client.Login exchanges for a service
// session token.
//
// The package only covers config construction and token exchange. Driving
// the browser part of the flow (opening the authorize URL, receiving the
// redirect) is the embedding application's job.
package oauth2

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
)

// Exchange redeems an authorization code for the provider access token
// that commentum.Client.Login consumes.
func Exchange(ctx context.Context, cfg *oauth2.Config, code string, opts ...oauth2.AuthCodeOption) (string, error) {
	token, err := cfg.Exchange(ctx, code, opts...)
	if err != nil {
		return "", fmt.Errorf("code exchange failed: %w", err)
	}
	return token.AccessToken, nil
}
