// Package commentum is the Go client for the Commentum comment and voting
// service.
//
// The client exchanges an access token from one of the supported identity
// backends (AniList, MyAnimeList, Kitsu) for a Commentum session token,
// caches it in memory, persists it through a pluggable TokenStore, and
// injects it as a bearer header on every authenticated request.
//
// # Basic Usage
//
// Create a token store, a client, and hydrate persisted sessions:
//
//	store, err := fs.NewStore("", "myapp")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	client := commentum.New("https://comments.example.com/api/v1", store,
//	    commentum.WithClientName("myapp/1.4.2"),
//	)
//	client.Init(ctx)
//
// Log in with a provider access token (obtained through the oauth2
// subpackage or any other OAuth flow):
//
//	if err := client.Login(ctx, commentum.ProviderAniList, providerToken); err != nil {
//	    log.Fatal(err)
//	}
//
// Read and write comments:
//
//	page, err := client.ListComments(ctx, mediaID, 25, "")
//	for page.HasMore() {
//	    page, err = client.ListComments(ctx, mediaID, 25, page.NextCursor)
//	}
//
//	comment, err := client.CreateComment(ctx, mediaID, "great episode")
//	err = comment.Vote(ctx, client, commentum.VoteUp)
//
// # Sessions
//
// At most one provider is active at a time; its token authenticates
// requests. Tokens for other providers stay cached, so switching backends
// with SetActiveProvider does not require a new login. A 401 on any
// authenticated call invalidates the active provider's session in memory
// and in the store and surfaces ErrSessionExpired.
//
// # Errors
//
// Every failure is a *Error carrying a message and the HTTP status (0 for
// connection-level failures). Classify with errors.Is against
// ErrSessionExpired, ErrServerRejected, ErrMalformedResponse, ErrTransport
// and ErrStore.
//
// # Store Implementations
//
// The stores/fs package stores tokens in a JSON file (optionally sealed
// with ChaCha20-Poly1305), stores/sqlite in an embedded SQLite database,
// and stores/gorm in any GORM-supported relational database.
package commentum
