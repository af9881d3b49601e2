package commentum

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
)

// Client is the session-aware entry point to the Commentum service. It owns
// the in-memory session cache, holds a reference to the durable token
// store, and dispatches authenticated requests.
//
// One client keeps at most one provider "active" at a time; tokens for
// other providers stay cached so switching providers does not force a new
// login.
type Client struct {
	baseURL    string
	store      TokenStore
	session    *sessionState
	http       *http.Client
	logger     *slog.Logger
	clientName string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client (for timeouts, TLS config, etc.).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTransport sets a custom transport on the default HTTP client.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.http.Transport = rt
	}
}

// WithLogger sets the logger used for request tracing and best-effort
// failure warnings.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithClientName sets the optional client identifier sent when creating
// comments, so the service can attribute posts to an app build.
func WithClientName(name string) Option {
	return func(c *Client) {
		c.clientName = name
	}
}

// New creates a client for the service at baseURL. The store persists
// session tokens across restarts; call Init to pick them up.
func New(baseURL string, store TokenStore, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		store:   store,
		session: newSessionState(),
		http:    &http.Client{},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Init loads persisted tokens into the session cache. Reads are
// per-provider and independent; failures are logged and skipped, so Init
// never fails. It does not pick an active provider.
func (c *Client) Init(ctx context.Context) {
	for _, err := range c.session.hydrate(ctx, c.store) {
		c.logger.WarnContext(ctx, "token hydration failed", "err", err)
	}
}

// IsLoggedIn reports whether a provider is active and has a session token.
func (c *Client) IsLoggedIn() bool {
	return c.session.isLoggedIn()
}

// ActiveProvider returns the provider currently used for auth-header
// injection, or "" when none is selected.
func (c *Client) ActiveProvider() Provider {
	return c.session.activeProvider()
}

// SetActiveProvider switches which provider's cached session authenticates
// subsequent requests. It does not validate that a token exists and does
// not clear other providers' cached tokens.
func (c *Client) SetActiveProvider(p Provider) {
	c.session.setActive(p)
}

// Login exchanges a provider-issued access token for a service session
// token, caches it in memory and in the durable store, and makes the
// provider active. The exchange itself is unauthenticated.
func (c *Client) Login(ctx context.Context, provider Provider, accessToken string) error {
	raw, err := c.send(ctx, apiRequest{
		method: http.MethodPost,
		path:   "/auth",
		body: map[string]any{
			"provider":     provider.String(),
			"access_token": accessToken,
		},
	})
	if err != nil {
		return err
	}

	var payload struct {
		Token string `json:"token"`
	}
	if err := decodeInto(raw, &payload); err != nil {
		return err
	}
	if payload.Token == "" {
		return &Error{Message: "auth response missing token", Status: http.StatusOK, kind: ErrMalformedResponse}
	}

	c.session.cache(provider, payload.Token)
	c.session.setActive(provider)

	if err := c.store.Save(ctx, provider, payload.Token); err != nil {
		return storeError(err)
	}
	return nil
}

// Logout ends the active provider's session. No-op when no provider is
// active.
func (c *Client) Logout(ctx context.Context) error {
	p := c.session.activeProvider()
	if p == "" {
		return nil
	}
	return c.logout(ctx, p)
}

// LogoutFrom ends a specific provider's session, active or not.
func (c *Client) LogoutFrom(ctx context.Context, provider Provider) error {
	return c.logout(ctx, provider)
}

// logout makes a best-effort server-side invalidation call and then always
// cleans up locally. Swallowing the network error here is a documented
// exception to the surface-every-error rule: local cleanup must complete
// even when the server is unreachable. A durable-store failure is still
// surfaced since local state and store would otherwise disagree.
func (c *Client) logout(ctx context.Context, p Provider) error {
	if token, ok := c.session.token(p); ok {
		_, err := c.send(ctx, apiRequest{
			method: http.MethodDelete,
			path:   "/auth",
			auth:   true,
			token:  token,
		})
		if err != nil {
			c.logger.WarnContext(ctx, "server-side logout failed", "provider", p, "err", err)
		}
	}

	c.session.invalidate(p)

	if err := c.store.Delete(ctx, p); err != nil {
		return storeError(err)
	}
	return nil
}

// Me fetches the account behind the active session.
func (c *Client) Me(ctx context.Context) (*User, error) {
	raw, err := c.send(ctx, apiRequest{path: "/me", auth: true})
	if err != nil {
		return nil, err
	}
	var payload struct {
		User *User `json:"user"`
	}
	if err := decodeInto(raw, &payload); err != nil {
		return nil, err
	}
	return payload.User, nil
}

// CreateComment posts a top-level comment on a media entry.
func (c *Client) CreateComment(ctx context.Context, mediaID, content string) (*Comment, error) {
	body := map[string]any{
		"media_id": mediaID,
		"content":  content,
	}
	if c.clientName != "" {
		body["client"] = c.clientName
	}
	return c.sendPost(ctx, http.MethodPost, body)
}

// CreateReply posts a reply under an existing comment.
func (c *Client) CreateReply(ctx context.Context, parentID, content string) (*Comment, error) {
	body := map[string]any{
		"parent_id": parentID,
		"content":   content,
	}
	if c.clientName != "" {
		body["client"] = c.clientName
	}
	return c.sendPost(ctx, http.MethodPost, body)
}

// UpdateComment replaces a comment's content.
func (c *Client) UpdateComment(ctx context.Context, id, content string) (*Comment, error) {
	return c.sendPost(ctx, http.MethodPatch, map[string]any{
		"id":      id,
		"content": content,
	})
}

func (c *Client) sendPost(ctx context.Context, method string, body map[string]any) (*Comment, error) {
	raw, err := c.send(ctx, apiRequest{
		method: method,
		path:   "/posts",
		body:   body,
		auth:   true,
	})
	if err != nil {
		return nil, err
	}
	var payload struct {
		Post *Comment `json:"post"`
	}
	if err := decodeInto(raw, &payload); err != nil {
		return nil, err
	}
	return payload.Post, nil
}

// DeleteComment removes a comment.
func (c *Client) DeleteComment(ctx context.Context, id string) error {
	query := url.Values{}
	query.Set("id", id)
	_, err := c.send(ctx, apiRequest{
		method: http.MethodDelete,
		path:   "/posts",
		query:  query,
		auth:   true,
	})
	return err
}

// ListComments fetches one page of top-level comments for a media entry.
// Pass the previous page's NextCursor to continue, or "" for the first
// page. The limit is forwarded verbatim; out-of-range values are the
// server's concern.
func (c *Client) ListComments(ctx context.Context, mediaID string, limit int, cursor string) (*Page, error) {
	query := url.Values{}
	query.Set("media_id", mediaID)
	query.Set("limit", strconv.Itoa(limit))
	return c.listPosts(ctx, cursorQuery(query, cursor), "comments")
}

// ListReplies fetches one page of replies under a root comment. parentID
// narrows the listing to direct children of a nested reply; pass "" for
// all replies under the root.
func (c *Client) ListReplies(ctx context.Context, rootID string, limit int, cursor, parentID string) (*Page, error) {
	query := url.Values{}
	query.Set("root_id", rootID)
	if parentID != "" {
		query.Set("parent_id", parentID)
	}
	query.Set("limit", strconv.Itoa(limit))
	return c.listPosts(ctx, cursorQuery(query, cursor), "replies")
}

func (c *Client) listPosts(ctx context.Context, query url.Values, key string) (*Page, error) {
	raw, err := c.send(ctx, apiRequest{
		path:  "/posts",
		query: query,
		auth:  true,
	})
	if err != nil {
		return nil, err
	}
	return decodePage(raw, key)
}

// VoteComment casts a vote on a comment. The value is forwarded verbatim,
// including values outside the documented -1/0/1 set; the server rejects
// those.
func (c *Client) VoteComment(ctx context.Context, id string, vote VoteType) error {
	_, err := c.send(ctx, apiRequest{
		method: http.MethodPost,
		path:   "/votes",
		body: map[string]any{
			"post_id":   id,
			"vote_type": int(vote),
		},
		auth: true,
	})
	return err
}

// ReportComment flags a comment for moderation.
func (c *Client) ReportComment(ctx context.Context, id, reason string) error {
	_, err := c.send(ctx, apiRequest{
		method: http.MethodPost,
		path:   "/reports",
		body: map[string]any{
			"post_id": id,
			"reason":  reason,
		},
		auth: true,
	})
	return err
}

func decodeInto(raw json.RawMessage, v any) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return malformedError(http.StatusOK)
	}
	return nil
}
