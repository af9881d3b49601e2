package commentum

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// apiRequest describes one HTTP call to the service: endpoint, verb, query,
// JSON body, and whether the active session's token should be injected.
// Descriptors are built per call and never persisted.
type apiRequest struct {
	method string // GET when empty
	path   string
	query  url.Values
	body   map[string]any
	auth   bool

	// token overrides active-provider resolution when set. Used to log out
	// a provider that is not the active one.
	token string
}

// send dispatches one request and normalizes the outcome. All failures are
// *Error values.
//
// The 401 check runs before any body parsing so callers observe a single
// error kind for auth expiry regardless of what the server put in the
// body. A zero-length body is a valid empty result: the delete, vote and
// report endpoints respond without one.
func (c *Client) send(ctx context.Context, r apiRequest) (json.RawMessage, error) {
	method := r.method
	if method == "" {
		method = http.MethodGet
	}

	target := strings.TrimRight(c.baseURL, "/") + r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return nil, transportError(err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, transportError(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if r.auth {
		bearer := r.token
		if bearer == "" {
			// A missing token is not an error here: the request goes out
			// unauthenticated and the server decides.
			if _, token, ok := c.session.activeToken(); ok {
				bearer = token
			}
		}
		if bearer != "" {
			req.Header.Set("Authorization", "Bearer "+bearer)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(err)
	}

	c.logger.DebugContext(ctx, "commentum request", "method", method, "path", r.path, "status", resp.StatusCode)

	if resp.StatusCode == http.StatusUnauthorized && r.auth && r.token == "" {
		if p := c.session.activeProvider(); p != "" {
			c.expireSession(ctx, p)
			return nil, sessionExpiredError()
		}
	}

	success := resp.StatusCode >= 200 && resp.StatusCode < 300

	if len(bytes.TrimSpace(data)) == 0 {
		if !success {
			return nil, serverError("", resp.StatusCode)
		}
		return nil, nil
	}

	if !json.Valid(data) {
		return nil, malformedError(resp.StatusCode)
	}

	if !success {
		var payload struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(data, &payload)
		return nil, serverError(payload.Error, resp.StatusCode)
	}

	return json.RawMessage(data), nil
}

// expireSession removes a provider's session from memory and asks the
// durable store to forget it. The store delete is best-effort: the caller
// is already on the session-expired path.
func (c *Client) expireSession(ctx context.Context, p Provider) {
	c.session.invalidate(p)
	if err := c.store.Delete(ctx, p); err != nil {
		c.logger.WarnContext(ctx, "failed to delete expired token", "provider", p, "err", err)
	}
}
