package oauth2_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	oauth2lib "golang.org/x/oauth2"

	"github.com/frostnova721/commentum-client/oauth2"
)

// mockTokenServer fakes a provider token endpoint and records the last
// form it received.
type mockTokenServer struct {
	server   *httptest.Server
	lastForm url.Values
	fail     bool
}

func newMockTokenServer() *mockTokenServer {
	mock := &mockTokenServer{}
	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		mock.lastForm = r.PostForm
		if mock.fail {
			http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "provider_access_token",
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	}))
	return mock
}

func (m *mockTokenServer) config() *oauth2lib.Config {
	return &oauth2lib.Config{
		ClientID:     "cid",
		ClientSecret: "secret",
		Endpoint:     oauth2lib.Endpoint{TokenURL: m.server.URL},
	}
}

func TestExchange(t *testing.T) {
	mock := newMockTokenServer()
	defer mock.server.Close()

	token, err := oauth2.Exchange(context.Background(), mock.config(), "code-1")
	if err != nil {
		t.Fatalf("Exchange() error = %v", err)
	}
	if token != "provider_access_token" {
		t.Errorf("token = %q, want provider_access_token", token)
	}
	if got := mock.lastForm.Get("code"); got != "code-1" {
		t.Errorf("code = %q, want code-1", got)
	}
}

func TestExchange_Failure(t *testing.T) {
	mock := newMockTokenServer()
	defer mock.server.Close()
	mock.fail = true

	_, err := oauth2.Exchange(context.Background(), mock.config(), "bad-code")
	if err == nil {
		t.Fatal("Exchange() succeeded with a rejected code")
	}
}

func TestAniListConfig_Endpoints(t *testing.T) {
	cfg := oauth2.AniListConfig("cid", "secret", "app://callback")
	if cfg.Endpoint.AuthURL != "https://anilist.co/api/v2/oauth/authorize" {
		t.Errorf("AuthURL = %q", cfg.Endpoint.AuthURL)
	}
	if cfg.Endpoint.TokenURL != "https://anilist.co/api/v2/oauth/token" {
		t.Errorf("TokenURL = %q", cfg.Endpoint.TokenURL)
	}
	if cfg.ClientID != "cid" || cfg.RedirectURL != "app://callback" {
		t.Errorf("config = %+v", cfg)
	}
}

func TestAniListConfig_EnvFallback(t *testing.T) {
	t.Setenv("COMMENTUM_ANILIST_CLIENT_ID", "env-cid")
	t.Setenv("COMMENTUM_ANILIST_CLIENT_SECRET", "env-secret")
	t.Setenv("COMMENTUM_ANILIST_REDIRECT_URL", "env://cb")

	cfg := oauth2.AniListConfig("", "", "")
	if cfg.ClientID != "env-cid" || cfg.ClientSecret != "env-secret" || cfg.RedirectURL != "env://cb" {
		t.Errorf("env fallback not applied: %+v", cfg)
	}
}

func TestMyAnimeListAuthCodeURL_PlainPKCE(t *testing.T) {
	cfg := oauth2.MyAnimeListConfig("cid", "", "app://callback")
	verifier := oauth2.GenerateVerifier()

	u := oauth2.MyAnimeListAuthCodeURL(cfg, "state-1", verifier)

	parsed, err := url.Parse(u)
	if err != nil {
		t.Fatalf("invalid auth URL: %v", err)
	}
	if !strings.HasPrefix(u, "https://myanimelist.net/v1/oauth2/authorize") {
		t.Errorf("auth URL = %q", u)
	}
	q := parsed.Query()
	if q.Get("code_challenge") != verifier {
		t.Error("plain PKCE must use the verifier as the challenge")
	}
	if q.Get("code_challenge_method") != "plain" {
		t.Errorf("code_challenge_method = %q, want plain", q.Get("code_challenge_method"))
	}
	if q.Get("state") != "state-1" {
		t.Errorf("state = %q", q.Get("state"))
	}
}

func TestMyAnimeListExchange_SendsVerifier(t *testing.T) {
	mock := newMockTokenServer()
	defer mock.server.Close()

	token, err := oauth2.MyAnimeListExchange(context.Background(), mock.config(), "code-1", "verifier-1")
	if err != nil {
		t.Fatalf("MyAnimeListExchange() error = %v", err)
	}
	if token != "provider_access_token" {
		t.Errorf("token = %q", token)
	}
	if got := mock.lastForm.Get("code_verifier"); got != "verifier-1" {
		t.Errorf("code_verifier = %q, want verifier-1", got)
	}
}

func TestKitsuPasswordToken(t *testing.T) {
	mock := newMockTokenServer()
	defer mock.server.Close()

	token, err := oauth2.KitsuPasswordToken(context.Background(), mock.config(), "user@example.com", "hunter2")
	if err != nil {
		t.Fatalf("KitsuPasswordToken() error = %v", err)
	}
	if token != "provider_access_token" {
		t.Errorf("token = %q", token)
	}
	if mock.lastForm.Get("grant_type") != "password" {
		t.Errorf("grant_type = %q, want password", mock.lastForm.Get("grant_type"))
	}
	if mock.lastForm.Get("username") != "user@example.com" {
		t.Errorf("username = %q", mock.lastForm.Get("username"))
	}
}

func TestKitsuConfig_TokenURL(t *testing.T) {
	cfg := oauth2.KitsuConfig("cid", "secret")
	if cfg.Endpoint.TokenURL != "https://kitsu.io/api/oauth/token" {
		t.Errorf("TokenURL = %q", cfg.Endpoint.TokenURL)
	}
}
