package commentum

import (
	"context"
	"sync"
)

// sessionState is the in-memory session cache: one token slot per provider
// plus the single active-provider pointer used for auth-header injection.
//
// A 401 on any in-flight authenticated request mutates this state, so every
// access goes through the mutex. The state never touches the durable store
// itself; durable writes and deletes are sequenced by the caller.
type sessionState struct {
	mu     sync.Mutex
	tokens map[Provider]string
	active Provider // "" means no provider selected
}

func newSessionState() *sessionState {
	return &sessionState{tokens: make(map[Provider]string)}
}

// hydrate fills the cache from the durable store. Each provider read is
// independent: a failing read skips that provider and moves on, so partial
// hydration never fails the caller.
func (s *sessionState) hydrate(ctx context.Context, store TokenStore) []error {
	var errs []error
	for _, p := range Providers() {
		token, err := store.Get(ctx, p)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if token != "" {
			s.cache(p, token)
		}
	}
	return errs
}

// setActive selects the provider whose token is injected on authenticated
// requests. Pure assignment: no token needs to exist yet.
func (s *sessionState) setActive(p Provider) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = p
}

func (s *sessionState) activeProvider() Provider {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// cache overwrites the cached token for a provider.
func (s *sessionState) cache(p Provider, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[p] = token
}

// token returns the cached token for a provider, if any.
func (s *sessionState) token(p Provider) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	token, ok := s.tokens[p]
	return token, ok
}

// activeToken returns the active provider and its cached token. ok is false
// when no provider is active or the active provider has no token.
func (s *sessionState) activeToken() (Provider, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == "" {
		return "", "", false
	}
	token, ok := s.tokens[s.active]
	return s.active, token, ok
}

// invalidate drops the cached token for a provider and, when it is the
// active one, clears the active pointer. Other providers' cached sessions
// are untouched.
func (s *sessionState) invalidate(p Provider) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, p)
	if s.active == p {
		s.active = ""
	}
}

// isLoggedIn reports whether a provider is active and has a cached token.
func (s *sessionState) isLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == "" {
		return false
	}
	_, ok := s.tokens[s.active]
	return ok
}
