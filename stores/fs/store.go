// Package fs provides a file-backed token store for the Commentum client.
// Tokens are kept in a single JSON file, optionally sealed with
// ChaCha20-Poly1305 for at-rest encryption.
package fs

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/crypto/chacha20poly1305"

	commentum "github.com/frostnova721/commentum-client"
)

// Store persists session tokens as a JSON file on the filesystem. Writes
// are write-through: every Save and Delete rewrites the file.
type Store struct {
	mu     sync.RWMutex
	path   string
	sealer *sealer
	tokens map[string]string
}

type tokenFile struct {
	Tokens map[string]string `json:"tokens"`
}

// Option configures a Store.
type Option func(*Store)

// WithKey enables at-rest encryption of the token file with the given
// 32-byte key. Opening an encrypted file with the wrong key fails.
func WithKey(key []byte) Option {
	return func(s *Store) {
		s.sealer = &sealer{key: key}
	}
}

// NewStore creates a file-backed store. If path is empty it defaults to
// ~/.config/<appName>/tokens.json. The file and its directory are created
// with owner-only permissions on first save.
func NewStore(path string, appName string, opts ...Option) (*Store, error) {
	if path == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("could not determine config directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
		if appName == "" {
			appName = "commentum"
		}
		path = filepath.Join(configDir, appName, "tokens.json")
	}

	s := &Store{
		path:   path,
		tokens: make(map[string]string),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return s, nil
}

// Path returns the path of the token file.
func (s *Store) Path() string {
	return s.path
}

// Get returns the persisted token for a provider, or "" when absent.
func (s *Store) Get(_ context.Context, provider commentum.Provider) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens[string(provider)], nil
}

// Save persists the token for a provider, overwriting any prior value.
func (s *Store) Save(_ context.Context, provider commentum.Provider, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[string(provider)] = token
	return s.flush()
}

// Delete removes the persisted token for a provider.
func (s *Store) Delete(_ context.Context, provider commentum.Provider) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, string(provider))
	return s.flush()
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	if s.sealer != nil {
		data, err = s.sealer.open(data)
		if err != nil {
			return fmt.Errorf("failed to decrypt token file: %w", err)
		}
	}

	var file tokenFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse token file: %w", err)
	}

	s.tokens = file.Tokens
	if s.tokens == nil {
		s.tokens = make(map[string]string)
	}
	return nil
}

// flush writes the token map to disk. Caller must hold s.mu.
func (s *Store) flush() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}

	data, err := json.MarshalIndent(tokenFile{Tokens: s.tokens}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize tokens: %w", err)
	}

	if s.sealer != nil {
		data, err = s.sealer.seal(data)
		if err != nil {
			return fmt.Errorf("failed to encrypt token file: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

// sealer encrypts the token file with ChaCha20-Poly1305. The random nonce
// is prepended to the ciphertext.
type sealer struct {
	key []byte
}

func (sl *sealer) seal(plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(sl.key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

func (sl *sealer) open(data []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(sl.key)
	if err != nil {
		return nil, err
	}
	if len(data) < aead.NonceSize() {
		return nil, fmt.Errorf("ciphertext shorter than nonce")
	}
	nonce, ciphertext := data[:aead.NonceSize()], data[aead.NonceSize():]
	return aead.Open(nil, nonce, ciphertext, nil)
}
