// Package sqlite provides an embedded SQLite token store for the Commentum
// client, using the pure-Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	commentum "github.com/frostnova721/commentum-client"
)

// Store implements commentum.TokenStore on an embedded SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the database at dbPath and ensures the token
// table exists. Use ":memory:" for an ephemeral store.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS session_tokens (
			provider    TEXT PRIMARY KEY,
			token       TEXT NOT NULL,
			updated_at  INTEGER NOT NULL
		);`,
	); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init session_tokens table: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save upserts the token for a provider.
func (s *Store) Save(ctx context.Context, provider commentum.Provider, token string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO session_tokens (provider, token, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (provider) DO UPDATE SET
			token = excluded.token,
			updated_at = excluded.updated_at;`,
		string(provider), token, time.Now().Unix(),
	)
	return err
}

// Get returns the persisted token for a provider, or "" when absent.
func (s *Store) Get(ctx context.Context, provider commentum.Provider) (string, error) {
	var token string
	err := s.db.QueryRowContext(ctx,
		`SELECT token FROM session_tokens WHERE provider = ?;`,
		string(provider),
	).Scan(&token)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

// Delete removes the persisted token for a provider.
func (s *Store) Delete(ctx context.Context, provider commentum.Provider) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM session_tokens WHERE provider = ?;`,
		string(provider),
	)
	return err
}
