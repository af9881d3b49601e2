package gorm

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	commentum "github.com/frostnova721/commentum-client"
)

// SessionTokenModel is the GORM model for persisted session tokens, one
// row per provider.
type SessionTokenModel struct {
	Provider  string `gorm:"primaryKey;size:32"`
	Token     string `gorm:"not null"`
	UpdatedAt time.Time
}

func (SessionTokenModel) TableName() string {
	return "commentum_session_tokens"
}

// AutoMigrate creates or updates the session token table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&SessionTokenModel{})
}

// Store implements commentum.TokenStore on a GORM database.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Save upserts the token for a provider.
func (s *Store) Save(ctx context.Context, provider commentum.Provider, token string) error {
	model := &SessionTokenModel{
		Provider: string(provider),
		Token:    token,
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(model).Error
}

// Get returns the persisted token for a provider, or "" when absent.
func (s *Store) Get(ctx context.Context, provider commentum.Provider) (string, error) {
	var model SessionTokenModel
	err := s.db.WithContext(ctx).First(&model, "provider = ?", string(provider)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return model.Token, nil
}

// Delete removes the persisted token for a provider.
func (s *Store) Delete(ctx context.Context, provider commentum.Provider) error {
	return s.db.WithContext(ctx).Delete(&SessionTokenModel{}, "provider = ?", string(provider)).Error
}
