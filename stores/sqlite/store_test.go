package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commentum "github.com/frostnova721/commentum-client"
)

func TestStore_RoundTrip(t *testing.T) {
	store, err := NewStore(":memory:")
	require.NoError(t, err)
	defer store.Close()
	ctx := context.Background()

	tok, err := store.Get(ctx, commentum.ProviderAniList)
	require.NoError(t, err)
	assert.Empty(t, tok)

	require.NoError(t, store.Save(ctx, commentum.ProviderAniList, "sess-1"))
	tok, err = store.Get(ctx, commentum.ProviderAniList)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", tok)

	// Save overwrites.
	require.NoError(t, store.Save(ctx, commentum.ProviderAniList, "sess-2"))
	tok, _ = store.Get(ctx, commentum.ProviderAniList)
	assert.Equal(t, "sess-2", tok)

	require.NoError(t, store.Delete(ctx, commentum.ProviderAniList))
	tok, err = store.Get(ctx, commentum.ProviderAniList)
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.db")
	ctx := context.Background()

	store, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, commentum.ProviderKitsu, "sess-1"))
	require.NoError(t, store.Close())

	reopened, err := NewStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	tok, err := reopened.Get(ctx, commentum.ProviderKitsu)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", tok)
}

func TestStore_DeleteAbsentIsNotAnError(t *testing.T) {
	store, err := NewStore(":memory:")
	require.NoError(t, err)
	defer store.Close()

	assert.NoError(t, store.Delete(context.Background(), commentum.ProviderMyAnimeList))
}
