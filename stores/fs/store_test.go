package fs

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commentum "github.com/frostnova721/commentum-client"
)

func TestStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	ctx := context.Background()

	store, err := NewStore(path, "")
	require.NoError(t, err)

	tok, err := store.Get(ctx, commentum.ProviderAniList)
	require.NoError(t, err)
	assert.Empty(t, tok, "missing token must read as empty, not error")

	require.NoError(t, store.Save(ctx, commentum.ProviderAniList, "sess-1"))
	require.NoError(t, store.Save(ctx, commentum.ProviderKitsu, "sess-2"))

	// Re-open from disk.
	reopened, err := NewStore(path, "")
	require.NoError(t, err)

	tok, err = reopened.Get(ctx, commentum.ProviderAniList)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", tok)

	require.NoError(t, reopened.Delete(ctx, commentum.ProviderAniList))
	tok, _ = reopened.Get(ctx, commentum.ProviderAniList)
	assert.Empty(t, tok)

	tok, _ = reopened.Get(ctx, commentum.ProviderKitsu)
	assert.Equal(t, "sess-2", tok, "delete must not touch other providers")
}

func TestStore_DeleteAbsentIsNotAnError(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "tokens.json"), "")
	require.NoError(t, err)
	assert.NoError(t, store.Delete(context.Background(), commentum.ProviderMyAnimeList))
}

func TestStore_FilePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "tokens.json")
	store, err := NewStore(path, "")
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), commentum.ProviderAniList, "sess-1"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestStore_Sealed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.bin")
	ctx := context.Background()
	key := bytes.Repeat([]byte{0x42}, 32)

	store, err := NewStore(path, "", WithKey(key))
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, commentum.ProviderAniList, "sealed-token"))

	// The token must not appear in plaintext on disk.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "sealed-token")

	reopened, err := NewStore(path, "", WithKey(key))
	require.NoError(t, err)
	tok, err := reopened.Get(ctx, commentum.ProviderAniList)
	require.NoError(t, err)
	assert.Equal(t, "sealed-token", tok)
}

func TestStore_SealedWrongKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.bin")
	ctx := context.Background()

	store, err := NewStore(path, "", WithKey(bytes.Repeat([]byte{0x42}, 32)))
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, commentum.ProviderAniList, "sealed-token"))

	_, err = NewStore(path, "", WithKey(bytes.Repeat([]byte{0x24}, 32)))
	assert.Error(t, err, "opening with the wrong key must fail")
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	_, err := NewStore(path, "")
	assert.Error(t, err)
}
