package session

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession(id string, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:         id,
		UserID:     101,
		Email:      "asha@example.com",
		Name:       "Asha Verma",
		Role:       "STUDENT",
		Credential: BearerCredential("tok-abc"),
		CreatedAt:  now,
		ExpiresAt:  now.Add(ttl),
	}
}

func TestStore_SaveAndGet(t *testing.T) {
	store, err := OpenStore(filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, testSession("sid-1", time.Hour)))

	got, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(101), got.UserID)
	assert.Equal(t, "STUDENT", got.Role)
	assert.Equal(t, "Bearer tok-abc", got.Credential.AuthorizationHeader())
}

// The credential must survive a full close and reopen of the store, the
// equivalent of a portal restart: the user stays logged in and later
// requests carry the same Authorization header.
func TestStore_CredentialSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.db")
	ctx := context.Background()

	store, err := OpenStore(path)
	require.NoError(t, err)
	sess := testSession("sid-1", time.Hour)
	sess.Credential = BasicCredential("admin@example.com", "secret")
	require.NoError(t, store.Save(ctx, sess))
	require.NoError(t, store.Close())

	reopened, err := OpenStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, "sid-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, sess.Credential.AuthorizationHeader(), got.Credential.AuthorizationHeader())
}

func TestStore_GetMissing(t *testing.T) {
	store, err := OpenStore(filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)
	defer store.Close()

	got, err := store.Get(context.Background(), "nope")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_GetExpired(t *testing.T) {
	store, err := OpenStore(filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, testSession("sid-old", -time.Minute)))

	got, err := store.Get(ctx, "sid-old")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_SaveUpsert(t *testing.T) {
	store, err := OpenStore(filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	sess := testSession("sid-1", time.Hour)
	require.NoError(t, store.Save(ctx, sess))

	sess.Credential = BearerCredential("tok-renewed")
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-renewed", got.Credential.AuthorizationHeader())
}

func TestStore_Delete(t *testing.T) {
	store, err := OpenStore(filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, testSession("sid-1", time.Hour)))
	require.NoError(t, store.Delete(ctx, "sid-1"))

	got, err := store.Get(ctx, "sid-1")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_PurgeExpired(t *testing.T) {
	store, err := OpenStore(filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, testSession("sid-live", time.Hour)))
	require.NoError(t, store.Save(ctx, testSession("sid-dead", -time.Hour)))

	n, err := store.PurgeExpired(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	live, err := store.Get(ctx, "sid-live")
	require.NoError(t, err)
	assert.NotNil(t, live)
}
