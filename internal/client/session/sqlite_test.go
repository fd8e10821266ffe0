package session

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/jobboard/internal/client/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := storage.Open(context.Background(), filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func rawValue(t *testing.T, db *sql.DB, key string) []byte {
	t.Helper()
	var v []byte
	err := db.QueryRow(`SELECT value FROM metadata WHERE key = ?`, key).Scan(&v)
	if err == sql.ErrNoRows {
		return nil
	}
	require.NoError(t, err)
	return v
}

func TestSQLiteStore_PlainRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	s := NewSQLiteStore(db, "")

	c, err := s.Get(ctx)
	require.NoError(t, err)
	assert.True(t, c.IsZero())

	require.NoError(t, s.Set(ctx, Credentials{AccessToken: "A", RefreshToken: "R"}))

	c, err = s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, Credentials{AccessToken: "A", RefreshToken: "R"}, c)

	assert.Equal(t, []byte("A"), rawValue(t, db, "token"))
	assert.Equal(t, []byte("R"), rawValue(t, db, "refreshToken"))
}

func TestSQLiteStore_SetEmptyTokenRemovesKey(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	s := NewSQLiteStore(db, "")

	require.NoError(t, s.Set(ctx, Credentials{AccessToken: "A", RefreshToken: "R"}))
	require.NoError(t, s.Set(ctx, Credentials{AccessToken: "B"}))

	c, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, Credentials{AccessToken: "B"}, c)
	assert.Nil(t, rawValue(t, db, "refreshToken"))
}

func TestSQLiteStore_ClearRemovesBothTokens(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	s := NewSQLiteStore(db, "")

	require.NoError(t, s.Set(ctx, Credentials{AccessToken: "A", RefreshToken: "R"}))
	require.NoError(t, s.Clear(ctx))

	c, err := s.Get(ctx)
	require.NoError(t, err)
	assert.True(t, c.IsZero())
}

func TestSQLiteStore_SurvivesNewStoreInstance(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)

	require.NoError(t, NewSQLiteStore(db, "pw").Set(ctx, Credentials{AccessToken: "A", RefreshToken: "R"}))

	c, err := NewSQLiteStore(db, "pw").Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, Credentials{AccessToken: "A", RefreshToken: "R"}, c)
}

func TestSQLiteStore_SealedAtRest(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	s := NewSQLiteStore(db, "correct horse")

	require.NoError(t, s.Set(ctx, Credentials{AccessToken: "access-token", RefreshToken: "refresh-token"}))

	raw := rawValue(t, db, "token")
	require.NotNil(t, raw)
	assert.NotContains(t, string(raw), "access-token")
	assert.NotNil(t, rawValue(t, db, saltKey))

	c, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "access-token", c.AccessToken)
	assert.Equal(t, "refresh-token", c.RefreshToken)

	// Clear keeps the salt so later sessions use the same key.
	require.NoError(t, s.Clear(ctx))
	assert.NotNil(t, rawValue(t, db, saltKey))
}

func TestSQLiteStore_WrongPassphraseFails(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)

	require.NoError(t, NewSQLiteStore(db, "one").Set(ctx, Credentials{AccessToken: "A"}))

	_, err := NewSQLiteStore(db, "two").Get(ctx)
	require.ErrorIs(t, err, ErrUnreadable)
}
