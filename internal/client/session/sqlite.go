package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/jobboard/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/jobboard/internal/common"
	"github.com/dmitrijs2005/jobboard/internal/cryptox"
	"github.com/dmitrijs2005/jobboard/internal/dbx"
)

const saltKey = "store_salt"

// ErrUnreadable is returned by Get when sealed tokens cannot be opened,
// typically because the passphrase changed.
var ErrUnreadable = errors.New("stored credentials cannot be decrypted")

// SQLiteStore persists credentials in the local metadata table under the
// keys "token" and "refreshToken", so a session survives CLI restarts.
//
// When constructed with a passphrase, token values are sealed with AES-GCM
// under a key derived from the passphrase and a per-database salt.
type SQLiteStore struct {
	db         *sql.DB
	passphrase []byte

	keyMu sync.Mutex
	key   []byte
}

// NewSQLiteStore returns a store over db. An empty passphrase stores tokens
// in clear text.
func NewSQLiteStore(db *sql.DB, passphrase string) *SQLiteStore {
	s := &SQLiteStore{db: db}
	if passphrase != "" {
		s.passphrase = []byte(passphrase)
	}
	return s
}

func (s *SQLiteStore) Get(ctx context.Context) (Credentials, error) {
	repo := metadata.NewSQLiteRepository(s.db)

	access, err := s.read(ctx, repo, common.AccessTokenKey)
	if err != nil {
		return Credentials{}, err
	}
	refresh, err := s.read(ctx, repo, common.RefreshTokenKey)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{AccessToken: access, RefreshToken: refresh}, nil
}

// Set replaces both tokens in one transaction. An empty token is removed
// rather than stored.
func (s *SQLiteStore) Set(ctx context.Context, c Credentials) error {
	access, err := s.seal(ctx, c.AccessToken)
	if err != nil {
		return err
	}
	refresh, err := s.seal(ctx, c.RefreshToken)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := put(ctx, repo, common.AccessTokenKey, access); err != nil {
			return err
		}
		return put(ctx, repo, common.RefreshTokenKey, refresh)
	})
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	repo := metadata.NewSQLiteRepository(s.db)
	return repo.Delete(ctx, common.AccessTokenKey, common.RefreshTokenKey)
}

func put(ctx context.Context, repo metadata.Repository, key string, value []byte) error {
	if value == nil {
		return repo.Delete(ctx, key)
	}
	return repo.Set(ctx, key, value)
}

func (s *SQLiteStore) read(ctx context.Context, repo metadata.Repository, key string) (string, error) {
	raw, err := repo.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if raw == nil {
		return "", nil
	}
	if s.passphrase == nil {
		return string(raw), nil
	}

	k, err := s.sealingKey(ctx)
	if err != nil {
		return "", err
	}
	plain, err := cryptox.Open(raw, k)
	if err != nil {
		return "", fmt.Errorf("open %s: %w: %w", key, ErrUnreadable, err)
	}
	return string(plain), nil
}

func (s *SQLiteStore) seal(ctx context.Context, token string) ([]byte, error) {
	if token == "" {
		return nil, nil
	}
	if s.passphrase == nil {
		return []byte(token), nil
	}

	k, err := s.sealingKey(ctx)
	if err != nil {
		return nil, err
	}
	return cryptox.Seal([]byte(token), k)
}

// sealingKey derives the key once per store. The salt is created on first
// use and kept next to the tokens; Clear leaves it in place.
func (s *SQLiteStore) sealingKey(ctx context.Context) ([]byte, error) {
	s.keyMu.Lock()
	defer s.keyMu.Unlock()

	if s.key != nil {
		return s.key, nil
	}

	repo := metadata.NewSQLiteRepository(s.db)

	salt, err := repo.Get(ctx, saltKey)
	if err != nil {
		return nil, err
	}
	if salt == nil {
		salt = common.GenerateRandByteArray(cryptox.SaltSize)
		if err := repo.Set(ctx, saltKey, salt); err != nil {
			return nil, err
		}
	}

	s.key = cryptox.DeriveKey(s.passphrase, salt)
	return s.key, nil
}
