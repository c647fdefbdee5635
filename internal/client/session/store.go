package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/folio/internal/client/models"
	"github.com/dmitrijs2005/folio/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/folio/internal/common"
	"github.com/dmitrijs2005/folio/internal/dbx"
	"github.com/dmitrijs2005/folio/internal/logging"
)

// Store keeps the session in memory and in durable storage. Every mutation
// updates both before it returns; both keys are written in one transaction.
type Store struct {
	db   *sql.DB
	repo *metadata.SQLiteRepository
	log  logging.Logger
	now  func() time.Time

	mu    sync.RWMutex
	token string
	user  *models.User
}

func NewStore(db *sql.DB, repo *metadata.SQLiteRepository, log logging.Logger) *Store {
	if log == nil {
		log = logging.Nop()
	}
	return &Store{db: db, repo: repo, log: log, now: time.Now}
}

// Load rehydrates the in-memory session from durable storage. A session is
// restored only when both keys are present, the user parses and the token
// has not expired; anything else purges both keys. A corrupt user record is
// reported as common.ErrCorruptSession after the purge.
func (s *Store) Load(ctx context.Context) (bool, error) {
	token, user, err := s.read(ctx)
	if err == nil && token != "" && user != nil {
		if !TokenExpired(token, s.now()) {
			s.mu.Lock()
			s.token, s.user = token, user
			s.mu.Unlock()
			return true, nil
		}
		s.log.Info(ctx, "stored token expired, purging session")
	}

	if clearErr := s.Clear(ctx); clearErr != nil {
		return false, errors.Join(err, clearErr)
	}
	return false, err
}

func (s *Store) read(ctx context.Context) (string, *models.User, error) {
	token, err := s.repo.Get(ctx, common.TokenStorageKey)
	if err != nil {
		return "", nil, err
	}
	raw, err := s.repo.Get(ctx, common.UserStorageKey)
	if err != nil {
		return "", nil, err
	}
	if len(raw) == 0 {
		return string(token), nil, nil
	}

	var user *models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return "", nil, fmt.Errorf("%w: %v", common.ErrCorruptSession, err)
	}
	return string(token), user, nil
}

// Save persists and adopts a session. Both token and user are required.
func (s *Store) Save(ctx context.Context, token string, user *models.User) error {
	if token == "" {
		return common.ErrNoToken
	}
	if user == nil {
		return common.ErrNoUser
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo.WithTx(tx)
		if err := repo.Set(ctx, common.TokenStorageKey, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, common.UserStorageKey, raw)
	})
	if err != nil {
		s.token, s.user = "", nil
		return fmt.Errorf("persist session: %w", err)
	}

	s.token, s.user = token, user
	return nil
}

// Clear drops the session from memory and durable storage. It is safe to
// call any number of times.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token, s.user = "", nil

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo.WithTx(tx)
		if err := repo.Delete(ctx, common.TokenStorageKey); err != nil {
			return err
		}
		return repo.Delete(ctx, common.UserStorageKey)
	})
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Token returns the in-memory token.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the in-memory user, or nil when logged out.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// StoredToken reads the token from durable storage. It satisfies
// client.TokenSource.
func (s *Store) StoredToken(ctx context.Context) (string, error) {
	token, err := s.repo.Get(ctx, common.TokenStorageKey)
	if err != nil {
		return "", err
	}
	return string(token), nil
}
