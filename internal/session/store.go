package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/ticketflow/ticketflow/internal/domain"
	"github.com/ticketflow/ticketflow/internal/persistence"
)

// Storage keys of the persisted profile.
const (
	TokenKey     = "ticketapp_session"
	LastEmailKey = "ticketapp_last_email"
	UserDataKey  = "user_data"
)

// Store persists the session token, the last used email and the single
// credential record. Persistence is best effort: failures are logged and the
// in-memory copy stays authoritative for the life of the process.
type Store struct {
	storage persistence.Storage
	logger  *zap.Logger

	mu         sync.Mutex
	token      *string
	lastEmail  *string
	credential *domain.Credential
}

// NewStore wraps storage.
func NewStore(storage persistence.Storage, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{storage: storage, logger: logger.Named("session")}
}

// Load returns the persisted token. Absent or malformed values report false.
func (s *Store) Load(ctx context.Context) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var token string
	switch err := s.readJSON(ctx, TokenKey, &token); {
	case err == nil:
		s.token = &token
	case errors.Is(err, persistence.ErrNotFound):
		s.token = nil
	case errors.Is(err, errMalformed):
		s.token = nil
	default:
		// storage unreadable: keep whatever this process last saw
	}
	if s.token == nil || *s.token == "" {
		return "", false
	}
	return *s.token, true
}

// Save persists token, overwriting any previous one.
func (s *Store) Save(ctx context.Context, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = &token
	s.writeJSON(ctx, TokenKey, token)
}

// Clear removes the token.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = nil
	if err := s.storage.Delete(ctx, TokenKey); err != nil {
		s.logger.Error("failed to delete storage key", zap.String("key", TokenKey), zap.Error(err))
	}
}

// RecordCredential overwrites the single stored user record.
func (s *Store) RecordCredential(ctx context.Context, email, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cred := domain.Credential{Email: email, Password: password}
	s.credential = &cred
	s.writeJSON(ctx, UserDataKey, cred)
}

// VerifyCredential compares the pair with the stored record.
func (s *Store) VerifyCredential(ctx context.Context, email, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	var cred domain.Credential
	switch err := s.readJSON(ctx, UserDataKey, &cred); {
	case err == nil:
		s.credential = &cred
	case errors.Is(err, persistence.ErrNotFound), errors.Is(err, errMalformed):
		s.credential = nil
	}
	if s.credential == nil {
		return false
	}
	return s.credential.Matches(email, password)
}

// RecordLastEmail remembers the last successfully used email.
func (s *Store) RecordLastEmail(ctx context.Context, email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastEmail = &email
	s.writeJSON(ctx, LastEmailKey, email)
}

// LastEmail returns the remembered email, if any.
func (s *Store) LastEmail(ctx context.Context) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var email string
	switch err := s.readJSON(ctx, LastEmailKey, &email); {
	case err == nil:
		s.lastEmail = &email
	case errors.Is(err, persistence.ErrNotFound), errors.Is(err, errMalformed):
		s.lastEmail = nil
	}
	if s.lastEmail == nil || *s.lastEmail == "" {
		return "", false
	}
	return *s.lastEmail, true
}

var errMalformed = errors.New("malformed stored value")

// readJSON decodes key into dst. A JSON null counts as absent.
func (s *Store) readJSON(ctx context.Context, key string, dst any) error {
	raw, err := s.storage.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, persistence.ErrNotFound) {
			s.logger.Error("failed to read storage key", zap.String("key", key), zap.Error(err))
		}
		return err
	}
	if raw == "null" {
		return persistence.ErrNotFound
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		s.logger.Warn("ignoring malformed storage value", zap.String("key", key), zap.Error(err))
		return errMalformed
	}
	return nil
}

func (s *Store) writeJSON(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.Error("failed to encode storage value", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.storage.Set(ctx, key, string(raw)); err != nil {
		s.logger.Error("failed to write storage key", zap.String("key", key), zap.Error(err))
	}
}
