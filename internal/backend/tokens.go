package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mathquest/app/internal/models"
)

// StoredCredentials is what survives between runs after a login.
type StoredCredentials struct {
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
	User         *models.UserData `json:"user,omitempty"`
}

// TokenStore persists credentials.
type TokenStore interface {
	Load() (StoredCredentials, bool, error)
	Save(StoredCredentials) error
	Clear() error
}

// ── MemoryStore ─────────────────────────────────────────

type MemoryStore struct {
	mu    sync.Mutex
	creds *StoredCredentials
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() (StoredCredentials, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.creds == nil {
		return StoredCredentials{}, false, nil
	}
	return *s.creds, true, nil
}

func (s *MemoryStore) Save(c StoredCredentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = &c
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = nil
	return nil
}

// ── FileStore ───────────────────────────────────────────

// FileStore keeps credentials in a JSON file readable only by the owner.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (StoredCredentials, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return StoredCredentials{}, false, nil
	}
	if err != nil {
		return StoredCredentials{}, false, fmt.Errorf("read credentials: %w", err)
	}
	var c StoredCredentials
	if err := json.Unmarshal(data, &c); err != nil {
		return StoredCredentials{}, false, fmt.Errorf("decode credentials: %w", err)
	}
	return c, c.AccessToken != "", nil
}

func (s *FileStore) Save(c StoredCredentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create credentials dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove credentials: %w", err)
	}
	return nil
}

// TokenExpired reports whether a JWT access token's exp claim has passed.
// The signature is not checked; only the backend can do that. Tokens that
// are not JWTs, or carry no exp, are treated as live.
func TokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !now.Before(exp.Time)
}
