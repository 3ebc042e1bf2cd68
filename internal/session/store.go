// Package session holds the process-wide credential pair for the POS API and
// optionally persists it, encrypted, under the user's config directory.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Credentials is the access/refresh token pair issued at login.
type Credentials struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Store owns the credential pair. Created on login, overwritten on refresh,
// cleared on logout or irrecoverable refresh failure. A Store with an empty
// path keeps tokens in memory only.
type Store struct {
	mu         sync.Mutex
	creds      Credentials
	path       string
	passphrase string
}

// NewStore creates a credential store persisting to path. Pass an empty path
// for an in-memory store (used by tests and one-shot commands).
func NewStore(path, passphrase string) *Store {
	return &Store{path: path, passphrase: passphrase}
}

// Load reads previously persisted credentials. A missing file is not an
// error; the store just starts empty.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return nil
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading session file: %w", err)
	}

	plaintext, err := open(s.passphrase, data)
	if err != nil {
		return fmt.Errorf("decrypting session file: %w", err)
	}
	if err := json.Unmarshal(plaintext, &s.creds); err != nil {
		return fmt.Errorf("parsing session file: %w", err)
	}
	return nil
}

// Set stores a new credential pair, replacing any previous one.
func (s *Store) Set(access, refresh string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.creds = Credentials{AccessToken: access, RefreshToken: refresh}
	return s.persist()
}

// SetAccess replaces only the access token, keeping the refresh token.
// Used after a successful token refresh.
func (s *Store) SetAccess(access string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.creds.AccessToken = access
	return s.persist()
}

// Clear wipes both tokens and removes the persisted file.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.creds = Credentials{}
	if s.path == "" {
		return nil
	}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing session file: %w", err)
	}
	return nil
}

// Access returns the stored access token, or "" if none.
func (s *Store) Access() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creds.AccessToken
}

// Refresh returns the stored refresh token, or "" if none.
func (s *Store) Refresh() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creds.RefreshToken
}

// persist writes the current credentials to disk. Caller must hold s.mu.
func (s *Store) persist() error {
	if s.path == "" {
		return nil
	}
	plaintext, err := json.Marshal(s.creds)
	if err != nil {
		return err
	}
	sealed, err := seal(s.passphrase, plaintext)
	if err != nil {
		return fmt.Errorf("encrypting session file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, sealed, 0o600); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	return nil
}
