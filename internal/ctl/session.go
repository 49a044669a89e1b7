package ctl

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrNoSession is returned by Load when no token has been saved yet.
var ErrNoSession = errors.New("no saved session")

// StoredSession is the JSON shape persisted to disk between runs. The token
// is never trusted as-is: commands revalidate it against the service before
// using it.
type StoredSession struct {
	AccessToken string `json:"access_token"`
	Email       string `json:"email"`
	Role        string `json:"role"`
}

// SessionStore persists the session token to a file.
type SessionStore struct {
	Path string
}

// DefaultSessionStore stores the session under ~/.capctl/session.json.
func DefaultSessionStore() (*SessionStore, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return &SessionStore{Path: filepath.Join(home, ".capctl", "session.json")}, nil
}

// Save writes the session to disk, readable only by the owner.
func (s *SessionStore) Save(session StoredSession) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.Path, data, 0600)
}

// Load reads the saved session. ErrNoSession means the user never logged in
// or has logged out.
func (s *SessionStore) Load() (StoredSession, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return StoredSession{}, ErrNoSession
		}
		return StoredSession{}, err
	}

	var session StoredSession
	if err := json.Unmarshal(data, &session); err != nil {
		return StoredSession{}, err
	}
	if session.AccessToken == "" {
		return StoredSession{}, ErrNoSession
	}
	return session, nil
}

// Clear removes the saved session. Clearing an already-empty store is fine.
func (s *SessionStore) Clear() error {
	err := os.Remove(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
