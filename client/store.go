package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Fixed storage keys; cleared together on logout.
const (
	storeKeyToken = "token"
	storeKeyUser  = "user.json"
)

// Store persists the session token and user record between runs, the
// way the web client uses browser local storage.
type Store interface {
	SaveSession(token string, user User) error
	LoadSession() (token string, user *User, err error)
	Clear() error
}

// FileStore keeps the session under a directory (default: the user
// config dir).
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve config dir: %w", err)
		}
		dir = filepath.Join(base, "recolhe-plus")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create store dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) SaveSession(token string, user User) error {
	if err := os.WriteFile(filepath.Join(s.dir, storeKeyToken), []byte(token), 0o600); err != nil {
		return err
	}
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, storeKeyUser), data, 0o600)
}

func (s *FileStore) LoadSession() (string, *User, error) {
	tokenBytes, err := os.ReadFile(filepath.Join(s.dir, storeKeyToken))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil, nil
		}
		return "", nil, err
	}
	userBytes, err := os.ReadFile(filepath.Join(s.dir, storeKeyUser))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil, nil
		}
		return "", nil, err
	}
	var user User
	if err := json.Unmarshal(userBytes, &user); err != nil {
		return "", nil, err
	}
	return string(tokenBytes), &user, nil
}

func (s *FileStore) Clear() error {
	for _, key := range []string{storeKeyToken, storeKeyUser} {
		if err := os.Remove(filepath.Join(s.dir, key)); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	return nil
}

// MemStore is an in-memory Store for tests and throwaway sessions.
type MemStore struct {
	token string
	user  *User
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) SaveSession(token string, user User) error {
	s.token = token
	u := user
	s.user = &u
	return nil
}

func (s *MemStore) LoadSession() (string, *User, error) {
	if s.user == nil {
		return "", nil, nil
	}
	u := *s.user
	return s.token, &u, nil
}

func (s *MemStore) Clear() error {
	s.token = ""
	s.user = nil
	return nil
}
