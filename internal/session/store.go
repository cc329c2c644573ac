package session

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// tokenFileName is fixed so every run of the client finds the credential
// saved by the previous one.
const tokenFileName = "token"

// TokenStore persists the session credential between runs.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileStore keeps the credential in a file under a config directory.
type FileStore struct {
	path string
}

// NewFileStore creates a store rooted at dir. An empty dir falls back to the
// user config directory under a nexus-connect subfolder.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(base, "nexus-connect")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &FileStore{path: filepath.Join(dir, tokenFileName)}, nil
}

// Load returns the saved credential, or "" when none exists.
func (s *FileStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileStore) Save(token string) error {
	return os.WriteFile(s.path, []byte(token), 0o600)
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// MemoryStore is a TokenStore for tests and ephemeral sessions.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

func (s *MemoryStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemoryStore) Save(token string) error {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Clear() error {
	return s.Save("")
}
