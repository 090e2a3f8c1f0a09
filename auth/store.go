package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"golang.org/x/oauth2"
)

// Store holds credentials keyed by user identifier. Load returns ErrNotFound when there is no
// credential for the user.
type Store interface {
	Load(userID string) (*oauth2.Token, error)
	Save(userID string, token *oauth2.Token) error
}

// MemoryStore keeps credentials for the lifetime of the process only.
type MemoryStore struct {
	tokens map[string]oauth2.Token
	guard  sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tokens: map[string]oauth2.Token{},
	}
}

func (m *MemoryStore) Load(userID string) (*oauth2.Token, error) {
	m.guard.RLock()
	defer m.guard.RUnlock()

	if token, ok := m.tokens[userID]; ok {
		return &token, nil
	}

	return nil, ErrNotFound
}

func (m *MemoryStore) Save(userID string, token *oauth2.Token) error {
	if token == nil {
		return fmt.Errorf("invalid token for user '%v'", userID)
	}

	m.guard.Lock()
	defer m.guard.Unlock()

	m.tokens[userID] = *token

	return nil
}

// FileStore persists each credential as a JSON file '<user>.json' in a directory.
type FileStore struct {
	dir string
}

var validUserID = regexp.MustCompile(`^[a-zA-Z0-9._@-]+$`)

func NewFileStore(dir string) *FileStore {
	return &FileStore{
		dir: dir,
	}
}

func (f *FileStore) Load(userID string) (*oauth2.Token, error) {
	file, err := f.path(userID)
	if err != nil {
		return nil, err
	}

	b, err := os.ReadFile(file)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	token := oauth2.Token{}
	if err := json.Unmarshal(b, &token); err != nil {
		return nil, fmt.Errorf("invalid token file %v (%v)", file, err)
	}

	return &token, nil
}

func (f *FileStore) Save(userID string, token *oauth2.Token) error {
	if token == nil {
		return fmt.Errorf("invalid token for user '%v'", userID)
	}

	file, err := f.path(userID)
	if err != nil {
		return err
	}

	b, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(f.dir, 0700); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(f.dir, ".token-*")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := tmp.Chmod(0600); err != nil {
		return err
	}

	if _, err := tmp.Write(b); err != nil {
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), file)
}

func (f *FileStore) path(userID string) (string, error) {
	if !validUserID.MatchString(userID) {
		return "", fmt.Errorf("invalid user ID '%v'", userID)
	}

	return filepath.Join(f.dir, userID+".json"), nil
}
