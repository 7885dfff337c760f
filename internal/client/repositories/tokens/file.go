// Package tokens persists the access token for the lifetime of one OS
// session. The backing file lives under the system temp directory, which
// the OS wipes between sessions, so a surviving user record alone never
// re-authenticates anyone.
package tokens

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store is the session-scoped credential slot.
type Store interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

type FileStore struct {
	path string
}

// NewFileStore keeps the token under dir. An empty dir defaults to a
// per-user subdirectory of the system temp dir.
func NewFileStore(dir string) *FileStore {
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "wedmac-admin")
	}
	return &FileStore{path: filepath.Join(dir, "access_token")}
}

// Get returns the stored token, or an empty string when none exists.
func (s *FileStore) Get(_ context.Context) (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read token file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileStore) Set(_ context.Context, token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create token dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

// Clear removes the token file. Safe to call when no token exists.
func (s *FileStore) Clear(_ context.Context) error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove token file: %w", err)
	}
	return nil
}
