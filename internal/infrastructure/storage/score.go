// Package storage persists the best score between runs.
package storage

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// FileStore keeps the high score as a decimal string in a single file.
// The stored value is bounded to [0,255].
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load returns the persisted high score. A missing, unreadable, corrupt or
// out-of-range file yields 0; the player never sees a load error.
func (s *FileStore) Load() uint8 {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return 0
	}
	v, err := strconv.ParseUint(strings.TrimSpace(string(data)), 10, 8)
	if err != nil {
		return 0
	}
	return uint8(v)
}

// Save writes the high score.
func (s *FileStore) Save(score uint8) error {
	if err := os.WriteFile(s.path, []byte(strconv.Itoa(int(score))), 0o644); err != nil {
		return fmt.Errorf("failed to write high score: %w", err)
	}
	return nil
}
