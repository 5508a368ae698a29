package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store persists uploaded limerick files in a flat directory.
// Each user owns exactly one slot, named after the username, so saving
// again overwrites the previous file.
type Store struct {
	dir string
}

// New creates a file store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// StoredName returns the deterministic file name for a user's upload.
func (s *Store) StoredName(username string) string {
	return username + "_Limerick.txt"
}

// Path returns the absolute location of a stored file.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// Save writes the uploaded bytes to the user's slot, replacing any
// previous upload, and returns the stored file name.
func (s *Store) Save(username string, data []byte) (string, error) {
	name := s.StoredName(username)
	if err := os.WriteFile(s.Path(name), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	return name, nil
}

// Size returns the on-disk size of a stored file in bytes.
func (s *Store) Size(name string) (int64, error) {
	info, err := os.Stat(s.Path(name))
	if err != nil {
		return 0, fmt.Errorf("failed to stat upload: %w", err)
	}
	return info.Size(), nil
}

// WordCount counts whitespace-delimited tokens in the file content.
// The bytes are decoded as UTF-8 best effort, invalid sequences are
// dropped rather than counted or reported.
func WordCount(data []byte) int64 {
	text := strings.ToValidUTF8(string(data), "")
	return int64(len(strings.Fields(text)))
}
