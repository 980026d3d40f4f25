// Package highscore persists the best score between sessions.
package highscore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Store reads and writes the best score.
type Store interface {
	Load() (int, error)
	Save(score int) error
}

// FileStore keeps the score as a single decimal integer in a text file.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load returns the stored score. A missing, empty or malformed file reads
// as 0 without error.
func (s *FileStore) Load() (int, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("highscore: read %s: %w", s.Path, err)
	}
	v, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || v < 0 {
		return 0, nil
	}
	return v, nil
}

// Save writes score through a temp file so a crash never leaves a torn
// value behind.
func (s *FileStore) Save(score int) error {
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("highscore: create dir: %w", err)
		}
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.Path), ".highscore-*")
	if err != nil {
		return fmt.Errorf("highscore: temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(strconv.Itoa(max(0, score))); err != nil {
		tmp.Close()
		return fmt.Errorf("highscore: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("highscore: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("highscore: replace %s: %w", s.Path, err)
	}
	return nil
}
