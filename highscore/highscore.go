// Package highscore persists the single best score across runs.
package highscore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	appDir   = "pixeltetris"
	fileName = "highscore.json"
)

type record struct {
	HighScore int `json:"high_score"`
}

// Store reads and writes the high score file.
type Store struct {
	path string
}

// NewStore returns a store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the high score location in the user config directory.
func DefaultPath() (string, error) {
	root, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(root, appDir, fileName), nil
}

func (s *Store) Path() string {
	return s.path
}

// Load returns the stored high score, or 0 when nothing has been saved yet.
func (s *Store) Load() (int, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read high score: %w", err)
	}

	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return 0, fmt.Errorf("decode high score %s: %w", s.path, err)
	}
	return r.HighScore, nil
}

// Save writes score, replacing any previous value.
func (s *Store) Save(score int) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create high score dir: %w", err)
	}

	data, err := json.MarshalIndent(record{HighScore: score}, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write high score: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace high score: %w", err)
	}
	return nil
}

// Record saves score if it beats the stored high score and reports whether it did.
func (s *Store) Record(score int) (bool, error) {
	best, err := s.Load()
	if err != nil {
		return false, err
	}
	if score <= best {
		return false, nil
	}
	if err := s.Save(score); err != nil {
		return false, err
	}
	return true, nil
}
