// Package highscore persists the single best score as a decimal text file
// and holds the process-wide record for the running game.
package highscore

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// Store loads and saves one integer.
type Store interface {
	Load() int
	Save(score int) error
}

// FileStore keeps the high score in a plain text file.
type FileStore struct {
	path   string
	logger *log.Logger
}

// NewFileStore returns a store backed by path. A nil logger discards output.
func NewFileStore(path string, logger *log.Logger) *FileStore {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &FileStore{path: path, logger: logger}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load returns the stored score. A missing file or content that is not an
// integer yields 0; the failure is logged and never returned.
func (s *FileStore) Load() int {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("high score unreadable", "path", s.path, "error", err)
		}
		return 0
	}

	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		s.logger.Debug("high score corrupt", "path", s.path, "error", err)
		return 0
	}
	if score < 0 {
		return 0
	}
	return score
}

// Save overwrites the stored value unconditionally.
func (s *FileStore) Save(score int) error {
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("highscore: cannot create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(s.path, []byte(strconv.Itoa(score)), 0o644); err != nil {
		return fmt.Errorf("highscore: cannot write %s: %w", s.path, err)
	}
	return nil
}
