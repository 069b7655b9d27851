// Package jsonfile persists boards as JSON documents on disk.
package jsonfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hylla/tavle/internal/board"
)

// Repository implements the app layer's FileService over plain files.
type Repository struct{}

// New constructs a file-backed repository.
func New() *Repository {
	return &Repository{}
}

// LoadBoard reads and decodes the board at fileName.
func (r *Repository) LoadBoard(fileName string) (*board.Board, error) {
	if strings.TrimSpace(fileName) == "" {
		return nil, errors.New("board path is required")
	}
	return board.Open(fileName)
}

// SaveBoard writes b to fileName, creating parent directories as
// needed.
func (r *Repository) SaveBoard(b *board.Board, fileName string) error {
	if strings.TrimSpace(fileName) == "" {
		return errors.New("board path is required")
	}
	if dir := filepath.Dir(fileName); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create board dir: %w", err)
		}
	}
	return b.WriteFile(fileName)
}
