package chart

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store writes rendered PNGs to a cache directory and serves them back
// over HTTP under /images/.
type Store struct {
	dir string
}

// NewStore creates the cache directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create chart cache dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save writes PNG bytes under a fresh random name and returns the filename.
func (s *Store) Save(png []byte) (string, error) {
	name := uuid.New().String() + ".png"
	if err := os.WriteFile(filepath.Join(s.dir, name), png, 0o644); err != nil {
		return "", fmt.Errorf("write chart image: %w", err)
	}
	return name, nil
}

// Dir returns the cache directory path.
func (s *Store) Dir() string {
	return s.dir
}

// Handler serves stored images; mount it at /images/.
func (s *Store) Handler() http.Handler {
	return http.StripPrefix("/images/", http.FileServer(http.Dir(s.dir)))
}
