package filesystem

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"resumemcp/internal/application"
	"resumemcp/internal/ports"
)

// Store implements ports.ArtifactStore and ports.ArtifactReader on a directory
type Store struct {
	root string
}

// Ensure Store implements the artifact ports
var (
	_ ports.ArtifactStore  = (*Store)(nil)
	_ ports.ArtifactReader = (*Store)(nil)
	_ ports.DirMaker       = (*Store)(nil)
)

// NewStore creates a store rooted at dir
func NewStore(dir string) *Store {
	// Expand ~ to home directory
	if strings.HasPrefix(dir, "~") {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, dir[1:])
	}
	return &Store{root: dir}
}

// Root returns the output directory
func (s *Store) Root() string {
	return s.root
}

// Put writes data unless the file already holds exactly these bytes
func (s *Store) Put(_ context.Context, p string, data []byte) (bool, error) {
	full, err := s.resolve(p)
	if err != nil {
		return false, err
	}

	existing, err := os.ReadFile(full)
	if err == nil && bytes.Equal(existing, data) {
		return false, nil
	}
	if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to read %s: %w", p, err)
	}

	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return false, fmt.Errorf("failed to create directory for %s: %w", p, err)
	}
	if err := os.WriteFile(full, data, 0644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", p, err)
	}
	return true, nil
}

// MakeDir creates a directory (and parents) inside the root
func (s *Store) MakeDir(p string) error {
	full, err := s.resolve(p)
	if err != nil {
		return err
	}
	return os.MkdirAll(full, 0755)
}

// Get reads one artifact
func (s *Store) Get(p string) ([]byte, error) {
	full, err := s.resolve(p)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(full)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", p, application.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", p, err)
	}
	return data, nil
}

// Walk visits every regular file under the root in lexical order
func (s *Store) Walk(ctx context.Context, fn func(path string, data []byte) error) error {
	if _, err := os.Stat(s.root); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("output directory %s: %w", s.root, application.ErrNotFound)
		}
		return err
	}

	return filepath.WalkDir(s.root, func(full string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(s.root, full)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(full)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", rel, err)
		}
		return fn(filepath.ToSlash(rel), data)
	})
}

// resolve maps a slash path onto the root, refusing anything that escapes it
func (s *Store) resolve(p string) (string, error) {
	clean := path.Clean("/" + p)
	if clean == "/" || clean != "/"+p {
		return "", fmt.Errorf("invalid artifact path %q: %w", p, application.ErrUnsafeKey)
	}
	return filepath.Join(s.root, filepath.FromSlash(clean[1:])), nil
}
