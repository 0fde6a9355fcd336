// Package blob persists uploaded audio content on the local filesystem,
// addressed by generated collision-resistant names.
package blob

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cesargomez89/mixcrate/internal/constants"
)

// Store is a filesystem-backed blob store. Stored blobs are addressed by a
// public path under the uploads URL prefix; the directory itself holds a
// flat set of opaque files.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return nil, fmt.Errorf("failed to create uploads dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory blobs live in.
func (s *Store) Dir() string {
	return s.dir
}

// Store persists data under a generated name and returns the blob's public
// path. The name combines a nanosecond timestamp with a random suffix so
// concurrent writes cannot clobber each other.
func (s *Store) Store(data []byte, originalName string) (string, error) {
	name := generateName(originalName)
	if err := os.WriteFile(filepath.Join(s.dir, name), data, constants.FilePermissions); err != nil {
		return "", fmt.Errorf("failed to write blob: %w", err)
	}
	return constants.UploadsURLPrefix + name, nil
}

// Delete removes the blob at the given public path. A missing blob is not
// an error.
func (s *Store) Delete(publicPath string) error {
	err := os.Remove(s.LocalPath(publicPath))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete blob: %w", err)
	}
	return nil
}

// Exists reports whether a blob is present at the given public path.
func (s *Store) Exists(publicPath string) bool {
	_, err := os.Stat(s.LocalPath(publicPath))
	return err == nil
}

// Clear removes every file in the blob directory.
func (s *Store) Clear() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("failed to read uploads dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, e.Name())); err != nil {
			return fmt.Errorf("failed to remove %s: %w", e.Name(), err)
		}
	}
	return nil
}

// LocalPath maps a public path back to the file on disk. Only the base name
// is honored, so a crafted path cannot escape the uploads directory.
func (s *Store) LocalPath(publicPath string) string {
	return filepath.Join(s.dir, path.Base(publicPath))
}

func generateName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), suffix, ext)
}
