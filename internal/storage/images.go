package storage

import (
	"errors"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/stockwise/inventory-api/internal/models"
)

// ImageStore manages product image files under a single upload directory.
// Files are keyed by generated name only; clients build URLs by convention.
type ImageStore struct {
	dir string
}

func NewImageStore(dir string) *ImageStore {
	return &ImageStore{dir: dir}
}

func (s *ImageStore) Dir() string {
	return s.dir
}

// Save streams src into the upload directory under a fresh uuid-based name
// that keeps the original file's extension, creating the directory if needed.
// On a failed copy the partial file is removed so no torn image is ever
// reachable by name.
func (s *ImageStore) Save(src io.Reader, originalName string) (string, error) {
	name := uuid.New().String() + filepath.Ext(originalName)

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, name)
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", err
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", err
	}

	return name, nil
}

// Remove deletes a stored image. The no-image sentinel is not a file and is
// skipped; an already-missing file is treated as done. Other failures are
// logged rather than surfaced so a half-cleaned directory cannot block
// record deletion.
func (s *ImageStore) Remove(name string) {
	if name == "" || name == models.NoImage {
		return
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("could not remove image %s: %v", name, err)
	}
}
