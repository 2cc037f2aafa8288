package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// DiskPhotoStore writes photo assets under a local directory. Saved
// photos are addressed by the relative /uploads path the HTTP layer
// serves the directory from; clients resolve it against the API base.
type DiskPhotoStore struct {
	dir string
}

func NewDiskPhotoStore(dir string) (*DiskPhotoStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &DiskPhotoStore{dir: dir}, nil
}

// Save writes the photo to disk under a fresh name, keeping only the
// original extension. A failed write removes the partial file so no
// half-written asset is ever addressable.
func (s *DiskPhotoStore) Save(filename string, r io.Reader) (string, error) {
	name := uuid.NewString() + filepath.Ext(filename)
	target := filepath.Join(s.dir, name)

	dst, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("create photo file: %w", err)
	}

	if _, err := io.Copy(dst, r); err != nil {
		dst.Close()
		os.Remove(target)
		return "", fmt.Errorf("write photo file: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(target)
		return "", fmt.Errorf("close photo file: %w", err)
	}

	return "/uploads/" + name, nil
}
