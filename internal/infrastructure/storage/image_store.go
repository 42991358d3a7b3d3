package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// allowedExtensions lists the image types the admin form accepts.
var allowedExtensions = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"gif":  {},
}

// ImageStore saves product images to disk under a base directory.
type ImageStore struct {
	basePath string
}

// NewImageStore creates the base directory if missing.
func NewImageStore(basePath string) (*ImageStore, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, fmt.Errorf("image store base path is required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create image dir: %w", err)
	}
	return &ImageStore{basePath: basePath}, nil
}

// Allowed reports whether the filename carries an accepted image extension.
func (s *ImageStore) Allowed(filename string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	_, ok := allowedExtensions[ext]
	return ok
}

// Save writes the image under the base directory and returns the reference
// (the sanitized filename) to record on the product.
func (s *ImageStore) Save(filename string, r io.Reader) (string, error) {
	if !s.Allowed(filename) {
		return "", fmt.Errorf("extension not allowed: %s", filename)
	}

	name := safeFilename(filename)
	target := filepath.Join(s.basePath, name)

	out, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, r); err != nil {
		return "", fmt.Errorf("write image file: %w", err)
	}
	return name, nil
}

// Remove deletes a stored image. Removing a missing file is not an error.
func (s *ImageStore) Remove(reference string) error {
	target := filepath.Join(s.basePath, safeFilename(reference))
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove image file: %w", err)
	}
	return nil
}

// safeFilename strips any path components so uploads cannot escape the base
// directory.
func safeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, string(os.PathSeparator), "_")
	name = strings.TrimSpace(name)
	if name == "" || name == "." {
		return "image"
	}
	return name
}
