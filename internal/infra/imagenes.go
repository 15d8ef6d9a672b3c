package infra

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ImagenStore persists product images on the local filesystem, keyed by
// product id. Content is stored as-is; the handler layer enforces the
// file-extension allow-list before calling Guardar.
type ImagenStore struct {
	dir string
}

func NewImagenStore(dir string) *ImagenStore { return &ImagenStore{dir: dir} }

// Guardar writes the image bytes for a product and returns the object key.
// A previous image for the same product is overwritten.
func (s *ImagenStore) Guardar(productoID uuid.UUID, ext string, data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("imagenes: create storage dir: %w", err)
	}
	key := fmt.Sprintf("%s.%s", productoID, ext)
	if err := os.WriteFile(filepath.Join(s.dir, key), data, 0o644); err != nil {
		return "", fmt.Errorf("imagenes: write: %w", err)
	}
	return key, nil
}

// Leer returns the raw bytes for an object key.
func (s *ImagenStore) Leer(key string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.dir, key))
}
