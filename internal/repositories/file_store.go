package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"inventario/internal/models"
)

// FileStore persists the product collection as a single pretty-printed JSON
// array. A process-wide mutex serializes access so every mutation sees a
// consistent read-modify-write window; there is no cross-process locking,
// so two instances sharing the same file can still lose updates to each
// other.
type FileStore struct {
	path string
	log  zerolog.Logger
	mu   sync.Mutex
}

// NewFileStore opens (or creates) the store at path. On first run, when no
// backing file exists, the store is seeded with a small set of demo
// products so the application is immediately demonstrable.
func NewFileStore(path string, log zerolog.Logger) (*FileStore, error) {
	s := &FileStore{path: path, log: log}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.WriteAll(seedProducts()); err != nil {
			return nil, fmt.Errorf("failed to seed data file: %w", err)
		}
		s.log.Info().Str("file", path).Msg("archivo de datos creado con productos de ejemplo")
	}

	return s, nil
}

// ReadAll returns the persisted collection. Any read or decode failure is
// logged and degraded to an empty collection, never surfaced to the caller.
func (s *FileStore) ReadAll() ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Error().Err(err).Str("file", s.path).Msg("error leyendo productos")
		}
		return []models.Product{}, nil
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		s.log.Error().Err(err).Str("file", s.path).Msg("error decodificando productos")
		return []models.Product{}, nil
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// WriteAll overwrites the backing file with the given collection. The write
// goes through a temp file in the same directory plus a rename, so readers
// never observe a half-written file.
func (s *FileStore) WriteAll(products []models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode products: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".products-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write products: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace data file: %w", err)
	}
	return nil
}

// seedProducts returns the demo collection written on first run: three
// records spanning two categories.
func seedProducts() []models.Product {
	now := time.Now().UTC()
	return []models.Product{
		{
			ID:          1,
			Name:        "Laptop Gamer",
			Description: "Laptop de alta gama para gaming",
			Price:       decimal.RequireFromString("1299.99"),
			Category:    "Electrónica",
			Stock:       15,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          2,
			Name:        "Smartphone Pro",
			Description: "Teléfono inteligente con cámara avanzada",
			Price:       decimal.RequireFromString("899.99"),
			Category:    "Electrónica",
			Stock:       30,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          3,
			Name:        "Zapatos Deportivos",
			Description: "Zapatos para running de alta calidad",
			Price:       decimal.RequireFromString("89.99"),
			Category:    "Ropa",
			Stock:       50,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}
