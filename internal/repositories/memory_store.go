package repositories

import (
	"sync"

	"inventario/internal/models"
)

// MemoryStore is an in-memory implementation of ProductStore, useful for
// tests and ephemeral runs. It keeps insertion order like the file store.
type MemoryStore struct {
	products []models.Product
	mu       sync.RWMutex
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{products: []models.Product{}}
}

// ReadAll returns a copy of the stored collection.
func (s *MemoryStore) ReadAll() ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

// WriteAll replaces the stored collection.
func (s *MemoryStore) WriteAll(products []models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = make([]models.Product, len(products))
	copy(s.products, products)
	return nil
}
