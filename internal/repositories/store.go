package repositories

import (
	"inventario/internal/models"
)

// ProductStore owns the durable representation of the product collection.
// Every mutation at the service level is a full read-modify-write cycle
// against this interface; there are no partial updates at the storage level.
type ProductStore interface {
	// ReadAll returns the full collection in insertion order. A missing or
	// unreadable backing file is not an error: the store degrades to an
	// empty collection.
	ReadAll() ([]models.Product, error)
	// WriteAll replaces the persisted collection with the given one.
	WriteAll(products []models.Product) error
}
