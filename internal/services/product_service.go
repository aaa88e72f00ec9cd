package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"inventario/internal/models"
	"inventario/internal/repositories"
)

var (
	// ErrProductNotFound is returned when the requested ID is absent from
	// the collection.
	ErrProductNotFound = errors.New("producto no encontrado")
	// ErrSaveFailed is returned when the store rejects the write. It is
	// never swallowed: a failed persist must not look like a success
	// against a stale file.
	ErrSaveFailed = errors.New("no se pudo guardar la colección de productos")
)

// EventPublisher publishes product change events to a message broker.
type EventPublisher interface {
	PublishProductEvent(event string, payload map[string]interface{}) error
}

// ProductService implements CRUD semantics on top of a ProductStore. Every
// operation is a full read-modify-write cycle; the service owns ID and
// timestamp bookkeeping and field defaulting.
type ProductService struct {
	store  repositories.ProductStore
	events EventPublisher
	log    zerolog.Logger
	now    func() time.Time
}

// NewProductService creates a new ProductService. events may be nil, in
// which case no change events are published.
func NewProductService(store repositories.ProductStore, events EventPublisher, log zerolog.Logger) *ProductService {
	return &ProductService{
		store:  store,
		events: events,
		log:    log,
		now:    time.Now,
	}
}

// List returns the full collection in storage (insertion) order. Pagination
// and filtering are client-side concerns.
func (s *ProductService) List() ([]models.Product, error) {
	return s.store.ReadAll()
}

// Get returns the product with the given ID.
func (s *ProductService) Get(id int64) (*models.Product, error) {
	products, err := s.store.ReadAll()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrProductNotFound, id)
}

// Create appends a new product to the collection and persists it. The ID is
// derived from the current time and bumped until unique; both timestamps
// are set to the same instant.
func (s *ProductService) Create(input models.CreateProductInput) (*models.Product, error) {
	products, err := s.store.ReadAll()
	if err != nil {
		return nil, err
	}

	now := s.now()
	stock := 0
	if input.Stock != nil {
		stock = int(*input.Stock)
	}

	product := models.Product{
		ID:          nextID(products, now),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Stock:       stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	products = append(products, product)
	if err := s.store.WriteAll(products); err != nil {
		s.log.Error().Err(err).Msg("error guardando producto")
		return nil, ErrSaveFailed
	}

	s.publish("product.created", map[string]interface{}{
		"id":       product.ID,
		"name":     product.Name,
		"category": product.Category,
	})
	return &product, nil
}

// Update overlays the present fields of input onto the stored product and
// persists the collection. Omitted fields keep their prior values; explicit
// zeros overwrite. UpdatedAt is always refreshed.
func (s *ProductService) Update(id int64, input models.UpdateProductInput) (*models.Product, error) {
	products, err := s.store.ReadAll()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range products {
		if products[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, fmt.Errorf("%w: %d", ErrProductNotFound, id)
	}

	p := &products[idx]
	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.Price != nil {
		p.Price = *input.Price
	}
	if input.Category != nil {
		p.Category = *input.Category
	}
	if input.Stock != nil {
		p.Stock = *input.Stock
	}
	p.UpdatedAt = s.now()

	if err := s.store.WriteAll(products); err != nil {
		s.log.Error().Err(err).Int64("id", id).Msg("error actualizando producto")
		return nil, ErrSaveFailed
	}

	s.publish("product.updated", map[string]interface{}{
		"id":   p.ID,
		"name": p.Name,
	})
	return p, nil
}

// Delete removes the product with the given ID and persists the filtered
// collection.
func (s *ProductService) Delete(id int64) error {
	products, err := s.store.ReadAll()
	if err != nil {
		return err
	}

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.ID != id {
			filtered = append(filtered, p)
		}
	}
	if len(filtered) == len(products) {
		return fmt.Errorf("%w: %d", ErrProductNotFound, id)
	}

	if err := s.store.WriteAll(filtered); err != nil {
		s.log.Error().Err(err).Int64("id", id).Msg("error eliminando producto")
		return ErrSaveFailed
	}

	s.publish("product.deleted", map[string]interface{}{"id": id})
	return nil
}

// publish sends a change event when a publisher is configured. Publishing
// failures are logged and never fail the mutation.
func (s *ProductService) publish(event string, payload map[string]interface{}) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishProductEvent(event, payload); err != nil {
		s.log.Warn().Err(err).Str("event", event).Msg("no se pudo publicar el evento de producto")
	}
}

// nextID derives an ID from now in Unix milliseconds and increments it
// while it collides with an existing product, so uniqueness holds even for
// two creates in the same millisecond.
func nextID(products []models.Product, now time.Time) int64 {
	id := now.UnixMilli()
	for hasID(products, id) {
		id++
	}
	return id
}

func hasID(products []models.Product, id int64) bool {
	for _, p := range products {
		if p.ID == id {
			return true
		}
	}
	return false
}
