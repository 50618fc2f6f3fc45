package catalog

import (
	"errors"
	"sync"
)

var ErrProductNotFound = errors.New("product not found")

// Repository provides read access to the product catalog.
type Repository interface {
	List() []Product
	Get(id string) (*Product, error)
}

// MemoryRepository serves the static catalog from memory. The dataset is
// immutable after construction; the lock only guards the map build.
type MemoryRepository struct {
	mu    sync.RWMutex
	byID  map[string]*Product
	order []string
}

// NewMemoryRepository loads the built-in product dataset.
func NewMemoryRepository() *MemoryRepository {
	r := &MemoryRepository{
		byID:  make(map[string]*Product, len(products)),
		order: make([]string, 0, len(products)),
	}
	for i := range products {
		p := products[i]
		r.byID[p.ID] = &p
		r.order = append(r.order, p.ID)
	}
	return r
}

// List returns all products in catalog order.
func (r *MemoryRepository) List() []Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Product, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, *r.byID[id])
	}
	return result
}

// Get returns the product with the given id.
func (r *MemoryRepository) Get(id string) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}
