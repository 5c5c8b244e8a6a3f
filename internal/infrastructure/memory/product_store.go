package memory

import (
	"sync"

	"github.com/jhoicas/retail-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/retail-dashboard-api/internal/domain/repository"
)

// ProductStore catálogo de productos agregados manualmente.
type ProductStore struct {
	mu       sync.RWMutex
	products []*entity.Product
}

var _ repository.ProductRepository = (*ProductStore)(nil)

func NewProductStore() *ProductStore {
	return &ProductStore{}
}

func (s *ProductStore) Create(product *entity.Product) error {
	cp := *product
	s.mu.Lock()
	s.products = append(s.products, &cp)
	s.mu.Unlock()
	return nil
}

// List devuelve copias en orden de creación.
func (s *ProductStore) List() ([]*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Product, 0, len(s.products))
	for _, p := range s.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}
