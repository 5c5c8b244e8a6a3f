// Package memory implementa los repositorios en memoria del proceso.
// Los datos se pierden al reiniciar.
package memory

import (
	"fmt"
	"sync"

	"github.com/jhoicas/retail-dashboard-api/internal/domain"
	"github.com/jhoicas/retail-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/retail-dashboard-api/internal/domain/repository"
)

// SalesStore colección de registros de venta protegida por RWMutex.
type SalesStore struct {
	mu      sync.RWMutex
	records []entity.SalesRecord
}

var _ repository.SalesRepository = (*SalesStore)(nil)

// NewSalesStore crea el almacén con los registros iniciales (copiados).
func NewSalesStore(initial []entity.SalesRecord) *SalesStore {
	s := &SalesStore{}
	s.Replace(initial)
	return s
}

// All devuelve una copia de la colección.
func (s *SalesStore) All() []entity.SalesRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.SalesRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Len número de registros.
func (s *SalesStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Replace sustituye la colección completa.
func (s *SalesStore) Replace(records []entity.SalesRecord) {
	next := make([]entity.SalesRecord, len(records))
	copy(next, records)
	s.mu.Lock()
	s.records = next
	s.mu.Unlock()
}

// Append agrega un registro al final.
func (s *SalesStore) Append(record entity.SalesRecord) {
	s.mu.Lock()
	s.records = append(s.records, record)
	s.mu.Unlock()
}

// Apply modifica en sitio el registro indicado por change.Index.
func (s *SalesStore) Apply(change entity.StockChange) (entity.SalesRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if change.Index < 0 || change.Index >= len(s.records) {
		return entity.SalesRecord{}, fmt.Errorf("registro %d de %d: %w", change.Index, len(s.records), domain.ErrNotFound)
	}
	s.records[change.Index].Apply(change)
	return s.records[change.Index], nil
}

// Reset vacía la colección.
func (s *SalesStore) Reset() {
	s.mu.Lock()
	s.records = nil
	s.mu.Unlock()
}
