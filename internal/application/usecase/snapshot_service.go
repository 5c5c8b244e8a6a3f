package usecase

import (
	"sync"
	"time"

	"github.com/jhoicas/retail-dashboard-api/internal/application/analytics"
	"github.com/jhoicas/retail-dashboard-api/internal/application/ports"
	"github.com/jhoicas/retail-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/retail-dashboard-api/internal/domain/repository"
	"github.com/jhoicas/retail-dashboard-api/pkg/logger"
)

// SnapshotService dueño del par de estadísticas vigente.
//
// Toda modificación de la colección pasa por Update: mutación, recálculo de
// ambas estadísticas y encolado de los eventos ocurren bajo el mismo mutex, así
// que ningún lector ni suscriptor observa un par a medio actualizar.
type SnapshotService struct {
	mu    sync.Mutex
	sales repository.SalesRepository
	bus   ports.Broadcaster
	now   func() time.Time
	log   *logger.Logger
	snaps analytics.Snapshots
}

// NewSnapshotService calcula el estado inicial sin publicarlo.
func NewSnapshotService(
	sales repository.SalesRepository,
	bus ports.Broadcaster,
	now func() time.Time,
	log *logger.Logger,
) *SnapshotService {
	s := &SnapshotService{sales: sales, bus: bus, now: now, log: log}
	s.snaps = analytics.Compute(sales.All(), now())
	return s
}

// Current par de estadísticas vigente.
func (s *SnapshotService) Current() analytics.Snapshots {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snaps
}

// Records copia de la colección y el par calculado sobre ella.
func (s *SnapshotService) Records() ([]entity.SalesRecord, analytics.Snapshots) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sales.All(), s.snaps
}

// WithCurrent ejecuta fn con el par vigente bajo el mutex de Update. Sirve para
// suscribir un cliente y enviarle el estado inicial sin intercalar publicaciones.
// fn no debe llamar a Update.
func (s *SnapshotService) WithCurrent(fn func(analytics.Snapshots)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.snaps)
}

// Update aplica mutate, recalcula y publica: primero los eventos extra en el
// orden dado, después dashboardUpdate e inventoryUpdate. Si mutate falla no se
// recalcula ni se publica nada.
func (s *SnapshotService) Update(mutate func(repository.SalesRepository) error, extra ...ports.Event) (analytics.Snapshots, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := mutate(s.sales); err != nil {
		return s.snaps, err
	}
	s.snaps = analytics.Compute(s.sales.All(), s.now())

	for _, ev := range extra {
		s.bus.Broadcast(ev.Name, ev.Payload)
	}
	s.bus.Broadcast(ports.EventDashboardUpdate, s.snaps.Dashboard)
	s.bus.Broadcast(ports.EventInventoryUpdate, s.snaps.Inventory)

	s.log.Debug().
		Int("records", s.sales.Len()).
		Int64("total_sales", s.snaps.Dashboard.TotalSales).
		Int("products", s.snaps.Inventory.TotalProducts).
		Msg("estadísticas recalculadas")
	return s.snaps, nil
}
