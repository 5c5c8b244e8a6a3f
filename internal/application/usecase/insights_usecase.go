package usecase

import (
	"time"

	"github.com/jhoicas/retail-dashboard-api/internal/application/analytics"
	"github.com/jhoicas/retail-dashboard-api/internal/application/dto"
	"github.com/jhoicas/retail-dashboard-api/internal/application/ports"
)

// InsightsUseCase lecturas derivadas del par vigente: vistas, pronóstico y analítica.
type InsightsUseCase struct {
	snapshots *SnapshotService
	rnd       ports.RandomSource
	now       func() time.Time
}

// NewInsightsUseCase construye el caso de uso. rnd debe ser seguro para uso concurrente.
func NewInsightsUseCase(snapshots *SnapshotService, rnd ports.RandomSource, now func() time.Time) *InsightsUseCase {
	return &InsightsUseCase{snapshots: snapshots, rnd: rnd, now: now}
}

// Dashboard estadísticas del panel.
func (uc *InsightsUseCase) Dashboard() dto.DashboardSnapshot {
	return uc.snapshots.Current().Dashboard
}

// Inventory estadísticas de inventario.
func (uc *InsightsUseCase) Inventory() dto.InventorySnapshot {
	return uc.snapshots.Current().Inventory
}

// Sales registros de venta vigentes.
func (uc *InsightsUseCase) Sales() []dto.SalesRecordDTO {
	records, _ := uc.snapshots.Records()
	out := make([]dto.SalesRecordDTO, 0, len(records))
	for _, r := range records {
		out = append(out, dto.SalesRecordDTO{
			ID:          r.ID,
			ProductName: r.ProductName,
			Quantity:    r.Quantity,
			Price:       r.Price.InexactFloat64(),
			Stock:       r.Stock,
			Category:    r.Category,
			Date:        r.Date,
			CreatedAt:   r.CreatedAt,
		})
	}
	return out
}

// InventoryPage vista filtrada del inventario.
func (uc *InsightsUseCase) InventoryPage(q dto.InventoryQuery) (dto.InventoryPage, error) {
	return analytics.InventoryView(uc.snapshots.Current().Inventory, q)
}

// Alerts vista filtrada de alertas de inventario.
func (uc *InsightsUseCase) Alerts(q dto.AlertsQuery) (dto.AlertsPage, error) {
	return analytics.AlertsView(uc.snapshots.Current().Inventory, q)
}

// Forecast pronóstico de ingresos y demanda.
func (uc *InsightsUseCase) Forecast() dto.ForecastDTO {
	return analytics.Forecast(uc.snapshots.Current(), uc.rnd, uc.now())
}

// SalesAnalytics resumen de ventas por categoría y producto.
func (uc *InsightsUseCase) SalesAnalytics() dto.SalesAnalyticsDTO {
	records, snaps := uc.snapshots.Records()
	return analytics.SalesAnalytics(records, snaps.Dashboard, uc.rnd)
}
