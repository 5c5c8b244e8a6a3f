package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/retail-dashboard-api/internal/application/ports"
	"github.com/jhoicas/retail-dashboard-api/internal/domain/repository"
)

// ReportUseCase genera el reporte de inventario descargable.
type ReportUseCase struct {
	snapshots *SnapshotService
	settings  repository.SettingsRepository
	generator ports.InventoryReportGenerator
	now       func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	snapshots *SnapshotService,
	settings repository.SettingsRepository,
	generator ports.InventoryReportGenerator,
	now func() time.Time,
) *ReportUseCase {
	return &ReportUseCase{snapshots: snapshots, settings: settings, generator: generator, now: now}
}

// InventoryPDF renderiza el par vigente con el nombre de la tienda de los ajustes.
func (uc *ReportUseCase) InventoryPDF(ctx context.Context) ([]byte, error) {
	s, err := uc.settings.Get()
	if err != nil {
		return nil, fmt.Errorf("reporte: ajustes: %w", err)
	}
	snaps := uc.snapshots.Current()
	pdf, err := uc.generator.GenerateInventoryReport(ctx, ports.InventoryReport{
		StoreName:   s.Business.StoreName,
		Dashboard:   snaps.Dashboard,
		Inventory:   snaps.Inventory,
		GeneratedAt: uc.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("reporte: inventario: %w", err)
	}
	return pdf, nil
}
