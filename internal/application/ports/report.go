package ports

import (
	"context"
	"time"

	"github.com/jhoicas/retail-dashboard-api/internal/application/dto"
)

// InventoryReport datos del reporte imprimible de inventario.
type InventoryReport struct {
	StoreName   string
	Dashboard   dto.DashboardSnapshot
	Inventory   dto.InventorySnapshot
	GeneratedAt time.Time
}

// InventoryReportGenerator renderiza el reporte (PDF) y devuelve sus bytes.
type InventoryReportGenerator interface {
	GenerateInventoryReport(ctx context.Context, report InventoryReport) ([]byte, error)
}
