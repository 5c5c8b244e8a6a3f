package analytics

import (
	"time"

	"github.com/jhoicas/retail-dashboard-api/internal/application/dto"
)

// FallbackDashboard cifras de ejemplo que se muestran cuando no hay registros.
func FallbackDashboard(now time.Time) dto.DashboardSnapshot {
	return dto.DashboardSnapshot{
		TotalSales:          250000,
		ForecastedGrowth:    87500,
		BestSellingProduct:  &dto.ProductSummary{Name: "Milk Packet", TotalQuantity: 1200, Category: "Food & Beverages"},
		WorstSellingProduct: &dto.ProductSummary{Name: "Soap Bar", TotalQuantity: 75, Category: "Health & Beauty"},
		Alerts: []dto.AlertDTO{
			{Type: dto.AlertCritical, Title: "Critical: Rice Bag Low Stock!", Subtitle: criticalSubtitle, Units: 50},
			{Type: dto.AlertSafe, Title: "Safe: Milk Packet stock level is optimal"},
		},
		DeadStock: []dto.DeadStockDTO{
			{Name: "Soap Bar", Status: deadStockStatus, Value: 200},
			{Name: "Tea Pack", Status: "Got to Deadstock since", Value: 105},
		},
		TopProducts: []dto.TopProductDTO{
			{Name: "Milk Packet", Demand: 1200, Revenue: 460},
			{Name: "Rice Bag", Demand: 980, Revenue: 585},
		},
		LastUpdated: now,
	}
}

// FallbackInventory contadores de ejemplo sin lista de productos.
func FallbackInventory(now time.Time) dto.InventorySnapshot {
	return dto.InventorySnapshot{
		TotalProducts:  25,
		LowStockAlerts: 8,
		OutOfStock:     3,
		DeadStock:      2,
		Products:       []dto.InventoryProductDTO{},
		LastUpdated:    now,
	}
}
