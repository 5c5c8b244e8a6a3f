// Package analytics calcula las estadísticas del panel y del inventario a partir
// de los registros de venta. Todas las funciones son puras: reciben la colección
// y el instante de cálculo, y no modifican nada.
package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/retail-dashboard-api/internal/application/dto"
	"github.com/jhoicas/retail-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/retail-dashboard-api/internal/domain/inventory"
)

const (
	topProductsLimit = 5 // productos en el widget de demanda
	alertsLimit      = 5
	deadStockLimit   = 5

	criticalBelow = 10 // unidades vendidas
	safeAbove     = 50

	criticalSubtitle = "Lead Time: 5 days"
	deadStockStatus  = "Not in business since"
)

var growthFactor = decimal.RequireFromString("1.35")

// ProductRollup acumulado por nombre de producto. ID, Category y ReorderLevel
// salen del primer registro del grupo; Stock y Price del último.
type ProductRollup struct {
	ID            string
	Name          string
	Category      string
	TotalQuantity int
	TotalRevenue  decimal.Decimal
	Stock         int
	Price         decimal.Decimal
	ReorderLevel  int
}

// Snapshots par de estadísticas calculadas sobre la misma colección.
type Snapshots struct {
	Dashboard dto.DashboardSnapshot
	Inventory dto.InventorySnapshot
}

// BuildRollups agrupa los registros por ProductName en orden de primera aparición.
// El stock se resuelve por última escritura.
func BuildRollups(records []entity.SalesRecord) []ProductRollup {
	index := make(map[string]int, len(records))
	rollups := make([]ProductRollup, 0, len(records))
	for _, r := range records {
		i, ok := index[r.ProductName]
		if !ok {
			i = len(rollups)
			index[r.ProductName] = i
			rollups = append(rollups, ProductRollup{
				ID:           r.ID,
				Name:         r.ProductName,
				Category:     r.Category,
				TotalRevenue: decimal.Zero,
				ReorderLevel: inventory.ReorderLevel(r.Stock),
			})
		}
		p := &rollups[i]
		p.TotalQuantity += r.Quantity
		p.TotalRevenue = p.TotalRevenue.Add(r.Revenue())
		p.Stock = r.Stock
		p.Price = r.Price
	}
	return rollups
}

// Compute calcula ambas estadísticas sobre la misma colección.
func Compute(records []entity.SalesRecord, now time.Time) Snapshots {
	if len(records) == 0 {
		return Snapshots{Dashboard: FallbackDashboard(now), Inventory: FallbackInventory(now)}
	}
	rollups := BuildRollups(records)
	return Snapshots{
		Dashboard: dashboardFrom(records, rollups, now),
		Inventory: inventoryFrom(rollups, now),
	}
}

// ComputeDashboard estadísticas del panel principal.
func ComputeDashboard(records []entity.SalesRecord, now time.Time) dto.DashboardSnapshot {
	if len(records) == 0 {
		return FallbackDashboard(now)
	}
	return dashboardFrom(records, BuildRollups(records), now)
}

// ComputeInventory estadísticas de inventario.
func ComputeInventory(records []entity.SalesRecord, now time.Time) dto.InventorySnapshot {
	if len(records) == 0 {
		return FallbackInventory(now)
	}
	return inventoryFrom(BuildRollups(records), now)
}

// TotalRevenue Σ quantity × price sin redondear.
func TotalRevenue(records []entity.SalesRecord) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Revenue())
	}
	return total
}

// ── Panel ─────────────────────────────────────────────────────────────────────

func dashboardFrom(records []entity.SalesRecord, rollups []ProductRollup, now time.Time) dto.DashboardSnapshot {
	total := TotalRevenue(records)

	best, worst := 0, 0
	for i := range rollups {
		if rollups[i].TotalQuantity > rollups[best].TotalQuantity {
			best = i
		}
		if rollups[i].TotalQuantity < rollups[worst].TotalQuantity {
			worst = i
		}
	}

	alerts := make([]dto.AlertDTO, 0, alertsLimit)
	deadStock := make([]dto.DeadStockDTO, 0, deadStockLimit)
	for _, p := range rollups {
		if len(alerts) < alertsLimit {
			if a, ok := salesAlert(p); ok {
				alerts = append(alerts, a)
			}
		}
		if len(deadStock) < deadStockLimit && inventory.IsDeadStock(p.TotalQuantity, p.Stock) {
			deadStock = append(deadStock, dto.DeadStockDTO{
				Name:   p.Name,
				Status: deadStockStatus,
				Value:  roundInt(p.TotalRevenue),
			})
		}
	}

	return dto.DashboardSnapshot{
		TotalSales:          roundInt(total),
		ForecastedGrowth:    roundInt(total.Mul(growthFactor)),
		BestSellingProduct:  summaryOf(rollups[best]),
		WorstSellingProduct: summaryOf(rollups[worst]),
		Alerts:              alerts,
		DeadStock:           deadStock,
		TopProducts:         topProducts(rollups, topProductsLimit),
		LastUpdated:         now,
	}
}

// salesAlert: < 10 vendidos → crítica; > 50 → segura; entre ambos, ninguna.
func salesAlert(p ProductRollup) (dto.AlertDTO, bool) {
	switch {
	case p.TotalQuantity < criticalBelow:
		return dto.AlertDTO{
			Type:     dto.AlertCritical,
			Title:    fmt.Sprintf("Critical: %s Low Stock!", p.Name),
			Subtitle: criticalSubtitle,
			Units:    p.TotalQuantity,
		}, true
	case p.TotalQuantity > safeAbove:
		return dto.AlertDTO{
			Type:  dto.AlertSafe,
			Title: fmt.Sprintf("Safe: %s stock level is optimal", p.Name),
		}, true
	default:
		return dto.AlertDTO{}, false
	}
}

// TopRollups los n productos con más unidades vendidas; empates por orden de inserción.
func TopRollups(rollups []ProductRollup, n int) []ProductRollup {
	sorted := make([]ProductRollup, len(rollups))
	copy(sorted, rollups)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalQuantity > sorted[j].TotalQuantity
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func topProducts(rollups []ProductRollup, n int) []dto.TopProductDTO {
	top := TopRollups(rollups, n)
	out := make([]dto.TopProductDTO, 0, len(top))
	for _, p := range top {
		out = append(out, dto.TopProductDTO{
			Name:    p.Name,
			Demand:  p.TotalQuantity,
			Revenue: roundInt(p.TotalRevenue),
		})
	}
	return out
}

func summaryOf(p ProductRollup) *dto.ProductSummary {
	return &dto.ProductSummary{
		Name:          p.Name,
		TotalQuantity: p.TotalQuantity,
		TotalRevenue:  p.TotalRevenue.InexactFloat64(),
		Category:      p.Category,
	}
}

// ── Inventario ────────────────────────────────────────────────────────────────

func inventoryFrom(rollups []ProductRollup, now time.Time) dto.InventorySnapshot {
	snap := dto.InventorySnapshot{
		TotalProducts: len(rollups),
		Products:      make([]dto.InventoryProductDTO, 0, len(rollups)),
		LastUpdated:   now,
	}
	for _, p := range rollups {
		switch {
		case p.Stock == 0:
			snap.OutOfStock++
		case inventory.IsLowStock(p.Stock, p.ReorderLevel):
			snap.LowStockAlerts++
		}
		if inventory.IsDeadStock(p.TotalQuantity, p.Stock) {
			snap.DeadStock++
		}
		snap.Products = append(snap.Products, dto.InventoryProductDTO{
			ID:           p.ID,
			Name:         p.Name,
			Category:     p.Category,
			Stock:        p.Stock,
			Price:        p.Price.InexactFloat64(),
			ReorderLevel: p.ReorderLevel,
			TotalSold:    p.TotalQuantity,
			LastUpdated:  now,
			Status:       inventory.Status(p.Stock, p.ReorderLevel),
		})
	}
	sort.SliceStable(snap.Products, func(i, j int) bool {
		return snap.Products[i].Stock < snap.Products[j].Stock
	})
	return snap
}

// roundInt redondea al entero más cercano (mitades hacia arriba para positivos).
func roundInt(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}
