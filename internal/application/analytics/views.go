package analytics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/retail-dashboard-api/internal/application/dto"
	"github.com/jhoicas/retail-dashboard-api/internal/domain"
	"github.com/jhoicas/retail-dashboard-api/internal/domain/inventory"
)

// Vistas filtradas que el panel antes calculaba en el navegador. Trabajan sobre
// un snapshot ya calculado y nunca lo modifican.

// InventoryView filtra por categoría y texto, ordena y pagina los productos.
func InventoryView(snap dto.InventorySnapshot, q dto.InventoryQuery) (dto.InventoryPage, error) {
	q.DefaultPage()
	less, err := inventoryOrder(q.Sort)
	if err != nil {
		return dto.InventoryPage{}, err
	}

	search := strings.ToLower(strings.TrimSpace(q.Search))
	category := strings.TrimSpace(q.Category)
	if strings.EqualFold(category, "All Categories") {
		category = ""
	}

	filtered := make([]dto.InventoryProductDTO, 0, len(snap.Products))
	for _, p := range snap.Products {
		if category != "" && p.Category != category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		filtered = append(filtered, p)
	}
	sort.SliceStable(filtered, func(i, j int) bool { return less(filtered[i], filtered[j]) })

	start, end, meta := paginate(len(filtered), q.PageRequest)
	return dto.InventoryPage{
		Products:   filtered[start:end],
		Categories: categoriesOf(snap.Products),
		Page:       meta,
	}, nil
}

func inventoryOrder(key string) (func(a, b dto.InventoryProductDTO) bool, error) {
	switch key {
	case "", dto.SortLowStock:
		return func(a, b dto.InventoryProductDTO) bool { return a.Stock < b.Stock }, nil
	case dto.SortHighStock:
		return func(a, b dto.InventoryProductDTO) bool { return a.Stock > b.Stock }, nil
	case dto.SortPriceAsc:
		return func(a, b dto.InventoryProductDTO) bool { return a.Price < b.Price }, nil
	case dto.SortPriceDesc:
		return func(a, b dto.InventoryProductDTO) bool { return a.Price > b.Price }, nil
	case dto.SortName:
		return func(a, b dto.InventoryProductDTO) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}, nil
	default:
		return nil, fmt.Errorf("orden %q: %w", key, domain.ErrInvalidInput)
	}
}

func categoriesOf(products []dto.InventoryProductDTO) []string {
	seen := make(map[string]struct{}, len(products))
	out := make([]string, 0)
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	sort.Strings(out)
	return out
}

// ── Alertas ──────────────────────────────────────────────────────────────────

// BuildAlerts deriva las alertas de inventario: agotado → crítica, bajo el
// punto de reorden → stock bajo, sin rotación → stock muerto. Cada producto
// genera como mucho una alerta, en ese orden de prioridad.
func BuildAlerts(snap dto.InventorySnapshot) ([]dto.InventoryAlertDTO, dto.AlertCounts) {
	alerts := make([]dto.InventoryAlertDTO, 0)
	var counts dto.AlertCounts
	for i, p := range snap.Products {
		a := dto.InventoryAlertDTO{
			Product:      p.Name,
			Category:     p.Category,
			Stock:        p.Stock,
			ReorderLevel: p.ReorderLevel,
		}
		switch {
		case p.Stock == 0:
			a.ID = fmt.Sprintf("critical_%d", i)
			a.Type, a.TypeClass = "Critical Alert", dto.InventoryAlertCritical
			a.Status, a.Description = "Reorder Now", "Out of Stock"
			counts.CriticalAlerts++
		case p.Stock <= p.ReorderLevel:
			a.ID = fmt.Sprintf("low_%d", i)
			a.Type, a.TypeClass = "Low Stock", dto.InventoryAlertLowStock
			a.Status, a.Description = "Low Stock", "Low Stock"
			counts.LowStockAlerts++
		case inventory.IsDeadStock(p.TotalSold, p.Stock):
			a.ID = fmt.Sprintf("dead_%d", i)
			a.Type, a.TypeClass = "Dead Stock", dto.InventoryAlertDeadStock
			a.Status, a.Description = "Dead Stock", "Unsold for 60+ days"
			counts.DeadStock++
		default:
			continue
		}
		alerts = append(alerts, a)
	}
	counts.TotalAlerts = len(alerts)
	return alerts, counts
}

// AlertsView filtra por tipo y producto y pagina. Los contadores son siempre los totales.
func AlertsView(snap dto.InventorySnapshot, q dto.AlertsQuery) (dto.AlertsPage, error) {
	q.DefaultPage()
	kind := strings.TrimSpace(q.Type)
	switch kind {
	case "", "all", dto.InventoryAlertCritical, dto.InventoryAlertLowStock, dto.InventoryAlertDeadStock:
	default:
		return dto.AlertsPage{}, fmt.Errorf("tipo de alerta %q: %w", kind, domain.ErrInvalidInput)
	}
	search := strings.ToLower(strings.TrimSpace(q.Search))

	all, counts := BuildAlerts(snap)
	filtered := make([]dto.InventoryAlertDTO, 0, len(all))
	for _, a := range all {
		if kind != "" && kind != "all" && a.TypeClass != kind {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(a.Product), search) {
			continue
		}
		filtered = append(filtered, a)
	}

	start, end, meta := paginate(len(filtered), q.PageRequest)
	return dto.AlertsPage{Alerts: filtered[start:end], Counts: counts, Page: meta}, nil
}

// paginate devuelve los límites [start, end) de la página pedida.
func paginate(total int, p dto.PageRequest) (int, int, dto.PageResponse) {
	meta := dto.PageResponse{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: (total + p.Limit - 1) / p.Limit,
	}
	start := min(p.Offset(), total)
	end := min(start+p.Limit, total)
	return start, end, meta
}
