// Package inventory reúne las reglas de dominio sobre niveles de stock.
package inventory

// Estados de stock expuestos al panel.
const (
	StatusInStock    = "In Stock"
	StatusLowStock   = "Low Stock"
	StatusOutOfStock = "Out of Stock"
)

const (
	minReorderLevel     = 10
	deadStockMaxSold    = 5  // vendidos estrictamente por debajo
	deadStockMinOnShelf = 50 // stock estrictamente por encima
)

// ReorderLevel punto de reorden: max(10, floor(stock × 0.2)).
func ReorderLevel(stock int) int {
	return max(minReorderLevel, stock/5)
}

// Status clasifica el stock frente a su punto de reorden.
//
//	stock == 0            → Out of Stock
//	stock ≤ reorderLevel  → Low Stock
//	resto                 → In Stock
func Status(stock, reorderLevel int) string {
	switch {
	case stock == 0:
		return StatusOutOfStock
	case stock <= reorderLevel:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// IsLowStock indica stock positivo en o por debajo del punto de reorden.
func IsLowStock(stock, reorderLevel int) bool {
	return stock > 0 && stock <= reorderLevel
}

// IsDeadStock producto con menos de 5 unidades vendidas y más de 50 en estante.
func IsDeadStock(totalSold, stock int) bool {
	return totalSold < deadStockMaxSold && stock > deadStockMinOnShelf
}
