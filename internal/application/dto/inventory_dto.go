package dto

import "time"

// InventorySnapshot estado del inventario; Products va ordenado por stock ascendente.
type InventorySnapshot struct {
	TotalProducts  int                   `json:"totalProducts"`
	LowStockAlerts int                   `json:"lowStockAlerts"`
	OutOfStock     int                   `json:"outOfStock"`
	DeadStock      int                   `json:"deadStock"`
	Products       []InventoryProductDTO `json:"products"`
	LastUpdated    time.Time             `json:"lastUpdated"`
}

// InventoryProductDTO fila de inventario por producto.
type InventoryProductDTO struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Stock        int       `json:"stock"`
	Price        float64   `json:"price"`
	ReorderLevel int       `json:"reorderLevel"`
	TotalSold    int       `json:"totalSold"`
	LastUpdated  time.Time `json:"lastUpdated"`
	Status       string    `json:"status"`
}

// Criterios de orden de la vista de inventario.
const (
	SortLowStock  = "low-stock"
	SortHighStock = "high-stock"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortName      = "name"
)

// InventoryQuery filtros de GET /api/inventory/products.
type InventoryQuery struct {
	PageRequest
	Search   string `query:"search"`
	Category string `query:"category"`
	Sort     string `query:"sort"`
}

// InventoryPage página de la vista de inventario.
type InventoryPage struct {
	Products   []InventoryProductDTO `json:"products"`
	Categories []string              `json:"categories"`
	Page       PageResponse          `json:"page"`
}
