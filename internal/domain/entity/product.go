package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto agregado manualmente desde el formulario del panel.
// Se conserva en el catálogo aparte de los registros de venta.
type Product struct {
	ID        string
	Name      string
	Category  string
	Price     decimal.Decimal
	Stock     int
	Quantity  int    // unidades vendidas declaradas al crearlo
	Date      string // YYYY-MM-DD
	CreatedAt time.Time
}

// AsSalesRecord convierte el producto en un registro de venta con el mismo ID.
func (p Product) AsSalesRecord() SalesRecord {
	return SalesRecord{
		ID:          p.ID,
		ProductName: p.Name,
		Quantity:    p.Quantity,
		Price:       p.Price,
		Stock:       p.Stock,
		Category:    p.Category,
		Date:        p.Date,
		CreatedAt:   p.CreatedAt,
	}
}
