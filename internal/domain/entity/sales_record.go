package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesRecord una línea de venta: producto, unidades vendidas, precio unitario y
// stock observado. Se crea al cargar un archivo, al agregar un producto o con los
// datos de ejemplo; solo la simulación la modifica en sitio.
type SalesRecord struct {
	ID          string
	ProductName string
	Quantity    int
	Price       decimal.Decimal
	Stock       int
	Category    string
	Date        string // YYYY-MM-DD
	CreatedAt   time.Time
}

// Revenue devuelve Quantity × Price.
func (r SalesRecord) Revenue() decimal.Decimal {
	return decimal.NewFromInt(int64(r.Quantity)).Mul(r.Price)
}

// StockChange variación simulada sobre el registro en la posición Index.
type StockChange struct {
	Index         int
	StockDelta    int
	QuantityDelta int
}

// Apply aplica el cambio al registro. El stock nunca baja de cero.
func (r *SalesRecord) Apply(ch StockChange) {
	r.Stock = max(0, r.Stock+ch.StockDelta)
	r.Quantity = max(0, r.Quantity+ch.QuantityDelta)
}
