package repository

import "github.com/jhoicas/retail-dashboard-api/internal/domain/entity"

// SalesRepository define el almacén de registros de venta (DIP).
// Las implementaciones devuelven copias: quien llama nunca comparte el slice interno.
type SalesRepository interface {
	All() []entity.SalesRecord
	Len() int
	// Replace sustituye la colección completa (carga de archivo).
	Replace(records []entity.SalesRecord)
	Append(record entity.SalesRecord)
	// Apply aplica un cambio simulado y devuelve el registro resultante.
	Apply(change entity.StockChange) (entity.SalesRecord, error)
	Reset()
}
