package repository

import "github.com/jhoicas/retail-dashboard-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	List() ([]*entity.Product, error)
}
